package main

import (
	"os"

	"github.com/mattn/go-isatty"
)

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// defaultLogFormat picks console output on a terminal and JSON otherwise.
func defaultLogFormat() string {
	if stdoutIsTerminal() {
		return "console"
	}
	return "json"
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"courier/internal/record"
)

// readRecord loads a loosely-typed JSON record from path, or from stdin
// when path is "-".
func readRecord(path string) (record.Record, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return record.Record(raw), nil
}

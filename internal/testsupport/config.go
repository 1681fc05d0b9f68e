// Package testsupport provides shared constructors for package tests.
package testsupport

import (
	"testing"

	"courier/internal/config"
)

// NewConfig produces a default config suitable for tests.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Logging.Format = "json"
	return &cfg
}

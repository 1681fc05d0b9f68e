package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"courier/internal/config"
)

func TestDefaultValidates(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Report.Recipient != "admin@company.com" {
		t.Fatalf("unexpected default recipient: %q", cfg.Report.Recipient)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := config.Default()
	if cfg.Report.Format != want.Report.Format || cfg.Logging.Level != want.Logging.Level {
		t.Fatalf("expected defaults, got %#v", cfg)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[logging]
level = "debug"
format = "json"

[notify]
channels = ["sms", "push"]

[report]
format = "html"
delivery = "cloud"
recipient = "ops@example.com"
cloud_base_url = "https://cloud.example.com/r"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging config: %#v", cfg.Logging)
	}
	if len(cfg.Notify.Channels) != 2 || cfg.Notify.Channels[0] != "sms" {
		t.Fatalf("unexpected channels: %v", cfg.Notify.Channels)
	}
	if cfg.Report.Recipient != "ops@example.com" {
		t.Fatalf("unexpected recipient: %q", cfg.Report.Recipient)
	}
}

func TestLoadRejectsBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nlevel = \"verbose\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unsupported level")
	}
}

func TestValidateRejectsEmptyChannels(t *testing.T) {
	cfg := config.Default()
	cfg.Notify.Channels = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty channel list")
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.WriteSample(path); err != nil {
		t.Fatalf("WriteSample failed: %v", err)
	}
	if err := config.WriteSample(path); err == nil {
		t.Fatal("expected error when config already exists")
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config should validate: %v", err)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if len(cfg.ScanRoots) != 1 || cfg.ScanRoots[0] != "/sys/bus/pci/devices" {
		t.Errorf("ScanRoots = %v, want default scan root", cfg.ScanRoots)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.LocateTimeout() != 30*time.Second {
		t.Errorf("LocateTimeout() = %v, want 30s", cfg.LocateTimeout())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `scan_roots:
  - /sys/bus/pci/devices
enclosures:
  - /sys/bus/pci/devices/0000:05:00.0
database: /tmp/test.db
log_level: debug
locate:
  timeout: 2m
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if len(cfg.Enclosures) != 1 {
		t.Errorf("Enclosures = %v, want one entry", cfg.Enclosures)
	}
	if cfg.Database != "/tmp/test.db" {
		t.Errorf("Database = %q", cfg.Database)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.LocateTimeout() != 2*time.Minute {
		t.Errorf("LocateTimeout() = %v, want 2m", cfg.LocateTimeout())
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed yaml should return error")
	}
}

func TestLocateTimeoutMalformed(t *testing.T) {
	cfg := &Config{Locate: Locate{Timeout: "soon"}}
	if got := cfg.LocateTimeout(); got != 30*time.Second {
		t.Errorf("LocateTimeout() on malformed value = %v, want 30s", got)
	}
}

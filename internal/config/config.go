package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Sysfs directories whose children are candidate enclosure ports
	ScanRoots []string `yaml:"scan_roots,omitempty"`
	// Explicit enclosure port paths, checked in addition to scan roots
	Enclosures []string `yaml:"enclosures,omitempty"`
	// Transition history database path
	Database string `yaml:"database,omitempty"`
	// debug, info, warn, error
	LogLevel string `yaml:"log_level,omitempty"`
	Locate   Locate `yaml:"locate"`
}

type Locate struct {
	// Go duration string, e.g. "30s", "2m"
	Timeout string `yaml:"timeout,omitempty"`
}

// defaultConfig provides baseline settings
var defaultConfig = Config{
	ScanRoots: []string{"/sys/bus/pci/devices"},
	Database:  "/var/lib/ledgod/history.db",
	LogLevel:  "info",
	Locate: Locate{
		Timeout: "30s",
	},
}

func Load(path string) (*Config, error) {
	if path == "" {
		// Try default locations
		candidates := []string{
			"/etc/ledgod/config.yaml",
			filepath.Join(os.Getenv("HOME"), ".config/ledgod/config.yaml"),
			"config.yaml",
		}
		for _, c := range candidates {
			if _, err := os.Stat(c); err == nil {
				path = c
				break
			}
		}
	}

	var cfg Config
	if path == "" {
		cfg = defaultConfig
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			cfg = defaultConfig
		} else {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, err
			}
		}
	}

	// Apply defaults for missing fields
	if len(cfg.ScanRoots) == 0 {
		cfg.ScanRoots = defaultConfig.ScanRoots
	}
	if cfg.Database == "" {
		cfg.Database = defaultConfig.Database
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultConfig.LogLevel
	}
	if cfg.Locate.Timeout == "" {
		cfg.Locate.Timeout = defaultConfig.Locate.Timeout
	}

	return &cfg, nil
}

// LocateTimeout parses the configured locate timeout, falling back to the
// default on a malformed value.
func (c *Config) LocateTimeout() time.Duration {
	d, err := time.ParseDuration(c.Locate.Timeout)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(defaultConfig.Locate.Timeout)
	}
	return d
}

package store

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds host settings for a running store.
type Config struct {
	// SnapshotPath is where the keyspace is persisted. Empty disables
	// snapshots.
	SnapshotPath string `yaml:"snapshot_path"`

	// ListenAddr is the command endpoint address.
	// Default: "localhost:6401"
	ListenAddr string `yaml:"listen_addr"`
}

func DefaultConfig() Config {
	return Config{
		ListenAddr: "localhost:6401",
	}
}

// LoadConfig reads a YAML config file, filling in defaults for anything
// unset.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.validate()
	return cfg, nil
}

func (c *Config) validate() {
	if c.ListenAddr == "" {
		c.ListenAddr = "localhost:6401"
	}
}

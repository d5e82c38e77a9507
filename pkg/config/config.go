package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/utkarsh5026/gocaf/pkg/store"
)

// Config holds repository configuration, stored as TOML in .caf/config.toml.
type Config struct {
	User    UserConfig    `toml:"user"`
	Storage StorageConfig `toml:"storage"`
}

// UserConfig identifies the default author for commits and tags.
type UserConfig struct {
	Name string `toml:"name"`
}

// StorageConfig controls how the file object store writes payloads.
type StorageConfig struct {
	// Compression is the payload codec: "zstd" or "none".
	Compression string `toml:"compression"`
}

// Default returns the configuration written by `caf init`.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Compression: string(store.CompressionZstd),
		},
	}
}

// Load reads a config file. A missing file yields the defaults, so a bare
// repository works without one.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if _, err := store.ParseCompression(cfg.Storage.Compression); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config file, creating parent directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Compression returns the configured payload codec.
func (c *Config) Compression() store.Compression {
	comp, err := store.ParseCompression(c.Storage.Compression)
	if err != nil {
		return store.CompressionZstd
	}
	return comp
}

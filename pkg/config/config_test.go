package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/utkarsh5026/gocaf/pkg/store"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Storage.Compression != "zstd" {
		t.Errorf("default compression = %q, want zstd", cfg.Storage.Compression)
	}
	if cfg.Compression() != store.CompressionZstd {
		t.Errorf("Compression() = %s, want zstd", cfg.Compression())
	}
}

func TestConfig_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	original := Default()
	original.User.Name = "Ada Lovelace"
	original.Storage.Compression = "none"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.User.Name != "Ada Lovelace" {
		t.Errorf("User.Name = %q, want %q", loaded.User.Name, "Ada Lovelace")
	}
	if loaded.Compression() != store.CompressionNone {
		t.Errorf("Compression() = %s, want none", loaded.Compression())
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Storage.Compression != "zstd" {
		t.Errorf("missing config should use defaults, got compression %q", cfg.Storage.Compression)
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	dir := t.TempDir()

	t.Run("unknown compression", func(t *testing.T) {
		path := filepath.Join(dir, "bad_codec.toml")
		content := "[storage]\ncompression = \"gzip\"\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Load() should reject unknown compression codec")
		}
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := filepath.Join(dir, "broken.toml")
		if err := os.WriteFile(path, []byte("[storage\n"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Load() should reject malformed TOML")
		}
	})
}

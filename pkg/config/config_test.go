package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sdejongh/dirsnap/pkg/models"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}
	if cfg.Performance.MaxWorkers != 5 {
		t.Errorf("default max_workers = %d, want 5", cfg.Performance.MaxWorkers)
	}
	if cfg.Output.Format != "human" {
		t.Errorf("default output format = %s, want human", cfg.Output.Format)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"ZeroWorkers", func(c *Config) { c.Performance.MaxWorkers = 0 }, "performance.max_workers"},
		{"TinyBuffer", func(c *Config) { c.Performance.BufferSize = 512 }, "performance.buffer_size"},
		{"NegativeBandwidth", func(c *Config) { c.Performance.BandwidthLimit = -1 }, "performance.bandwidth_limit"},
		{"UnknownOutputFormat", func(c *Config) { c.Output.Format = "xml" }, "output.format"},
		{"UnknownLogFormat", func(c *Config) { c.Logging.Format = "logfmt" }, "logging.format"},
		{"UnknownLogLevel", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should have failed")
			}
			var vErr *models.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Validate() error = %T, want *models.ValidationError", err)
			}
			if vErr.Field != tt.field {
				t.Errorf("Validate() field = %s, want %s", vErr.Field, tt.field)
			}
		})
	}
}

func TestLoadSave(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		cfg := Default()
		cfg.Performance.MaxWorkers = 8
		cfg.Exclude = []string{"*.bak"}
		cfg.Validation.Enabled = true

		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := SaveToFile(cfg, path); err != nil {
			t.Fatalf("SaveToFile() error = %v", err)
		}

		loaded, err := LoadFromFile(path)
		if err != nil {
			t.Fatalf("LoadFromFile() error = %v", err)
		}
		if loaded.Performance.MaxWorkers != 8 {
			t.Errorf("max_workers = %d, want 8", loaded.Performance.MaxWorkers)
		}
		if len(loaded.Exclude) != 1 || loaded.Exclude[0] != "*.bak" {
			t.Errorf("exclude = %v, want [*.bak]", loaded.Exclude)
		}
		if !loaded.Validation.Enabled {
			t.Error("validation.enabled not preserved")
		}
	})

	t.Run("PartialFileKeepsDefaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		partial := "performance:\n  max_workers: 3\n"
		if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := LoadFromFile(path)
		if err != nil {
			t.Fatalf("LoadFromFile() error = %v", err)
		}
		if cfg.Performance.MaxWorkers != 3 {
			t.Errorf("max_workers = %d, want 3", cfg.Performance.MaxWorkers)
		}
		if cfg.Performance.BufferSize != 65536 {
			t.Errorf("buffer_size = %d, want default 65536", cfg.Performance.BufferSize)
		}
	})

	t.Run("InvalidValuesRejectedOnLoad", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		bad := "output:\n  format: csv\n"
		if err := os.WriteFile(path, []byte(bad), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		if _, err := LoadFromFile(path); err == nil {
			t.Error("LoadFromFile() should reject invalid values")
		}
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("{{not yaml"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		if _, err := LoadFromFile(path); err == nil {
			t.Error("LoadFromFile() should fail on malformed YAML")
		}
	})

	t.Run("SaveRejectsInvalidConfig", func(t *testing.T) {
		cfg := Default()
		cfg.Performance.MaxWorkers = 0
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := SaveToFile(cfg, path); err == nil {
			t.Error("SaveToFile() should reject invalid config")
		}
	})

	t.Run("SaveCreatesParentDirs", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")
		if err := SaveToFile(Default(), path); err != nil {
			t.Fatalf("SaveToFile() error = %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("config file not created: %v", err)
		}
	})
}

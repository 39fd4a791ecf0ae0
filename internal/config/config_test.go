package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_FromPath(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, `
output:
  dir: ./site
  name: lesson
  indexFirst: true
split:
  level: 2
images:
  subdir: images
css:
  file: custom.css
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Output.Dir != "./site" {
		t.Errorf("Output.Dir = %q", cfg.Output.Dir)
	}
	if cfg.Output.Name != "lesson" {
		t.Errorf("Output.Name = %q", cfg.Output.Name)
	}
	if !cfg.Output.IndexFirst {
		t.Error("Output.IndexFirst = false, want true")
	}
	if cfg.Split.Level != 2 {
		t.Errorf("Split.Level = %d", cfg.Split.Level)
	}
	if cfg.Images.Subdir != "images" {
		t.Errorf("Images.Subdir = %q", cfg.Images.Subdir)
	}
	if cfg.CSS.File != "custom.css" {
		t.Errorf("CSS.File = %q", cfg.CSS.File)
	}
}

func TestLoadConfig_PartialFileKeepsZeroValues(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "split:\n  level: 3\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Split.Level != 3 {
		t.Errorf("Split.Level = %d", cfg.Split.Level)
	}
	if cfg.Output.Dir != "" || cfg.CSS.File != "" {
		t.Errorf("unset fields should stay empty: %+v", cfg)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		nameOrPath string
		wantErr    error
	}{
		{"empty name", "", ErrEmptyConfigName},
		{"missing path", "./does/not/exist.yaml", ErrConfigNotFound},
		{"unresolvable name", "no-such-config-name", ErrConfigNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := LoadConfig(tt.nameOrPath); !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig(%q) error = %v, want %v", tt.nameOrPath, err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_RejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "outpu:\n  dir: ./site\n")

	if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}
	if *cfg != (Config{}) {
		t.Errorf("DefaultConfig() = %+v, want zero value", cfg)
	}
}

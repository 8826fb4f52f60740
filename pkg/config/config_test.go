package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scoring.DefaultInspectionInterval != 5 {
		t.Errorf("expected default inspection interval 5, got %d", cfg.Scoring.DefaultInspectionInterval)
	}
	if cfg.Scoring.Weights == nil {
		t.Error("expected Weights map to be initialized, got nil")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Reports.Backend != "local" {
		t.Errorf("expected local report backend, got %q", cfg.Reports.Backend)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		missing bool
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "non-existent file returns defaults",
			missing: true,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Server.ResultCacheSize != 256 {
					t.Errorf("expected default cache size 256, got %d", cfg.Server.ResultCacheSize)
				}
			},
		},
		{
			name: "valid YAML overrides defaults",
			yaml: `
scoring:
  default_inspection_interval: 4
  weights:
    corrosion: 6
    fatigue_load: 2
server:
  port: 9090
database:
  url: postgres://localhost/rbui
reports:
  backend: s3
  bucket: rbui-reports
  endpoint: http://localhost:9000
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Scoring.DefaultInspectionInterval != 4 {
					t.Errorf("expected interval 4, got %d", cfg.Scoring.DefaultInspectionInterval)
				}
				if cfg.Scoring.Weights["corrosion"] != 6 {
					t.Errorf("expected corrosion weight 6, got %f", cfg.Scoring.Weights["corrosion"])
				}
				if cfg.Server.Port != 9090 {
					t.Errorf("expected port 9090, got %d", cfg.Server.Port)
				}
				// Unset fields keep their defaults.
				if cfg.Server.ResultCacheSize != 256 {
					t.Errorf("expected default cache size 256, got %d", cfg.Server.ResultCacheSize)
				}
				if cfg.Database.URL != "postgres://localhost/rbui" {
					t.Errorf("unexpected database url %q", cfg.Database.URL)
				}
				if cfg.Reports.Backend != "s3" || cfg.Reports.Bucket != "rbui-reports" {
					t.Errorf("unexpected reports config %+v", cfg.Reports)
				}
			},
		},
		{
			name: "null weights become an empty map",
			yaml: "scoring:\n  weights: null\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Scoring.Weights == nil {
					t.Error("expected non-nil weights")
				}
			},
		},
		{
			name:    "invalid YAML returns error",
			yaml:    "{{invalid yaml",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")

			if !tc.missing {
				if err := os.WriteFile(path, []byte(tc.yaml), 0o644); err != nil {
					t.Fatalf("write test config: %v", err)
				}
			}

			cfg, err := Load(path)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.check != nil {
				tc.check(t, cfg)
			}
		})
	}
}

func TestDirectoryFunctions(t *testing.T) {
	cache := CacheDir()
	reports := ReportDir()

	if !strings.HasSuffix(cache, filepath.Join(".cache", "rbui")) {
		t.Errorf("CacheDir should end with .cache/rbui, got %q", cache)
	}
	if reports != filepath.Join(cache, "reports") {
		t.Errorf("ReportDir = %q, want %q", reports, filepath.Join(cache, "reports"))
	}
}

func TestFindConfigFile(t *testing.T) {
	writeConfig := func(t *testing.T, root string) string {
		t.Helper()
		configDir := filepath.Join(root, ".rbui")
		if err := os.MkdirAll(configDir, 0o755); err != nil {
			t.Fatalf("create config dir: %v", err)
		}
		configPath := filepath.Join(configDir, "config.yaml")
		if err := os.WriteFile(configPath, []byte("{}"), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		return configPath
	}

	t.Run("found in current directory", func(t *testing.T) {
		root := t.TempDir()
		configPath := writeConfig(t, root)

		got := FindConfigFile(root)
		if got != configPath {
			t.Errorf("FindConfigFile = %q, want %q", got, configPath)
		}
	})

	t.Run("found in parent directory", func(t *testing.T) {
		root := t.TempDir()
		configPath := writeConfig(t, root)

		sub := filepath.Join(root, "a", "b", "c")
		if err := os.MkdirAll(sub, 0o755); err != nil {
			t.Fatalf("create sub: %v", err)
		}

		got := FindConfigFile(sub)
		if got != configPath {
			t.Errorf("FindConfigFile = %q, want %q", got, configPath)
		}
	})

	t.Run("not found", func(t *testing.T) {
		root := t.TempDir()
		got := FindConfigFile(root)
		if got != "" {
			t.Errorf("FindConfigFile = %q, want empty", got)
		}
	})
}

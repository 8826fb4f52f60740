// Package config handles loading and managing RBUI configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for RBUI.
type Config struct {
	Scoring  ScoringConfig  `yaml:"scoring"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Reports  ReportsConfig  `yaml:"reports"`
}

// ScoringConfig controls scoring behavior.
type ScoringConfig struct {
	// Weights overrides calculator weights by calculator key.
	Weights map[string]float64 `yaml:"weights"`
	// DefaultInspectionInterval (years) applies when a platform records none.
	DefaultInspectionInterval int `yaml:"default_inspection_interval"`
}

// ServerConfig controls the rbuid HTTP service.
type ServerConfig struct {
	Port            int    `yaml:"port"`
	APIKey          string `yaml:"api_key"`
	ResultCacheSize int    `yaml:"result_cache_size"`
	LogLevel        string `yaml:"log_level"`
}

// DatabaseConfig holds the Postgres connection string.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// ReportsConfig selects where score reports are written.
type ReportsConfig struct {
	Backend   string `yaml:"backend"` // local, s3, gcs
	LocalDir  string `yaml:"local_dir"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"` // S3-compatible endpoint, e.g. MinIO
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			Weights:                   map[string]float64{},
			DefaultInspectionInterval: 5,
		},
		Server: ServerConfig{
			Port:            8080,
			ResultCacheSize: 256,
			LogLevel:        "info",
		},
		Reports: ReportsConfig{
			Backend:  "local",
			LocalDir: ReportDir(),
			Region:   "us-east-1",
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Scoring.Weights == nil {
		cfg.Scoring.Weights = map[string]float64{}
	}

	return cfg, nil
}

// FindConfigFile looks for .rbui/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".rbui", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// CacheDir returns the per-user RBUI cache directory, ~/.cache/rbui.
func CacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to temp dir if HOME isn't available
		home = os.TempDir()
	}
	return filepath.Join(home, ".cache", "rbui")
}

// ReportDir returns the default directory for locally stored score reports.
func ReportDir() string {
	return filepath.Join(CacheDir(), "reports")
}

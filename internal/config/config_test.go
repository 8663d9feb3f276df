package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Lumos-Labs-HQ/mockdata/internal/export"
	"github.com/spf13/viper"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.OutputDir != "mockdata_out" {
		t.Errorf("Expected output_dir to be 'mockdata_out', got '%s'", config.OutputDir)
	}

	if config.Defaults.Rows != 100 {
		t.Errorf("Expected defaults.rows to be 100, got %d", config.Defaults.Rows)
	}

	if config.Defaults.Format != "json" {
		t.Errorf("Expected defaults.format to be 'json', got '%s'", config.Defaults.Format)
	}

	if config.Database.Provider != "postgresql" {
		t.Errorf("Expected database provider to be 'postgresql', got '%s'", config.Database.Provider)
	}

	if config.Database.URLEnv != "DATABASE_URL" {
		t.Errorf("Expected database url_env to be 'DATABASE_URL', got '%s'", config.Database.URLEnv)
	}

	if err := config.Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	content := `{
  "output_dir": "out",
  "defaults": {"rows": 0, "format": "csv", "dialect": "sqlite"},
  "database": {"provider": "mysql", "url_env": "MY_DB"},
  "server": {"addr": "127.0.0.1:9000"}
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}

	cfg, err := LoadFrom(v)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.OutputDir != "out" {
		t.Errorf("Expected output_dir 'out', got '%s'", cfg.OutputDir)
	}
	if cfg.Defaults.Rows != 0 {
		t.Errorf("Expected explicit rows 0 to be kept, got %d", cfg.Defaults.Rows)
	}
	if cfg.Defaults.Format != "csv" {
		t.Errorf("Expected format 'csv', got '%s'", cfg.Defaults.Format)
	}
	if cfg.Dialect() != export.DialectSQLite {
		t.Errorf("Expected sqlite dialect, got %s", cfg.Dialect())
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Expected server addr from file, got '%s'", cfg.Server.Addr)
	}
	if cfg.Server.MaxRows != 100000 {
		t.Errorf("Expected default max_rows, got %d", cfg.Server.MaxRows)
	}
}

func TestDialectFollowsProvider(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Dialect() != export.DialectPostgres {
		t.Errorf("Expected postgres dialect for postgresql provider, got %s", cfg.Dialect())
	}

	cfg.Database.Provider = "mysql"
	if cfg.Dialect() != export.DialectMySQL {
		t.Errorf("Expected mysql dialect, got %s", cfg.Dialect())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"provider", func(c *Config) { c.Database.Provider = "oracle" }, "unsupported database provider"},
		{"rows", func(c *Config) { c.Defaults.Rows = -1 }, "defaults.rows"},
		{"format", func(c *Config) { c.Defaults.Format = "yaml" }, "defaults.format"},
		{"dialect", func(c *Config) { c.Defaults.Dialect = "db2" }, "defaults.dialect"},
		{"batch", func(c *Config) { c.Defaults.BatchSize = -5 }, "batch_size"},
		{"output", func(c *Config) { c.OutputDir = "" }, "output_dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestGetDatabaseURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.URLEnv = "MOCKDATA_TEST_DB_URL"

	t.Setenv("MOCKDATA_TEST_DB_URL", "")
	if _, err := cfg.GetDatabaseURL(); err == nil {
		t.Error("Expected an error for an empty database URL")
	}

	t.Setenv("MOCKDATA_TEST_DB_URL", "postgres://localhost/test")
	url, err := cfg.GetDatabaseURL()
	if err != nil {
		t.Fatalf("GetDatabaseURL failed: %v", err)
	}
	if url != "postgres://localhost/test" {
		t.Errorf("Unexpected URL %s", url)
	}
}

func TestWriteAndIsInitialized(t *testing.T) {
	dir := t.TempDir()
	if IsInitialized(dir) {
		t.Fatal("Expected a fresh directory to be uninitialized")
	}

	cfg := DefaultConfig()
	cfg.OutputDir = filepath.Join(dir, "out")
	if err := cfg.Write(filepath.Join(dir, FileName)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !IsInitialized(dir) {
		t.Error("Expected directory to be initialized after Write")
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if _, err := os.Stat(cfg.OutputDir); err != nil {
		t.Errorf("Output directory was not created: %v", err)
	}
}

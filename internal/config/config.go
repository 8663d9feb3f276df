package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Lumos-Labs-HQ/mockdata/internal/export"
	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	FileName = "mockdata.config.json"
	Name     = "mockdata.config"
)

type Config struct {
	Version    string   `json:"version" mapstructure:"version"`
	SchemaPath string   `json:"schema_path" mapstructure:"schema_path"`
	OutputDir  string   `json:"output_dir" mapstructure:"output_dir"`
	Defaults   Defaults `json:"defaults" mapstructure:"defaults"`
	Database   Database `json:"database" mapstructure:"database"`
	Server     Server   `json:"server" mapstructure:"server"`
}

// Defaults apply when a command flag or schema document leaves a value unset.
type Defaults struct {
	Rows      int    `json:"rows" mapstructure:"rows"`
	Format    string `json:"format" mapstructure:"format"`
	TableName string `json:"table_name" mapstructure:"table_name"`
	Dialect   string `json:"dialect,omitempty" mapstructure:"dialect"`
	BatchSize int    `json:"batch_size" mapstructure:"batch_size"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

type Server struct {
	Addr    string `json:"addr" mapstructure:"addr"`
	MaxRows int    `json:"max_rows" mapstructure:"max_rows"`
}

// DefaultConfig is the configuration written by `mockdata init`.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults(nil)
	return cfg
}

// Load reads the configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.applyDefaults(v)
	return &cfg, nil
}

func (c *Config) applyDefaults(v *viper.Viper) {
	if c.Version == "" {
		c.Version = "1"
	}
	if c.SchemaPath == "" {
		c.SchemaPath = "mockdata.schema.yaml"
	}
	if c.OutputDir == "" {
		c.OutputDir = "mockdata_out"
	}
	if c.Defaults.Rows == 0 && (v == nil || !v.IsSet("defaults.rows")) {
		c.Defaults.Rows = 100
	}
	if c.Defaults.Format == "" {
		c.Defaults.Format = string(types.FormatJSON)
	}
	if c.Defaults.TableName == "" {
		c.Defaults.TableName = export.DefaultTableName
	}
	if c.Defaults.BatchSize == 0 {
		c.Defaults.BatchSize = 500
	}
	if c.Database.Provider == "" {
		c.Database.Provider = "postgresql"
	}
	if c.Database.URLEnv == "" {
		c.Database.URLEnv = "DATABASE_URL"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.MaxRows == 0 {
		c.Server.MaxRows = 100000
	}
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

// Dialect is the SQL dialect for file output: the configured one, or the one
// matching the database provider.
func (c *Config) Dialect() export.Dialect {
	name := c.Defaults.Dialect
	if name == "" {
		name = c.Database.Provider
	}
	d, err := export.ParseDialect(name)
	if err != nil {
		return export.DialectMySQL
	}
	return d
}

func (c *Config) EnsureDirectories() error {
	if c.OutputDir == "" || c.OutputDir == "." {
		return nil
	}
	if err := os.MkdirAll(c.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", c.OutputDir, err)
	}
	return nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}
	if c.Defaults.Rows < 0 || c.Defaults.Rows > types.MaxRows {
		return fmt.Errorf("defaults.rows must be between 0 and %d, got %d", types.MaxRows, c.Defaults.Rows)
	}
	if _, err := types.ParseFormat(c.Defaults.Format); err != nil {
		return fmt.Errorf("defaults.format: %w", err)
	}
	if c.Defaults.Dialect != "" {
		if _, err := export.ParseDialect(c.Defaults.Dialect); err != nil {
			return fmt.Errorf("defaults.dialect: %w", err)
		}
	}
	if c.Defaults.BatchSize < 0 {
		return fmt.Errorf("defaults.batch_size cannot be negative")
	}
	if c.Server.MaxRows <= 0 {
		return fmt.Errorf("server.max_rows must be positive")
	}
	return nil
}

// Write saves the configuration as indented JSON.
func (c *Config) Write(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// IsInitialized reports whether dir already holds a config file.
func IsInitialized(dir string) bool {
	if dir == "" {
		dir = "."
	}
	_, err := os.Stat(strings.TrimSuffix(dir, "/") + "/" + FileName)
	return err == nil
}

// LoadEnv loads .env files from the working directory. Missing files are not
// an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
	}
	godotenv.Load(".env.local")
}

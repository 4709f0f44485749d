// Package config loads truthtable settings from a TOML or YAML file, a .env
// file and TRUTHTABLE_* environment variables, in that order of precedence
// (later sources win).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/truthtable"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TRUTHTABLE_"

// Config holds the complete application configuration.
type Config struct {
	Table  TableConfig  `toml:"table" yaml:"table"`
	Server ServerConfig `toml:"server" yaml:"server"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// TableConfig holds truth table defaults.
type TableConfig struct {
	Truth        string `toml:"truth" yaml:"truth"`
	Falsity      string `toml:"falsity" yaml:"falsity"`
	Format       string `toml:"format" yaml:"format"`
	Workers      int    `toml:"workers" yaml:"workers"`
	MaxVariables int    `toml:"max_variables" yaml:"max_variables"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Port            string   `toml:"port" yaml:"port"`
	UseHTTP2        bool     `toml:"use_http2" yaml:"use_http2"`
	CorsOrigins     []string `toml:"cors_origins" yaml:"cors_origins"`
	ShutdownTimeout Duration `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
	BodyLimit       string   `toml:"body_limit" yaml:"body_limit"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Duration wraps time.Duration for "10s" style values in TOML and YAML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Table: TableConfig{
			Truth:        truthtable.DefaultTruthSymbol,
			Falsity:      truthtable.DefaultFalsitySymbol,
			Format:       "pretty",
			Workers:      1,
			MaxVariables: truthtable.DefaultMaxVariables,
		},
		Server: ServerConfig{
			Port:            "8080",
			CorsOrigins:     []string{"*"},
			ShutdownTimeout: Duration{10 * time.Second},
			BodyLimit:       "64K",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path over the defaults, then envFile (".env" when empty) and
// the environment. An empty path skips the file; a missing .env is ignored.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile decodes a TOML or YAML file chosen by extension.
func (c *Config) loadFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(content), c); err != nil {
			return fmt.Errorf("parse TOML config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, c); err != nil {
			return fmt.Errorf("parse YAML config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}

	return nil
}

// applyEnv overrides fields from TRUTHTABLE_* variables found by lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	integer := func(key string, dst *int) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = n
		return nil
	}

	str("TRUTH", &c.Table.Truth)
	str("FALSITY", &c.Table.Falsity)
	str("FORMAT", &c.Table.Format)
	if err := integer("WORKERS", &c.Table.Workers); err != nil {
		return err
	}
	if err := integer("MAX_VARIABLES", &c.Table.MaxVariables); err != nil {
		return err
	}

	str("PORT", &c.Server.Port)
	str("BODY_LIMIT", &c.Server.BodyLimit)
	if v, ok := lookup(EnvPrefix + "USE_HTTP2"); ok {
		c.Server.UseHTTP2 = v == "true" || v == "1"
	}
	if v, ok := lookup(EnvPrefix + "CORS_ORIGINS"); ok {
		c.Server.CorsOrigins = splitList(v)
	}
	if v, ok := lookup(EnvPrefix + "SHUTDOWN_TIMEOUT"); ok {
		if err := c.Server.ShutdownTimeout.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%sSHUTDOWN_TIMEOUT: %w", EnvPrefix, err)
		}
	}

	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	return nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if _, err := c.OutputFormat(); err != nil {
		return err
	}
	if c.Table.Workers < 1 {
		return fmt.Errorf("table.workers must be at least 1, got %d", c.Table.Workers)
	}
	if c.Table.MaxVariables < 1 || c.Table.MaxVariables > truthtable.MaxVariablesLimit {
		return fmt.Errorf("table.max_variables must be between 1 and %d, got %d", truthtable.MaxVariablesLimit, c.Table.MaxVariables)
	}
	if err := validatePort(c.Server.Port); err != nil {
		return fmt.Errorf("invalid port: %w", err)
	}
	if c.Server.ShutdownTimeout.Duration <= 0 {
		return errors.New("server.shutdown_timeout must be positive")
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	return nil
}

// OutputFormat returns the configured table format; "pretty" is reported
// as an empty Encoding.
func (c *Config) OutputFormat() (truthtable.Encoding, error) {
	if strings.EqualFold(c.Table.Format, "pretty") {
		return "", nil
	}

	return truthtable.ParseFormat(c.Table.Format)
}

// TableOptions converts the table section into library options.
func (c *Config) TableOptions() *truthtable.TableOptions {
	return &truthtable.TableOptions{
		Symbols:      []string{c.Table.Truth, c.Table.Falsity},
		MaxVariables: c.Table.MaxVariables,
		Workers:      c.Table.Workers,
	}
}

// validatePort checks a TCP port number.
func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}

// splitList splits a comma separated list, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

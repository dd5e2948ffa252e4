// Package config loads the settings of exprcheck from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	EnvPath     = "EXPRCHECK_ENV_PATH"
	EnvFormat   = "EXPRCHECK_FORMAT"
	EnvLogLevel = "EXPRCHECK_LOG_LEVEL"

	DefaultEnvPath  = ".env"
	DefaultFormat   = FormatText
	DefaultLogLevel = "warn"
)

// Output formats
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ErrInvalidValue is returned when a setting holds a value that is not
// understood.
var ErrInvalidValue = errors.New("invalid value")

type Config struct {
	Format   string
	LogLevel string
	// EnvFile is the .env file Load looked for, EnvFileLoaded whether it was
	// found. The caller logs a missing file once its logger is set up.
	EnvFile       string
	EnvFileLoaded bool
}

// Load reads the settings from the environment after loading the .env file at
// envPath into it. When envPath is empty, EXPRCHECK_ENV_PATH names the file,
// then DefaultEnvPath. A missing .env file is not an error.
func Load(envPath string) (*Config, error) {
	if envPath == "" {
		envPath = envOrDefault(EnvPath, DefaultEnvPath)
	}

	loaded := true
	if err := godotenv.Load(envPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envPath, err)
		}
		loaded = false
	}

	cfg := &Config{
		Format:        envOrDefault(EnvFormat, DefaultFormat),
		LogLevel:      envOrDefault(EnvLogLevel, DefaultLogLevel),
		EnvFile:       envPath,
		EnvFileLoaded: loaded,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply overrides the settings with the non-empty arguments, then validates
// the result.
func (c *Config) Apply(format, logLevel string) error {
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	c.Format = strings.ToLower(c.Format)
	c.LogLevel = strings.ToLower(c.LogLevel)

	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("format %q: %w", c.Format, ErrInvalidValue)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, ErrInvalidValue)
	}
	return nil
}

// Level returns the configured log level, warn when it is not known
func (c *Config) Level() zerolog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}

// parseLevel accepts the named zerolog levels only
func parseLevel(s string) (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, err
	}
	if level == zerolog.NoLevel || level.String() != s {
		return zerolog.NoLevel, fmt.Errorf("unknown level %q", s)
	}
	return level, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

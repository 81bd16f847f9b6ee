package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/sitetasks/internal/foundation/errors"
	"git.home.luguber.info/inful/sitetasks/internal/logfields"
)

// DefaultPath is the configuration file looked up when -c is not given.
const DefaultPath = "sitetasks.yaml"

// Environment variables that override file values.
const (
	EnvHugoBinary  = "SITETASKS_HUGO_BIN"
	EnvHugoDir     = "SITETASKS_HUGO_DIR"
	EnvLogLevel    = "SITETASKS_LOG_LEVEL"
	EnvLogFormat   = "SITETASKS_LOG_FORMAT"
	EnvMetricsFile = "SITETASKS_METRICS_FILE"
)

// Config represents the runner configuration. None of it changes the arguments
// the tasks pass to hugo.
type Config struct {
	Hugo    HugoConfig    `yaml:"hugo"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// HugoConfig locates the generator.
type HugoConfig struct {
	// Binary is the executable name or path.
	Binary string `yaml:"binary,omitempty"`
	// Dir is the site directory, relative to the directory the configuration
	// was loaded from; detected when empty.
	Dir string `yaml:"dir,omitempty"`
}

// LogConfig represents logging configuration.
type LogConfig struct {
	Level  LogLevel  `yaml:"level,omitempty"`
	Format LogFormat `yaml:"format,omitempty"`
}

// MetricsConfig represents metrics export configuration.
type MetricsConfig struct {
	// File, when set, receives a Prometheus textfile after each run.
	File string `yaml:"file,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load loads configuration from configPath. A relative configPath and the .env
// files are looked up in dir (the working directory when dir is empty). A
// missing file is an error only when required is true; otherwise defaults
// apply. Values from .env files and the process environment take precedence
// over the file.
func Load(dir, configPath string, required bool) (*Config, error) {
	if err := loadEnvFile(dir); err != nil {
		return nil, err
	}

	if dir != "" && !filepath.IsAbs(configPath) {
		configPath = filepath.Join(dir, configPath)
	}

	cfg := &Config{}
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := decode(data, cfg); err != nil {
			return nil, derrors.ConfigError("failed to parse configuration").
				WithCause(err).
				WithContext(logfields.KeyPath, configPath).
				Build()
		}
	case errors.Is(err, os.ErrNotExist) && !required:
		// defaults only
	case errors.Is(err, os.ErrNotExist):
		return nil, derrors.NotFoundError(fmt.Sprintf("configuration file not found: %s", configPath)).
			WithContext(logfields.KeyPath, configPath).
			Build()
	default:
		return nil, derrors.ConfigError("failed to read configuration").
			WithCause(err).
			WithContext(logfields.KeyPath, configPath).
			Build()
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode expands ${VAR} references and strictly unmarshals YAML.
func decode(data []byte, cfg *Config) error {
	expanded := os.ExpandEnv(string(data))
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvHugoBinary); v != "" {
		cfg.Hugo.Binary = v
	}
	if v := os.Getenv(EnvHugoDir); v != "" {
		cfg.Hugo.Dir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = LogLevel(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = LogFormat(v)
	}
	if v := os.Getenv(EnvMetricsFile); v != "" {
		cfg.Metrics.File = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Hugo.Binary == "" {
		cfg.Hugo.Binary = "hugo"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = LogLevelInfo
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = LogFormatText
	}
}

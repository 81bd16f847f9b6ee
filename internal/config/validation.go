package config

import (
	"fmt"
	"path/filepath"
	"strings"

	derrors "git.home.luguber.info/inful/sitetasks/internal/foundation/errors"
)

// Validate normalizes enum fields in place and rejects unusable values.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Hugo.Binary) == "" {
		return derrors.ConfigError("hugo.binary must not be empty").Build()
	}

	level := NormalizeLogLevel(string(cfg.Log.Level))
	if level == "" {
		return derrors.ConfigError(fmt.Sprintf("invalid log.level %q (valid: debug, info, warn, error)", cfg.Log.Level)).
			WithContext("field", "log.level").
			Build()
	}
	cfg.Log.Level = level

	format := NormalizeLogFormat(string(cfg.Log.Format))
	if format == "" {
		return derrors.ConfigError(fmt.Sprintf("invalid log.format %q (valid: text, json)", cfg.Log.Format)).
			WithContext("field", "log.format").
			Build()
	}
	cfg.Log.Format = format

	if cfg.Metrics.File != "" && strings.HasSuffix(cfg.Metrics.File, string(filepath.Separator)) {
		return derrors.ConfigError(fmt.Sprintf("metrics.file must be a file path, got directory %q", cfg.Metrics.File)).
			WithContext("field", "metrics.file").
			Build()
	}
	return nil
}

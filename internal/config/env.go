package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	derrors "git.home.luguber.info/inful/sitetasks/internal/foundation/errors"
	"git.home.luguber.info/inful/sitetasks/internal/logfields"
)

// envFiles are tried in order; the first one present is loaded.
var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads the first .env file found in dir.
// Existing process environment variables are not overwritten. The loaded
// variables are also inherited by hugo, so HUGO_* settings can live there.
func loadEnvFile(dir string) error {
	for _, name := range envFiles {
		name = filepath.Join(dir, name)
		if _, err := os.Stat(name); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return derrors.ConfigError(fmt.Sprintf("failed to load %s", name)).
				WithCause(err).
				WithContext(logfields.KeyPath, name).
				Build()
		}
		return nil
	}
	return nil
}

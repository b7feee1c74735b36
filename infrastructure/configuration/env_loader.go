package configuration

import (
	"os"

	"trending-ingest/infrastructure/logger"

	"github.com/joho/godotenv"
)

// LoadEnvFromFile loads KEY=VALUE pairs from one or more files (e.g., config.env, .env).
// Existing env vars are not overridden, so earlier files win over later ones.
// It returns the files that were read.
func LoadEnvFromFile(paths ...string) []string {
	var loaded []string
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		values, err := godotenv.Read(p)
		if err != nil {
			logger.GetLogger().WithField("file", p).WithField("error", err).Warn("Skipping unreadable env file")
			continue
		}
		loaded = append(loaded, p)
		for key, val := range values {
			if _, exists := os.LookupEnv(key); !exists {
				_ = os.Setenv(key, val)
			}
		}
	}
	return loaded
}

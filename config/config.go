// Package config reads the service's environment configuration.
package config

import (
	"os"

	"github.com/techdigest/api/errors"
)

// Config holds everything the server needs to start. BucketURL is a gocloud
// URL, e.g. "s3://tech-digest?region=us-east-1"; credentials ride in the
// ambient AWS environment.
type Config struct {
	Env       string
	Port      string
	BucketURL string
	SentryDSN string
}

// Load reads the environment. In production a missing bucket URL is a
// deployment defect and fails fast here, before any network call is made.
func Load() (*Config, error) {
	op := errors.Op("config.Load")

	c := &Config{
		Env:       getenv("GO_ENV", "development"),
		Port:      getenv("PORT", "8080"),
		BucketURL: getenv("BUCKET_URL", ""),
		SentryDSN: getenv("SENTRY_DSN", ""),
	}

	if c.IsProduction() && c.BucketURL == "" {
		return nil, errors.E(op, errors.MissingConfig, errors.Str("BUCKET_URL is not set"))
	}

	return c, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getenv(name, fallback string) string {
	if val, ok := os.LookupEnv(name); ok {
		return val
	}

	return fallback
}

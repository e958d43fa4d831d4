// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: optional
// .env files are read into the process environment first, then the
// environment is parsed into a struct annotated with `env` tags.
//
// # Usage
//
//	type Config struct {
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg,
//	    config.WithPrefix("GUARDCHECK_"),
//	    config.WithEnvFiles(".env"),
//	)
//
// Variables already present in the environment take precedence over values
// from .env files.
//
// # Error Handling
//
// Errors match one of ErrNilPointer, ErrLoadingEnvFile or ErrParsingConfig
// with errors.Is.
package config

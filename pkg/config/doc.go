// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` for .env files and
// `github.com/caarlos0/env/v11` for struct tag parsing:
//
//	type Config struct {
//	    Env       string        `env:"APP_ENV" envDefault:"development"`
//	    RulesFile string        `env:"ACN_RULES_FILE"`
//	    Timeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithEnvFiles("./config/.env")); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// Every call parses afresh; the package holds no global state, so tests can
// use WithEnvironment to feed a map instead of the process environment.
//
// # Error Handling
//
// Parse failures are joined with ErrParsingConfig, missing explicit .env
// files with ErrLoadingEnvFile, and a nil target returns ErrNilPointer.
// Inspect them with errors.Is.
package config

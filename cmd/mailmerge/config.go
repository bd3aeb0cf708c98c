package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/mailmerge/pkg/logger"
	"github.com/dmitrymomot/mailmerge/pkg/mailer/resend"
	"github.com/dmitrymomot/mailmerge/pkg/mailer/smtp"
)

// config holds the CLI environment configuration. A .env file in the
// working directory is loaded first when present; real environment
// variables win over it.
type config struct {
	SMTP     smtp.Config
	Resend   resend.Config
	Sentry   logger.SentryConfig
	RedisURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
}

func loadConfig() (*config, error) {
	_ = godotenv.Load()

	cfg := &config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

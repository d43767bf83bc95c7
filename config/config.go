package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string        `env:"FORUM_ADDR" envDefault:":5000"`
	DBDriver        string        `env:"FORUM_DB_DRIVER" envDefault:"sqlite"`
	DatabaseURL     string        `env:"FORUM_DATABASE_URL" envDefault:"forum.db"`
	ResetSchema     bool          `env:"FORUM_RESET_SCHEMA" envDefault:"false"`
	LogLevel        string        `env:"FORUM_LOG_LEVEL" envDefault:"info"`
	MetricsEnabled  bool          `env:"FORUM_METRICS_ENABLED" envDefault:"true"`
	ShutdownTimeout time.Duration `env:"FORUM_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads an optional .env file from the working directory and then
// parses the environment. Variables already set win over the file.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Package config loads the server configuration from the environment.
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
	Port          string `env:"PORT" envDefault:"8080"`
	GinMode       string `env:"GIN_MODE" envDefault:"debug"`
	ContentFile   string `env:"PORTFOLIO_CONTENT"`
	TemplatesGlob string `env:"PORTFOLIO_TEMPLATES" envDefault:"templates/*"`
	StaticDir     string `env:"PORTFOLIO_STATIC_DIR" envDefault:"static"`
	ImageDir      string `env:"PORTFOLIO_IMAGE_DIR" envDefault:"image"`
	LogLevel      string `env:"PORTFOLIO_LOG_LEVEL" envDefault:"normal"`
	LegacyEnabled bool   `env:"PORTFOLIO_LEGACY" envDefault:"false"`
	HashSalt      string `env:"PORTFOLIO_HASH_SALT"`

	AnimationStagger   time.Duration `env:"PORTFOLIO_ANIMATION_STAGGER" envDefault:"100ms"`
	AnimationThreshold float64       `env:"PORTFOLIO_ANIMATION_THRESHOLD" envDefault:"0.15"`
}

// Load reads an optional .env file from the working directory and then
// parses the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Addr is the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

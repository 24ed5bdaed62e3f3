// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	_ "time/tzdata" // zone data for TIME_ZONE on hosts without it

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Config holds all configuration for the application.
type Config struct {
	LogLevel     string        `mapstructure:"LOG_LEVEL"`
	LogFile      string        `mapstructure:"LOG_FILE"`
	HTTPAddr     string        `mapstructure:"HTTP_ADDR"`
	GithubOrg    string        `mapstructure:"GITHUB_ORG"`
	GithubAPIURL string        `mapstructure:"GITHUB_API_URL"`
	FetchTimeout time.Duration `mapstructure:"FETCH_TIMEOUT"`
	Locale       string        `mapstructure:"LOCALE"`
	TimeZone     string        `mapstructure:"TIME_ZONE"`

	LocaleTag language.Tag   `mapstructure:"-"`
	Location  *time.Location `mapstructure:"-"`
}

// LoadConfig reads configuration from file and/or environment variables.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("GITHUB_ORG", "GuilhermeStracini")
	v.SetDefault("GITHUB_API_URL", "https://api.github.com/")
	v.SetDefault("FETCH_TIMEOUT", "30s")
	v.SetDefault("LOCALE", "pt-BR")
	v.SetDefault("TIME_ZONE", "UTC")

	// Load from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // Ignore error if file not found

	// Bind environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("LOCALE must be a BCP 47 language tag (e.g. pt-BR): %w", err)
	}
	cfg.LocaleTag = tag

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("TIME_ZONE must be an IANA time zone name (e.g. America/Sao_Paulo): %w", err)
	}
	cfg.Location = loc

	// Validate required fields
	if strings.TrimSpace(cfg.GithubOrg) == "" {
		return nil, errors.New("GITHUB_ORG is a required configuration field")
	}
	if cfg.FetchTimeout <= 0 {
		return nil, errors.New("FETCH_TIMEOUT must be a positive duration")
	}

	return &cfg, nil
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

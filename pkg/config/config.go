package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	API     APIConfig
	Log     LogConfig
	Exports ExportsConfig
	Notify  NotifyConfig
}

// APIConfig describes the EVEP backend the client talks to.
type APIConfig struct {
	BaseURL string `validate:"required,url"`
	Prefix  string `validate:"required"`
	Token   string
	Timeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// ExportsConfig controls where rendered report files land.
type ExportsConfig struct {
	Dir        string `validate:"required"`
	PruneAfter time.Duration
}

// NotifyConfig tunes the transient notification slot.
type NotifyConfig struct {
	AutoDismiss time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// With an explicit config file viper surfaces a missing .env as a
	// plain *fs.PathError, not ConfigFileNotFoundError. Both just mean
	// env-var-only operation.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.API = APIConfig{
		BaseURL: strings.TrimRight(v.GetString("EVEP_API_BASE_URL"), "/"),
		Prefix:  v.GetString("EVEP_API_PREFIX"),
		Token:   v.GetString("EVEP_API_TOKEN"),
		Timeout: parseDuration(v.GetString("EVEP_API_TIMEOUT"), 30*time.Second),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Exports = ExportsConfig{
		Dir:        v.GetString("EXPORTS_DIR"),
		PruneAfter: parseDuration(v.GetString("EXPORTS_PRUNE_AFTER"), 30*24*time.Hour),
	}

	cfg.Notify = NotifyConfig{
		AutoDismiss: parseDuration(v.GetString("NOTIFY_AUTO_DISMISS"), 6*time.Second),
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	v := validator.New()
	if err := v.Struct(cfg.API); err != nil {
		return fmt.Errorf("invalid API config: %w", err)
	}
	if err := v.Struct(cfg.Exports); err != nil {
		return fmt.Errorf("invalid exports config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("EVEP_API_BASE_URL", "http://localhost:8080")
	v.SetDefault("EVEP_API_PREFIX", "/api/v1")
	v.SetDefault("EVEP_API_TOKEN", "")
	v.SetDefault("EVEP_API_TIMEOUT", "30s")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("EXPORTS_DIR", "./exports")
	v.SetDefault("EXPORTS_PRUNE_AFTER", "720h")

	v.SetDefault("NOTIFY_AUTO_DISMISS", "6s")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

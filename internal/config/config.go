package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrInvalidBonus    = errors.New("bonus base must be positive")
	ErrInvalidLogLevel = errors.New("unknown log level")
)

type Config struct {
	AppEnv   string
	LogLevel string

	GymName   string
	Capacity  int
	Currency  string
	BonusBase float64
}

// Load reads FITZONE_* variables, with an optional .env file in the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("FITZONE")
	v.AutomaticEnv()

	v.SetDefault("app_env", "production")
	v.SetDefault("log_level", "info")
	v.SetDefault("gym_name", "FitZone Premium")
	v.SetDefault("capacity", 100)
	v.SetDefault("currency", "MDL")
	v.SetDefault("bonus_base", 100.0)

	cfg := &Config{
		AppEnv:    v.GetString("app_env"),
		LogLevel:  v.GetString("log_level"),
		GymName:   v.GetString("gym_name"),
		Capacity:  v.GetInt("capacity"),
		Currency:  v.GetString("currency"),
		BonusBase: v.GetFloat64("bonus_base"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, c.Capacity)
	}
	if c.BonusBase <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidBonus, c.BonusBase)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return nil
}

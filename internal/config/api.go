package config

import (
	"errors"
	"fmt"
	"time"
)

const defaultRequestTimeout = 30 * time.Second

type ApiConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	RequestTimeout time.Duration `mapstructure:"request-timeout"`
}

func (cfg *ApiConfig) Validate() error {
	if cfg.Host == "" {
		return errors.New("missing api host")
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("api port must be between 1 and 65535 (inclusive)")
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	return nil
}

func (cfg *ApiConfig) Addr() string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Eth     EthConfig     `mapstructure:"eth"`
	Db      DbConfig      `mapstructure:"db"`
	Queue   QueueConfig   `mapstructure:"queue"`
	Poller  PollerConfig  `mapstructure:"poller"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Api     ApiConfig     `mapstructure:"api"`
	Chain   ChainConfig   `mapstructure:"chain"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Eth.Validate(); err != nil {
		return fmt.Errorf("invalid eth config: %w", err)
	}

	if err := cfg.Db.Validate(); err != nil {
		return fmt.Errorf("invalid db config: %w", err)
	}

	if err := cfg.Queue.Validate(); err != nil {
		return fmt.Errorf("invalid queue config: %w", err)
	}

	if err := cfg.Poller.Validate(); err != nil {
		return fmt.Errorf("invalid poller config: %w", err)
	}

	if err := cfg.Metrics.Validate(); err != nil {
		return fmt.Errorf("invalid metrics config: %w", err)
	}

	if err := cfg.Api.Validate(); err != nil {
		return fmt.Errorf("invalid api config: %w", err)
	}

	if err := cfg.Chain.Validate(); err != nil {
		return fmt.Errorf("invalid chain config: %w", err)
	}

	return nil
}

// New returns a fully parsed Config object from a given file path. Keys can
// be overridden from the environment with "__" as the nesting separator,
// e.g. DB__ADDRESS.
func New(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(cfgFile)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

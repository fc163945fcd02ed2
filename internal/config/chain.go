package config

import (
	"fmt"
	"time"

	"github.com/hexstaking/hex-staking-indexer/internal/types"
)

// ChainConfig overrides the launch date and big pay day for test networks.
// Both are optional.
type ChainConfig struct {
	// LaunchDate is an RFC3339 timestamp of the start of day 0.
	LaunchDate string `mapstructure:"launch-date"`
	BigPayDay  uint64 `mapstructure:"big-pay-day"`
}

func (cfg *ChainConfig) Validate() error {
	if cfg.LaunchDate == "" {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, cfg.LaunchDate); err != nil {
		return fmt.Errorf("invalid launch-date: %w", err)
	}
	return nil
}

func (cfg *ChainConfig) ToParams() (*types.ChainParams, error) {
	params := types.DefaultChainParams()

	if cfg.LaunchDate != "" {
		launch, err := time.Parse(time.RFC3339, cfg.LaunchDate)
		if err != nil {
			return nil, fmt.Errorf("invalid launch-date: %w", err)
		}
		params.LaunchDate = launch.UTC()
	}
	if cfg.BigPayDay != 0 {
		params.BigPayDay = cfg.BigPayDay
	}

	return params, nil
}

package config

import (
	"errors"
	"time"
)

const (
	defaultMaxRetryTimes = 5
	defaultRetryInterval = 500 * time.Millisecond

	defaultOwnerRefreshInterval = 5 * time.Minute
)

type PollerConfig struct {
	SnapshotPollingInterval time.Duration `mapstructure:"snapshot-polling-interval"`
	OwnerRefreshInterval    time.Duration `mapstructure:"owner-refresh-interval"`
	// TrackedOwnersLimit is the page size used when reading tracked owners.
	TrackedOwnersLimit uint64 `mapstructure:"tracked-owners-limit"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.SnapshotPollingInterval <= 0 {
		return errors.New("snapshot-polling-interval must be positive")
	}

	if cfg.TrackedOwnersLimit <= 0 {
		return errors.New("tracked-owners-limit must be positive")
	}

	if cfg.OwnerRefreshInterval <= 0 {
		cfg.OwnerRefreshInterval = defaultOwnerRefreshInterval
	}

	return nil
}

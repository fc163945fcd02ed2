package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/hexstaking/hex-staking-indexer/internal/types"
)

const (
	defaultEthTimeout            = 20 * time.Second
	defaultMaxConcurrentRequests = 16
	defaultDailyCacheSize        = 4096
)

// EthConfig defines configuration for the contract reader
type EthConfig struct {
	RPCAddr string `mapstructure:"rpc-addr"`
	// WSAddr is used for log subscriptions. Event watching is disabled when empty.
	WSAddr                string        `mapstructure:"ws-addr"`
	ContractAddress       string        `mapstructure:"contract-address"`
	Timeout               time.Duration `mapstructure:"timeout"`
	MaxRetryTimes         uint          `mapstructure:"max-retry-times"`
	RetryInterval         time.Duration `mapstructure:"retry-interval"`
	MaxConcurrentRequests int           `mapstructure:"max-concurrent-requests"`
	DailyCacheSize        int           `mapstructure:"daily-cache-size"`
}

func DefaultEthConfig() *EthConfig {
	return &EthConfig{
		RPCAddr:               "http://localhost:8545",
		ContractAddress:       types.DefaultContractAddress,
		Timeout:               defaultEthTimeout,
		MaxRetryTimes:         defaultMaxRetryTimes,
		RetryInterval:         defaultRetryInterval,
		MaxConcurrentRequests: defaultMaxConcurrentRequests,
		DailyCacheSize:        defaultDailyCacheSize,
	}
}

func (cfg *EthConfig) Validate() error {
	if cfg.RPCAddr == "" {
		return errors.New("rpc-addr cannot be empty")
	}
	if cfg.WSAddr != "" && !strings.HasPrefix(cfg.WSAddr, "ws") {
		return fmt.Errorf("ws-addr must be a websocket url, got %s", cfg.WSAddr)
	}

	if cfg.ContractAddress == "" {
		cfg.ContractAddress = types.DefaultContractAddress
	}
	if !common.IsHexAddress(cfg.ContractAddress) {
		return fmt.Errorf("invalid contract address %s", cfg.ContractAddress)
	}

	if cfg.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if cfg.MaxRetryTimes <= 0 {
		return errors.New("max-retry-times must be positive")
	}
	if cfg.RetryInterval <= 0 {
		return errors.New("retry-interval must be positive")
	}

	if cfg.MaxConcurrentRequests <= 0 {
		cfg.MaxConcurrentRequests = defaultMaxConcurrentRequests
	}
	if cfg.DailyCacheSize <= 0 {
		cfg.DailyCacheSize = defaultDailyCacheSize
	}

	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/hexstaking/hex-staking-indexer/internal/clients/hexclient"
	"github.com/hexstaking/hex-staking-indexer/internal/config"
	"github.com/hexstaking/hex-staking-indexer/internal/db"
)

// newHexClient returns the contract reader used by every command: the rpc
// client with metrics, behind the daily data cache.
func newHexClient(ctx context.Context, cfg *config.EthConfig) (hexclient.HexInterface, error) {
	client, err := hexclient.NewHexClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("error while creating hex client: %w", err)
	}

	cached, err := hexclient.NewHexClientWithCache(hexclient.NewHexClientWithMetrics(client), cfg.DailyCacheSize)
	if err != nil {
		return nil, err
	}
	return cached, nil
}

func newDbClient(ctx context.Context, cfg *config.DbConfig) (*db.Database, db.DbInterface, error) {
	database, err := db.New(ctx, *cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("error while creating db client: %w", err)
	}
	return database, db.NewDbWithMetrics(database), nil
}

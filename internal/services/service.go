package services

import (
	"context"

	"github.com/hexstaking/hex-staking-indexer/consumer"
	"github.com/hexstaking/hex-staking-indexer/internal/clients/hexclient"
	"github.com/hexstaking/hex-staking-indexer/internal/config"
	"github.com/hexstaking/hex-staking-indexer/internal/db"
	"github.com/hexstaking/hex-staking-indexer/internal/payout"
	"github.com/hexstaking/hex-staking-indexer/internal/types"
)

type Service struct {
	cfg      *config.Config
	db       db.DbInterface
	hex      hexclient.HexInterface
	consumer consumer.EventConsumer
	calc     *payout.Calculator
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	hex hexclient.HexInterface,
	consumer consumer.EventConsumer,
	params *types.ChainParams,
) *Service {
	return &Service{
		cfg:      cfg,
		db:       db,
		hex:      hex,
		consumer: consumer,
		calc:     payout.NewCalculator(params),
	}
}

func (s *Service) Params() *types.ChainParams {
	return s.calc.Params()
}

// StartIndexerSync starts the background refresh of the chain snapshot and
// the tracked owners, then blocks on the stake event subscription.
func (s *Service) StartIndexerSync(ctx context.Context) {
	s.StartSnapshotPoller(ctx)
	s.StartOwnerRefreshPoller(ctx)
	s.WatchStakeEvents(ctx)
}

func (s *Service) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

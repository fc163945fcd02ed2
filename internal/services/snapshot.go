package services

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/hexstaking/hex-staking-indexer/internal/codec"
	"github.com/hexstaking/hex-staking-indexer/internal/db/model"
	"github.com/hexstaking/hex-staking-indexer/internal/observability/metrics"
	"github.com/hexstaking/hex-staking-indexer/internal/types"
	"github.com/hexstaking/hex-staking-indexer/internal/utils/poller"
)

// FetchSnapshot reads globals, allocated supply and the current day
// concurrently and decodes them into an immutable snapshot.
func (s *Service) FetchSnapshot(ctx context.Context) (*types.ChainSnapshot, error) {
	var (
		rawGlobals      *codec.RawGlobals
		allocatedSupply *big.Int
		currentDay      uint64
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		if rawGlobals, err = s.hex.GetGlobals(ctx); err != nil {
			return newFetchFailure("globals", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if allocatedSupply, err = s.hex.GetAllocatedSupply(ctx); err != nil {
			return newFetchFailure("allocated supply", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if currentDay, err = s.hex.GetCurrentDay(ctx); err != nil {
			return newFetchFailure("current day", err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	globals, err := codec.DecodeGlobals(rawGlobals)
	if err != nil {
		return nil, err
	}
	supply, err := codec.ToUint("allocatedSupply", allocatedSupply)
	if err != nil {
		return nil, err
	}

	return &types.ChainSnapshot{
		Globals:         *globals,
		AllocatedSupply: supply,
		CurrentDay:      currentDay,
		FetchedAt:       time.Now().UTC(),
	}, nil
}

// GetCachedSnapshot returns the snapshot last persisted by the snapshot
// poller. It returns db.NotFoundError before the first poll completes.
func (s *Service) GetCachedSnapshot(ctx context.Context) (*types.ChainSnapshot, error) {
	doc, err := s.db.GetChainSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	snapshot, err := doc.ToChainSnapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to read stored chain snapshot: %w", err)
	}
	return snapshot, nil
}

// StartSnapshotPoller periodically persists the latest chain snapshot.
func (s *Service) StartSnapshotPoller(ctx context.Context) {
	snapshotPoller := poller.NewPoller(
		"snapshot",
		s.cfg.Poller.SnapshotPollingInterval,
		metrics.RecordPollerDuration("snapshot", s.refreshSnapshot),
	)
	go snapshotPoller.Start(ctx)
}

func (s *Service) refreshSnapshot(ctx context.Context) error {
	snapshot, err := s.FetchSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch chain snapshot: %w", err)
	}

	if err := s.db.UpsertChainSnapshot(ctx, model.FromChainSnapshot(snapshot)); err != nil {
		return fmt.Errorf("failed to save chain snapshot: %w", err)
	}
	metrics.RecordCurrentDay(snapshot.CurrentDay)

	logger := log.Ctx(ctx).Info().
		Uint64("current_day", snapshot.CurrentDay).
		Uint64("daily_data_count", snapshot.Globals.DailyDataCount).
		Str("stake_shares_total", snapshot.Globals.StakeSharesTotal.String())
	// claim counters are 51 bits wide and fit in a btcutil.Amount
	if stats := snapshot.Globals.ClaimStats; !stats.IsZero() {
		logger = logger.Str("unclaimed_btc", btcutil.Amount(stats.UnclaimedSatoshisTotal.Uint64()).String())
	}
	logger.Msg("Updated chain snapshot")

	return nil
}

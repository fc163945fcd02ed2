package services

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/hexstaking/hex-staking-indexer/internal/observability/metrics"
	"github.com/hexstaking/hex-staking-indexer/internal/utils/poller"
)

// StartOwnerRefreshPoller periodically recomputes the stakes of every
// tracked owner.
func (s *Service) StartOwnerRefreshPoller(ctx context.Context) {
	ownerPoller := poller.NewPoller(
		"owner_refresh",
		s.cfg.Poller.OwnerRefreshInterval,
		metrics.RecordPollerDuration("owner_refresh", s.refreshTrackedOwners),
	)
	go ownerPoller.Start(ctx)
}

func (s *Service) refreshTrackedOwners(ctx context.Context) error {
	log := log.Ctx(ctx)

	count, err := s.db.CountTrackedOwners(ctx)
	if err != nil {
		return fmt.Errorf("failed to count tracked owners: %w", err)
	}
	metrics.RecordTrackedOwnersCount(int(count))
	if count == 0 {
		log.Debug().Msg("No tracked owners - skipping refresh")
		return nil
	}

	// all owners of one round are computed against the same snapshot
	snapshot, err := s.FetchSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch chain snapshot: %w", err)
	}

	pageSize := s.cfg.Poller.TrackedOwnersLimit
	var refreshed, failed int
	var lastOwner string
	for {
		owners, err := s.db.GetTrackedOwners(ctx, lastOwner, pageSize)
		if err != nil {
			return fmt.Errorf("failed to get tracked owners after %q: %w", lastOwner, err)
		}

		for _, owner := range owners {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			refreshed++
			if !common.IsHexAddress(owner.Owner) {
				log.Warn().Str("owner", owner.Owner).Msg("Skipping tracked owner with invalid address")
				continue
			}
			if _, err := s.refreshOwner(ctx, common.HexToAddress(owner.Owner), snapshot); err != nil {
				failed++
				log.Error().Err(err).Str("owner", owner.Owner).Msg("Failed to refresh owner stakes")
			}
		}

		if uint64(len(owners)) < pageSize {
			break
		}
		lastOwner = owners[len(owners)-1].Owner
	}

	log.Info().
		Int("owners", refreshed).
		Int("failed", failed).
		Uint64("current_day", snapshot.CurrentDay).
		Msg("Refreshed tracked owners")

	if failed > 0 {
		return fmt.Errorf("failed to refresh %d of %d tracked owners", failed, refreshed)
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/hexstaking/hex-staking-indexer/internal/clients/hexclient"
	"github.com/hexstaking/hex-staking-indexer/internal/observability/metrics"
	"github.com/hexstaking/hex-staking-indexer/internal/types"
)

const (
	stakeEventsChanSize     = 256
	resubscribeInitialDelay = time.Second
	resubscribeMaxDelay     = time.Minute
)

// WatchStakeEvents subscribes to StakeStart and StakeEnd logs and refreshes
// tracked owners as their stakes change. It resubscribes with backoff until
// ctx is done and returns immediately if events are not configured.
func (s *Service) WatchStakeEvents(ctx context.Context) {
	events := make(chan *types.StakeEvent, stakeEventsChanSize)
	go s.processStakeEvents(ctx, events)

	err := retry.Do(
		func() error {
			err := s.hex.SubscribeStakeEvents(ctx, nil, events)
			switch {
			case errors.Is(err, hexclient.ErrEventsDisabled):
				return retry.Unrecoverable(err)
			case ctx.Err() != nil:
				return retry.Unrecoverable(ctx.Err())
			case err == nil:
				return errors.New("stake events subscription closed")
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(0),
		retry.Delay(resubscribeInitialDelay),
		retry.MaxDelay(resubscribeMaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Warn().
				Err(err).
				Uint("attempt", n+1).
				Msg("Resubscribing to stake events")
		}),
	)

	switch {
	case errors.Is(err, hexclient.ErrEventsDisabled):
		log.Ctx(ctx).Warn().Err(err).Msg("Stake event watcher disabled")
	case err != nil && ctx.Err() == nil:
		log.Ctx(ctx).Error().Err(err).Msg("Stake event watcher stopped")
	}
}

func (s *Service) processStakeEvents(ctx context.Context, events <-chan *types.StakeEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if err := s.handleStakeEvent(ctx, ev); err != nil {
				log.Ctx(ctx).Error().
					Err(err).
					Str("tx", ev.TxHash).
					Str("type", ev.Type.String()).
					Msg("Failed to handle stake event")
			}
		}
	}
}

func (s *Service) handleStakeEvent(ctx context.Context, ev *types.StakeEvent) error {
	metrics.IncStakeEvents(ev.Type.String())

	staker := ev.StakerAddr()
	if !common.IsHexAddress(staker) {
		return fmt.Errorf("invalid staker address %q", staker)
	}
	owner := common.HexToAddress(staker)

	tracked, err := s.db.IsTrackedOwner(ctx, owner.Hex())
	if err != nil {
		return fmt.Errorf("failed to check tracked owner %s: %w", owner.Hex(), err)
	}
	if !tracked {
		return nil
	}

	log.Ctx(ctx).Debug().
		Str("owner", owner.Hex()).
		Str("type", ev.Type.String()).
		Uint64("block", ev.BlockNumber).
		Msg("Refreshing owner after stake event")

	_, err = s.RefreshOwner(ctx, owner)
	return err
}

package services

import (
	"context"
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/hexstaking/hex-staking-indexer/internal/codec"
	"github.com/hexstaking/hex-staking-indexer/internal/db"
	"github.com/hexstaking/hex-staking-indexer/internal/db/model"
	"github.com/hexstaking/hex-staking-indexer/internal/observability/metrics"
	"github.com/hexstaking/hex-staking-indexer/internal/payout"
	"github.com/hexstaking/hex-staking-indexer/internal/types"
)

// OwnerStakes is the computed stake list of one owner. Snapshot is nil for
// stakes read back from the database.
type OwnerStakes struct {
	Owner      string
	CurrentDay uint64
	Snapshot   *types.ChainSnapshot
	Stakes     []*types.StakeRecord
	Totals     types.StakeTotals
	UpdatedAt  time.Time
}

// LoadStakes loads every stake of owner and computes its payout against the
// given snapshot. A single failing stake fails the whole batch. The order of
// the returned list is unspecified.
func (s *Service) LoadStakes(
	ctx context.Context, owner common.Address, snapshot *types.ChainSnapshot,
) ([]*types.StakeRecord, error) {
	count, err := s.hex.GetStakeCount(ctx, owner)
	if err != nil {
		return nil, newFetchFailure("stake count", err)
	}
	if count == 0 {
		return []*types.StakeRecord{}, nil
	}

	p := pool.NewWithResults[*types.StakeRecord]().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(s.cfg.Eth.MaxConcurrentRequests)
	for index := range count {
		p.Go(func(ctx context.Context) (*types.StakeRecord, error) {
			return s.loadStake(ctx, owner, index, snapshot)
		})
	}

	stakes, err := p.Wait()
	if err != nil {
		return nil, err
	}
	return stakes, nil
}

func (s *Service) loadStake(
	ctx context.Context, owner common.Address, index uint64, snapshot *types.ChainSnapshot,
) (*types.StakeRecord, error) {
	raw, err := s.hex.GetStake(ctx, owner, index)
	if err != nil {
		return nil, newStakeFetchFailure("stake", index, err)
	}

	currentDay := snapshot.CurrentDay
	record := &types.StakeRecord{
		StakeID:      raw.StakeID,
		LockedDay:    raw.LockedDay,
		StakedDays:   raw.StakedDays,
		StakedHearts: raw.StakedHearts,
		StakeShares:  raw.StakeShares,
		UnlockedDay:  raw.UnlockedDay,
		IsAutoStake:  raw.IsAutoStake,
		Progress:     payout.Progress(raw.LockedDay, raw.StakedDays, currentDay),
		ExitStatus:   payout.ClassifyExit(raw.LockedDay, raw.StakedDays, currentDay),
		Payout:       sdkmath.ZeroUint(),
		BigPayDay:    sdkmath.ZeroUint(),
	}

	// nothing has accrued before the first full day
	if currentDay < record.LockedDay+1 {
		return record, nil
	}

	days, err := s.loadServedDays(ctx, index, record.Terms(), snapshot)
	if err != nil {
		return nil, err
	}

	res, err := s.calc.ComputePayout(record.Terms(), snapshot, days)
	if err != nil {
		return nil, fmt.Errorf("failed to compute payout of stake %d: %w", record.StakeID, err)
	}
	record.Payout = res.Interest
	record.BigPayDay = res.BigPayDay
	record.PayoutComputed = true

	return record, nil
}

// loadServedDays returns the decoded daily records of
// [lockedDay, min(currentDay, endDay)). Days the contract has not stored yet
// are left out.
func (s *Service) loadServedDays(
	ctx context.Context, index uint64, terms types.StakeTerms, snapshot *types.ChainSnapshot,
) ([]types.DailyRecord, error) {
	begin := terms.LockedDay
	end := min(snapshot.CurrentDay, terms.EndDay(), snapshot.Globals.DailyDataCount)
	if begin >= end {
		return nil, nil
	}

	words, err := s.hex.GetDailyDataRange(ctx, begin, end)
	if err != nil {
		return nil, newStakeFetchFailure("daily data", index, err)
	}
	days, err := codec.DecodeDailyRange(words)
	if err != nil {
		return nil, fmt.Errorf("failed to decode daily data [%d, %d): %w", begin, end, err)
	}
	return days, nil
}

// LoadOwnerStakes takes a fresh snapshot and computes every stake of owner.
func (s *Service) LoadOwnerStakes(ctx context.Context, owner common.Address) (result *OwnerStakes, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordStakeLoadDuration(time.Since(start), err != nil)
	}()

	snapshot, err := s.FetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.loadOwnerStakes(ctx, owner, snapshot)
}

func (s *Service) loadOwnerStakes(
	ctx context.Context, owner common.Address, snapshot *types.ChainSnapshot,
) (*OwnerStakes, error) {
	stakes, err := s.LoadStakes(ctx, owner, snapshot)
	if err != nil {
		return nil, err
	}

	return &OwnerStakes{
		Owner:      owner.Hex(),
		CurrentDay: snapshot.CurrentDay,
		Snapshot:   snapshot,
		Stakes:     stakes,
		Totals:     types.SumStakes(stakes),
		UpdatedAt:  snapshot.FetchedAt,
	}, nil
}

// RefreshOwner recomputes the stakes of owner, persists them and notifies
// consumers.
func (s *Service) RefreshOwner(ctx context.Context, owner common.Address) (*OwnerStakes, error) {
	snapshot, err := s.FetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.refreshOwner(ctx, owner, snapshot)
}

func (s *Service) refreshOwner(
	ctx context.Context, owner common.Address, snapshot *types.ChainSnapshot,
) (result *OwnerStakes, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordStakeLoadDuration(time.Since(start), err != nil)
	}()

	result, err = s.loadOwnerStakes(ctx, owner, snapshot)
	if err != nil {
		return nil, err
	}

	doc := model.NewOwnerStakesDocument(
		result.Owner, result.CurrentDay, result.Stakes, result.Totals, result.UpdatedAt,
	)
	if err := s.db.UpsertOwnerStakes(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to save stakes of %s: %w", result.Owner, err)
	}

	ev := &types.OwnerStakesUpdatedEvent{
		Owner:      result.Owner,
		CurrentDay: result.CurrentDay,
		StakeCount: len(result.Stakes),
		Totals:     result.Totals,
		UpdatedAt:  result.UpdatedAt.Unix(),
	}
	if err := s.consumer.PushOwnerStakesUpdatedEvent(ctx, ev); err != nil {
		metrics.RecordQueueSendError()
		log.Ctx(ctx).Error().Err(err).
			Str("owner", result.Owner).
			Msg("failed to publish owner stakes updated event")
	}

	log.Ctx(ctx).Debug().
		Str("owner", result.Owner).
		Int("stakes", len(result.Stakes)).
		Uint64("current_day", result.CurrentDay).
		Msg("Refreshed owner stakes")

	return result, nil
}

// GetCachedOwnerStakes returns the last persisted stakes of owner.
func (s *Service) GetCachedOwnerStakes(ctx context.Context, owner common.Address) (*OwnerStakes, error) {
	doc, err := s.db.GetOwnerStakes(ctx, owner.Hex())
	if err != nil {
		return nil, err
	}

	stakes, err := doc.ToStakeRecords()
	if err != nil {
		return nil, fmt.Errorf("failed to read stored stakes of %s: %w", doc.Owner, err)
	}

	return &OwnerStakes{
		Owner:      doc.Owner,
		CurrentDay: doc.CurrentDay,
		Stakes:     stakes,
		Totals:     types.SumStakes(stakes),
		UpdatedAt:  time.Unix(doc.UpdatedAt, 0).UTC(),
	}, nil
}

// TrackOwner adds owner to the set refreshed in the background. Tracking an
// already tracked owner is a no-op.
func (s *Service) TrackOwner(ctx context.Context, owner common.Address, source model.TrackedOwnerSource) error {
	err := s.db.AddTrackedOwner(ctx, &model.TrackedOwnerDocument{
		Owner:   owner.Hex(),
		AddedAt: time.Now().Unix(),
		Source:  source,
	})
	if err != nil && !db.IsDuplicateKeyError(err) {
		return fmt.Errorf("failed to track owner %s: %w", owner.Hex(), err)
	}
	return nil
}

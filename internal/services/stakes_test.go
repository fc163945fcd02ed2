package services

import (
	"context"
	"errors"
	"math/big"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hexstaking/hex-staking-indexer/internal/codec"
	"github.com/hexstaking/hex-staking-indexer/internal/db"
	"github.com/hexstaking/hex-staking-indexer/internal/db/model"
	"github.com/hexstaking/hex-staking-indexer/internal/payout"
	"github.com/hexstaking/hex-staking-indexer/internal/types"
	"github.com/hexstaking/hex-staking-indexer/testutil"
)

func TestLoadStakes(t *testing.T) {
	ctx := context.Background()

	t.Run("owner without stakes", func(t *testing.T) {
		s := newTestService(t)
		owner := testutil.RandomAddress(t)
		s.hex.On("GetStakeCount", mock.Anything, owner).Return(uint64(0), nil).Once()

		stakes, err := s.LoadStakes(ctx, owner, testSnapshot(10, 10, types.ZeroClaimStats()))
		require.NoError(t, err)
		assert.Empty(t, stakes)

		totals := types.SumStakes(stakes)
		assert.True(t, totals.StakedHearts.IsZero())
		assert.True(t, totals.Interest.IsZero())
		assert.True(t, totals.BigPayDay.IsZero())
	})

	t.Run("totals equal the sum of every stake", func(t *testing.T) {
		s := newTestService(t)
		owner := testutil.RandomAddress(t)
		snapshot := testSnapshot(2000, 1500, types.ZeroClaimStats())
		day := testutil.RandomDailyRecord(t)
		word := encodeDay(t, day)

		const count = 7
		raws := make(map[uint64]*types.RawStake, count)
		s.hex.On("GetStakeCount", mock.Anything, owner).Return(uint64(count), nil).Once()
		for i := range uint64(count) {
			raw := testutil.RandomRawStake(t)
			raw.StakeID = i + 1
			raws[raw.StakeID] = raw
			s.hex.On("GetStake", mock.Anything, owner, i).Return(raw, nil).Once()
		}
		s.hex.On("GetDailyDataRange", mock.Anything, mock.Anything, mock.Anything).
			Return(func(_ context.Context, begin, end uint64) ([]*big.Int, error) {
				return repeatWord(word, end-begin), nil
			}, nil)

		stakes, err := s.LoadStakes(ctx, owner, snapshot)
		require.NoError(t, err)
		require.Len(t, stakes, count)

		calc := payout.NewCalculator(types.DefaultChainParams())
		hearts, shares, interest := sdkmath.ZeroUint(), sdkmath.ZeroUint(), sdkmath.ZeroUint()
		for _, stake := range stakes {
			raw := raws[stake.StakeID]
			require.NotNil(t, raw)
			assertUintEqual(t, raw.StakedHearts, stake.StakedHearts)
			assert.True(t, stake.PayoutComputed)

			served := min(snapshot.CurrentDay, raw.LockedDay+raw.StakedDays, snapshot.Globals.DailyDataCount) - raw.LockedDay
			days := make([]types.DailyRecord, served)
			for i := range days {
				days[i] = day
			}
			expected, err := calc.ComputePayout(stake.Terms(), snapshot, days)
			require.NoError(t, err)
			assertUintEqual(t, expected.Interest, stake.Payout)

			hearts = hearts.Add(stake.StakedHearts)
			shares = shares.Add(stake.StakeShares)
			interest = interest.Add(stake.Payout)
		}

		totals := types.SumStakes(stakes)
		assertUintEqual(t, hearts, totals.StakedHearts)
		assertUintEqual(t, shares, totals.StakeShares)
		assertUintEqual(t, interest, totals.Interest)
	})

	t.Run("stake that has not served a day is not accumulated", func(t *testing.T) {
		s := newTestService(t)
		owner := testutil.RandomAddress(t)
		raw := &types.RawStake{
			StakeID:      1,
			StakedHearts: sdkmath.NewUint(1_000),
			StakeShares:  sdkmath.NewUint(1_000),
			LockedDay:    0,
			StakedDays:   10,
		}
		s.hex.On("GetStakeCount", mock.Anything, owner).Return(uint64(1), nil).Once()
		s.hex.On("GetStake", mock.Anything, owner, uint64(0)).Return(raw, nil).Once()

		stakes, err := s.LoadStakes(ctx, owner, testSnapshot(0, 0, types.ZeroClaimStats()))
		require.NoError(t, err)
		require.Len(t, stakes, 1)

		assert.False(t, stakes[0].PayoutComputed)
		assert.True(t, stakes[0].Payout.IsZero())
		assert.True(t, stakes[0].BigPayDay.IsZero())
		assert.Equal(t, types.ExitEarly, stakes[0].ExitStatus)
		s.hex.AssertNotCalled(t, "GetDailyDataRange", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("daily range is capped at the stored day count", func(t *testing.T) {
		s := newTestService(t)
		owner := testutil.RandomAddress(t)
		raw := &types.RawStake{
			StakeID:      1,
			StakedHearts: sdkmath.NewUint(1_000),
			StakeShares:  sdkmath.NewUint(1_000),
			LockedDay:    5,
			StakedDays:   100,
		}
		day := testutil.RandomDailyRecord(t)
		s.hex.On("GetStakeCount", mock.Anything, owner).Return(uint64(1), nil).Once()
		s.hex.On("GetStake", mock.Anything, owner, uint64(0)).Return(raw, nil).Once()
		s.hex.On("GetDailyDataRange", mock.Anything, uint64(5), uint64(20)).
			Return(repeatWord(encodeDay(t, day), 15), nil).Once()

		stakes, err := s.LoadStakes(ctx, owner, testSnapshot(30, 20, types.ZeroClaimStats()))
		require.NoError(t, err)
		require.Len(t, stakes, 1)
		assert.True(t, stakes[0].PayoutComputed)
	})

	t.Run("big pay day is included once", func(t *testing.T) {
		s := newTestService(t)
		owner := testutil.RandomAddress(t)
		raw := &types.RawStake{
			StakeID:      1,
			StakedHearts: sdkmath.NewUint(1_000_000),
			StakeShares:  sdkmath.NewUint(1_000_000),
			LockedDay:    0,
			StakedDays:   400,
		}
		s.hex.On("GetStakeCount", mock.Anything, owner).Return(uint64(1), nil).Twice()
		s.hex.On("GetStake", mock.Anything, owner, uint64(0)).Return(raw, nil).Twice()

		// no daily data stored, only the current day and the big pay day accrue
		before, err := s.LoadStakes(ctx, owner, testSnapshot(300, 0, bpdClaimStats()))
		require.NoError(t, err)
		after, err := s.LoadStakes(ctx, owner, testSnapshot(360, 0, bpdClaimStats()))
		require.NoError(t, err)

		require.Len(t, before, 1)
		require.Len(t, after, 1)
		bpd := after[0].BigPayDay
		assert.False(t, bpd.IsZero())
		assertUintEqual(t, bpd, before[0].BigPayDay)
		// the current day interest is the same on both days
		assertUintEqual(t, before[0].Payout.Add(bpd), after[0].Payout)

		totals := types.SumStakes(after)
		assertUintEqual(t, bpd, totals.BigPayDay)
		assertUintEqual(t, after[0].Payout, totals.Interest)
	})

	t.Run("one failing stake fails the batch", func(t *testing.T) {
		s := newTestService(t)
		owner := testutil.RandomAddress(t)
		fetchErr := errors.New("rpc unavailable")
		word := encodeDay(t, testutil.RandomDailyRecord(t))

		s.hex.On("GetStakeCount", mock.Anything, owner).Return(uint64(3), nil).Once()
		s.hex.On("GetStake", mock.Anything, owner, uint64(0)).Return(testutil.RandomRawStake(t), nil).Maybe()
		s.hex.On("GetStake", mock.Anything, owner, uint64(1)).Return(nil, fetchErr).Once()
		s.hex.On("GetStake", mock.Anything, owner, uint64(2)).Return(testutil.RandomRawStake(t), nil).Maybe()
		s.hex.On("GetDailyDataRange", mock.Anything, mock.Anything, mock.Anything).
			Return(func(_ context.Context, begin, end uint64) ([]*big.Int, error) {
				return repeatWord(word, end-begin), nil
			}, nil).Maybe()

		stakes, err := s.LoadStakes(ctx, owner, testSnapshot(500, 500, types.ZeroClaimStats()))
		require.Error(t, err)
		assert.Nil(t, stakes)
		assert.ErrorIs(t, err, fetchErr)

		var fetchFailure *FetchFailureError
		require.ErrorAs(t, err, &fetchFailure)
		require.NotNil(t, fetchFailure.Index)
		assert.Equal(t, uint64(1), *fetchFailure.Index)
	})

	t.Run("stake count failure", func(t *testing.T) {
		s := newTestService(t)
		owner := testutil.RandomAddress(t)
		s.hex.On("GetStakeCount", mock.Anything, owner).Return(uint64(0), errors.New("timeout")).Once()

		_, err := s.LoadStakes(ctx, owner, testSnapshot(10, 10, types.ZeroClaimStats()))
		require.True(t, IsFetchFailureError(err))
	})

	t.Run("corrupt daily word fails the batch", func(t *testing.T) {
		s := newTestService(t)
		owner := testutil.RandomAddress(t)
		raw := &types.RawStake{
			StakeID:      1,
			StakedHearts: sdkmath.NewUint(1_000),
			StakeShares:  sdkmath.NewUint(1_000),
			LockedDay:    1,
			StakedDays:   2,
		}
		s.hex.On("GetStakeCount", mock.Anything, owner).Return(uint64(1), nil).Once()
		s.hex.On("GetStake", mock.Anything, owner, uint64(0)).Return(raw, nil).Once()
		tooWide := new(big.Int).Lsh(big.NewInt(1), 255)
		s.hex.On("GetDailyDataRange", mock.Anything, uint64(1), uint64(3)).
			Return([]*big.Int{tooWide, tooWide}, nil).Once()

		_, err := s.LoadStakes(ctx, owner, testSnapshot(10, 10, types.ZeroClaimStats()))
		require.Error(t, err)
		assert.True(t, codec.IsDecodeError(err))
	})
}

func TestRefreshOwner(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and publishes", func(t *testing.T) {
		s := newTestService(t)
		owner := testutil.RandomAddress(t)
		expectSnapshotFetch(s, testCurrentDay)
		s.hex.On("GetStakeCount", mock.Anything, owner).Return(uint64(0), nil).Once()
		s.db.On("UpsertOwnerStakes", mock.Anything, mock.MatchedBy(func(doc *model.OwnerStakesDocument) bool {
			return doc.Owner == owner.Hex() && len(doc.Stakes) == 0 && doc.CurrentDay == testCurrentDay
		})).Return(nil).Once()
		s.consumer.On("PushOwnerStakesUpdatedEvent", mock.Anything, mock.MatchedBy(func(ev *types.OwnerStakesUpdatedEvent) bool {
			return ev.Owner == owner.Hex() && ev.StakeCount == 0 && ev.CurrentDay == testCurrentDay
		})).Return(nil).Once()

		res, err := s.RefreshOwner(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, owner.Hex(), res.Owner)
		assert.Equal(t, uint64(testCurrentDay), res.CurrentDay)
	})

	t.Run("publish failure does not fail the refresh", func(t *testing.T) {
		s := newTestService(t)
		owner := testutil.RandomAddress(t)
		expectSnapshotFetch(s, testCurrentDay)
		s.hex.On("GetStakeCount", mock.Anything, owner).Return(uint64(0), nil).Once()
		s.db.On("UpsertOwnerStakes", mock.Anything, mock.Anything).Return(nil).Once()
		s.consumer.On("PushOwnerStakesUpdatedEvent", mock.Anything, mock.Anything).
			Return(errors.New("channel closed")).Once()

		_, err := s.RefreshOwner(ctx, owner)
		require.NoError(t, err)
	})

	t.Run("db failure fails the refresh", func(t *testing.T) {
		s := newTestService(t)
		owner := testutil.RandomAddress(t)
		expectSnapshotFetch(s, testCurrentDay)
		s.hex.On("GetStakeCount", mock.Anything, owner).Return(uint64(0), nil).Once()
		s.db.On("UpsertOwnerStakes", mock.Anything, mock.Anything).Return(errors.New("write conflict")).Once()

		_, err := s.RefreshOwner(ctx, owner)
		require.Error(t, err)
		s.consumer.AssertNotCalled(t, "PushOwnerStakesUpdatedEvent", mock.Anything, mock.Anything)
	})
}

func TestGetCachedOwnerStakes(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)
	owner := testutil.RandomAddress(t)

	record := &types.StakeRecord{
		StakeID:      9,
		LockedDay:    10,
		StakedDays:   20,
		StakedHearts: sdkmath.NewUint(500),
		StakeShares:  sdkmath.NewUint(700),
		Progress:     50_000,
		ExitStatus:   types.ExitMid,
		Payout:       sdkmath.NewUint(33),
		BigPayDay:    sdkmath.ZeroUint(),
	}
	stakes := []*types.StakeRecord{record}
	doc := model.NewOwnerStakesDocument(owner.Hex(), 20, stakes, types.SumStakes(stakes), testSnapshot(20, 20, types.ZeroClaimStats()).FetchedAt)
	s.db.On("GetOwnerStakes", mock.Anything, owner.Hex()).Return(doc, nil).Once()

	res, err := s.GetCachedOwnerStakes(ctx, owner)
	require.NoError(t, err)
	require.Len(t, res.Stakes, 1)
	got := res.Stakes[0]
	assert.Equal(t, record.StakeID, got.StakeID)
	assert.Equal(t, record.LockedDay, got.LockedDay)
	assert.Equal(t, record.Progress, got.Progress)
	assert.Equal(t, record.ExitStatus, got.ExitStatus)
	assertUintEqual(t, record.StakedHearts, got.StakedHearts)
	assertUintEqual(t, record.Payout, got.Payout)
	assertUintEqual(t, record.BigPayDay, got.BigPayDay)
	assert.Equal(t, uint64(20), res.CurrentDay)
	assert.Nil(t, res.Snapshot)
	assertUintEqual(t, sdkmath.NewUint(33), res.Totals.Interest)
}

func TestTrackOwner(t *testing.T) {
	ctx := context.Background()

	t.Run("already tracked", func(t *testing.T) {
		s := newTestService(t)
		owner := testutil.RandomAddress(t)
		s.db.On("AddTrackedOwner", mock.Anything, mock.Anything).
			Return(&db.DuplicateKeyError{Key: owner.Hex(), Message: "duplicate"}).Once()

		require.NoError(t, s.TrackOwner(ctx, owner, model.TrackedOwnerSourceApi))
	})

	t.Run("db failure", func(t *testing.T) {
		s := newTestService(t)
		owner := testutil.RandomAddress(t)
		s.db.On("AddTrackedOwner", mock.Anything, mock.MatchedBy(func(doc *model.TrackedOwnerDocument) bool {
			return doc.Owner == owner.Hex() && doc.Source == model.TrackedOwnerSourceCli
		})).Return(errors.New("boom")).Once()

		require.Error(t, s.TrackOwner(ctx, owner, model.TrackedOwnerSourceCli))
	})
}

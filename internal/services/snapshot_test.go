package services

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hexstaking/hex-staking-indexer/internal/codec"
	"github.com/hexstaking/hex-staking-indexer/internal/db"
	"github.com/hexstaking/hex-staking-indexer/internal/db/model"
	"github.com/hexstaking/hex-staking-indexer/internal/types"
)

const testCurrentDay = 42

func testRawGlobals() *codec.RawGlobals {
	return &codec.RawGlobals{
		LockedHeartsTotal:    big.NewInt(1_000_000_000_000),
		NextStakeSharesTotal: big.NewInt(0),
		ShareRate:            big.NewInt(100_000),
		StakePenaltyTotal:    big.NewInt(0),
		DailyDataCount:       big.NewInt(testCurrentDay),
		StakeSharesTotal:     big.NewInt(1_000_000_000_000),
		LatestStakeID:        big.NewInt(1234),
	}
}

func expectSnapshotFetch(s *testService, currentDay uint64) {
	s.hex.On("GetGlobals", mock.Anything).Return(testRawGlobals(), nil).Once()
	s.hex.On("GetAllocatedSupply", mock.Anything).Return(big.NewInt(50_000_000_000_000_000), nil).Once()
	s.hex.On("GetCurrentDay", mock.Anything).Return(currentDay, nil).Once()
}

func TestFetchSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes every field", func(t *testing.T) {
		s := newTestService(t)
		expectSnapshotFetch(s, testCurrentDay)

		snapshot, err := s.FetchSnapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(testCurrentDay), snapshot.CurrentDay)
		assert.Equal(t, uint64(testCurrentDay), snapshot.Globals.DailyDataCount)
		assert.Equal(t, uint64(1234), snapshot.Globals.LatestStakeID)
		assert.Equal(t, "50000000000000000", snapshot.AllocatedSupply.String())
		assert.True(t, snapshot.Globals.ClaimStats.IsZero())
		assert.False(t, snapshot.FetchedAt.IsZero())
	})

	t.Run("fetch failure names the operation", func(t *testing.T) {
		s := newTestService(t)
		s.hex.On("GetGlobals", mock.Anything).Return(testRawGlobals(), nil).Maybe()
		s.hex.On("GetAllocatedSupply", mock.Anything).Return(big.NewInt(1), nil).Maybe()
		s.hex.On("GetCurrentDay", mock.Anything).Return(uint64(0), errors.New("dial tcp: refused")).Once()

		_, err := s.FetchSnapshot(ctx)
		var fetchFailure *FetchFailureError
		require.ErrorAs(t, err, &fetchFailure)
		assert.Equal(t, "current day", fetchFailure.Op)
		assert.Nil(t, fetchFailure.Index)
	})

	t.Run("invalid globals", func(t *testing.T) {
		s := newTestService(t)
		raw := testRawGlobals()
		raw.ClaimStats = new(big.Int).Lsh(big.NewInt(1), 200)
		s.hex.On("GetGlobals", mock.Anything).Return(raw, nil).Once()
		s.hex.On("GetAllocatedSupply", mock.Anything).Return(big.NewInt(1), nil).Once()
		s.hex.On("GetCurrentDay", mock.Anything).Return(uint64(1), nil).Once()

		_, err := s.FetchSnapshot(ctx)
		require.Error(t, err)
		assert.True(t, codec.IsDecodeError(err))
		assert.False(t, IsFetchFailureError(err))
	})
}

func TestRefreshSnapshot(t *testing.T) {
	s := newTestService(t)
	expectSnapshotFetch(s, testCurrentDay)
	s.db.On("UpsertChainSnapshot", mock.Anything, mock.MatchedBy(func(doc *model.ChainSnapshotDocument) bool {
		return doc.CurrentDay == testCurrentDay && doc.Globals.LatestStakeID == 1234
	})).Return(nil).Once()

	require.NoError(t, s.refreshSnapshot(context.Background()))
}

func TestGetCachedSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored snapshot", func(t *testing.T) {
		s := newTestService(t)
		stored := testSnapshot(testCurrentDay, testCurrentDay, bpdClaimStats())
		s.db.On("GetChainSnapshot", mock.Anything).Return(model.FromChainSnapshot(stored), nil).Once()

		snapshot, err := s.GetCachedSnapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(testCurrentDay), snapshot.CurrentDay)
		assert.True(t, stored.FetchedAt.Equal(snapshot.FetchedAt))
		assertUintEqual(t, stored.AllocatedSupply, snapshot.AllocatedSupply)
		assertUintEqual(t, stored.Globals.ClaimStats.UnclaimedSatoshisTotal,
			snapshot.Globals.ClaimStats.UnclaimedSatoshisTotal)
	})

	t.Run("nothing stored yet", func(t *testing.T) {
		s := newTestService(t)
		s.db.On("GetChainSnapshot", mock.Anything).Return(nil, &db.NotFoundError{Key: "latest"}).Once()

		_, err := s.GetCachedSnapshot(ctx)
		assert.True(t, db.IsNotFoundError(err))
	})

	t.Run("corrupt document", func(t *testing.T) {
		s := newTestService(t)
		doc := model.FromChainSnapshot(testSnapshot(testCurrentDay, testCurrentDay, types.ZeroClaimStats()))
		doc.Globals.ShareRate = "-1"
		s.db.On("GetChainSnapshot", mock.Anything).Return(doc, nil).Once()

		_, err := s.GetCachedSnapshot(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "share_rate")
	})
}

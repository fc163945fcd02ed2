package services

import (
	"math/big"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexstaking/hex-staking-indexer/internal/codec"
	"github.com/hexstaking/hex-staking-indexer/internal/config"
	"github.com/hexstaking/hex-staking-indexer/internal/types"
	"github.com/hexstaking/hex-staking-indexer/tests/mocks"
)

type testService struct {
	*Service
	hex      *mocks.HexInterface
	db       *mocks.DbInterface
	consumer *mocks.EventConsumer
}

func newTestService(t *testing.T) *testService {
	t.Helper()

	cfg := &config.Config{
		Eth: config.EthConfig{MaxConcurrentRequests: 4},
		Poller: config.PollerConfig{
			SnapshotPollingInterval: time.Minute,
			OwnerRefreshInterval:    time.Minute,
			TrackedOwnersLimit:      100,
		},
	}
	hex := mocks.NewHexInterface(t)
	db := mocks.NewDbInterface(t)
	consumer := mocks.NewEventConsumer(t)

	return &testService{
		Service:  NewService(cfg, db, hex, consumer, types.DefaultChainParams()),
		hex:      hex,
		db:       db,
		consumer: consumer,
	}
}

func testSnapshot(currentDay, dailyDataCount uint64, stats types.ClaimStats) *types.ChainSnapshot {
	return &types.ChainSnapshot{
		Globals: types.GlobalState{
			LockedHeartsTotal:    sdkmath.NewUint(1_000_000_000_000),
			NextStakeSharesTotal: sdkmath.ZeroUint(),
			ShareRate:            sdkmath.NewUint(types.ShareRateScale),
			StakePenaltyTotal:    sdkmath.ZeroUint(),
			DailyDataCount:       dailyDataCount,
			StakeSharesTotal:     sdkmath.NewUint(1_000_000_000_000),
			ClaimStats:           stats,
		},
		AllocatedSupply: sdkmath.NewUint(50_000_000_000_000_000),
		CurrentDay:      currentDay,
		FetchedAt:       time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
}

func bpdClaimStats() types.ClaimStats {
	return types.ClaimStats{
		ClaimedBtcAddrCount:    sdkmath.NewUint(100),
		ClaimedSatoshisTotal:   sdkmath.NewUint(5_000_000),
		UnclaimedSatoshisTotal: sdkmath.NewUint(900_000_000_000_000),
	}
}

func encodeDay(t *testing.T, rec types.DailyRecord) *big.Int {
	t.Helper()

	word, err := codec.EncodeDailyRecord(rec)
	require.NoError(t, err)
	return word
}

// repeatWord returns n copies of word.
func repeatWord(word *big.Int, n uint64) []*big.Int {
	words := make([]*big.Int, n)
	for i := range words {
		words[i] = new(big.Int).Set(word)
	}
	return words
}

func assertUintEqual(t *testing.T, expected, actual sdkmath.Uint) {
	t.Helper()
	assert.True(t, expected.Equal(actual), "expected %s, got %s", expected, actual)
}

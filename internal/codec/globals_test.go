package codec

import (
	"math/big"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexstaking/hex-staking-indexer/internal/types"
)

func rawGlobals(claimStats *big.Int) *RawGlobals {
	return &RawGlobals{
		LockedHeartsTotal:    big.NewInt(1_000_000),
		NextStakeSharesTotal: big.NewInt(20),
		ShareRate:            big.NewInt(100_000),
		StakePenaltyTotal:    big.NewInt(3),
		DailyDataCount:       big.NewInt(420),
		StakeSharesTotal:     big.NewInt(5_000_000),
		LatestStakeID:        big.NewInt(77),
		ClaimStats:           claimStats,
	}
}

func TestDecodeGlobals(t *testing.T) {
	t.Run("decodes claim stats", func(t *testing.T) {
		stats := types.ClaimStats{
			ClaimedBtcAddrCount:    sdkmath.NewUint(100),
			ClaimedSatoshisTotal:   sdkmath.NewUint(5_000_000),
			UnclaimedSatoshisTotal: sdkmath.NewUint(900_000_000_000_000),
		}
		packed, err := EncodeClaimStats(stats)
		require.NoError(t, err)

		g, err := DecodeGlobals(rawGlobals(packed))
		require.NoError(t, err)

		assert.Equal(t, "1000000", g.LockedHeartsTotal.String())
		assert.Equal(t, "20", g.NextStakeSharesTotal.String())
		assert.Equal(t, "100000", g.ShareRate.String())
		assert.Equal(t, "3", g.StakePenaltyTotal.String())
		assert.Equal(t, uint64(420), g.DailyDataCount)
		assert.Equal(t, "5000000", g.StakeSharesTotal.String())
		assert.Equal(t, uint64(77), g.LatestStakeID)
		assert.Equal(t, "100", g.ClaimStats.ClaimedBtcAddrCount.String())
		assert.Equal(t, "5000000", g.ClaimStats.ClaimedSatoshisTotal.String())
		assert.Equal(t, "900000000000000", g.ClaimStats.UnclaimedSatoshisTotal.String())
	})

	t.Run("missing claim stats", func(t *testing.T) {
		g, err := DecodeGlobals(rawGlobals(nil))
		require.NoError(t, err)
		assert.True(t, g.ClaimStats.IsZero())
	})

	t.Run("claim stats too wide", func(t *testing.T) {
		_, err := DecodeGlobals(rawGlobals(new(big.Int).Lsh(big.NewInt(1), 153)))
		assert.True(t, IsDecodeError(err))
	})

	t.Run("missing counter", func(t *testing.T) {
		raw := rawGlobals(big.NewInt(0))
		raw.ShareRate = nil
		_, err := DecodeGlobals(raw)
		require.Error(t, err)
		assert.True(t, IsDecodeError(err))
		assert.Contains(t, err.Error(), "shareRate")
	})

	t.Run("negative counter", func(t *testing.T) {
		raw := rawGlobals(big.NewInt(0))
		raw.StakeSharesTotal = big.NewInt(-1)
		_, err := DecodeGlobals(raw)
		assert.True(t, IsDecodeError(err))
	})

	t.Run("day count beyond 64 bits", func(t *testing.T) {
		raw := rawGlobals(big.NewInt(0))
		raw.DailyDataCount = new(big.Int).Lsh(big.NewInt(1), 64)
		_, err := DecodeGlobals(raw)
		assert.True(t, IsDecodeError(err))
	})

	t.Run("nil globals", func(t *testing.T) {
		_, err := DecodeGlobals(nil)
		assert.True(t, IsDecodeError(err))
	})
}

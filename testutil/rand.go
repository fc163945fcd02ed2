package testutil

import (
	"crypto/rand"
	"math/big"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/hexstaking/hex-staking-indexer/internal/types"
)

// RandomBits returns a uniformly distributed integer in [0, 2^bits).
func RandomBits(t *testing.T, bits uint) *big.Int {
	t.Helper()

	limit := new(big.Int).Lsh(big.NewInt(1), bits)
	v, err := rand.Int(rand.Reader, limit)
	require.NoError(t, err)
	return v
}

func RandomUint(t *testing.T, bits uint) sdkmath.Uint {
	t.Helper()
	return sdkmath.NewUintFromBigInt(RandomBits(t, bits))
}

func RandomAddress(t *testing.T) common.Address {
	t.Helper()

	buf := make([]byte, common.AddressLength)
	_, err := rand.Read(buf)
	require.NoError(t, err)
	return common.BytesToAddress(buf)
}

// RandomRawStake generates a stake locked on a day in [1, 1000) for up to
// 5555 days with 72 bit hearts and shares.
func RandomRawStake(t *testing.T) *types.RawStake {
	t.Helper()

	return &types.RawStake{
		StakeID:      gofakeit.Uint64() & (1<<40 - 1),
		StakedHearts: RandomUint(t, 72),
		StakeShares:  RandomUint(t, 72),
		LockedDay:    uint64(gofakeit.UintRange(1, 999)),
		StakedDays:   uint64(gofakeit.UintRange(1, 5555)),
		IsAutoStake:  gofakeit.Bool(),
	}
}

// RandomDailyRecord returns a record with every field inside its packed width
// and a non-zero share total.
func RandomDailyRecord(t *testing.T) types.DailyRecord {
	t.Helper()

	shares := RandomUint(t, 72)
	if shares.IsZero() {
		shares = sdkmath.OneUint()
	}
	return types.DailyRecord{
		DayPayoutTotal:            RandomUint(t, 72),
		DayStakeSharesTotal:       shares,
		DayUnclaimedSatoshisTotal: RandomUint(t, 56),
	}
}

package codec

import (
	"math/big"

	sdkmath "cosmossdk.io/math"

	"github.com/hexstaking/hex-staking-indexer/internal/types"
)

// RawGlobals mirrors the tuple returned by the contract's globals() call.
type RawGlobals struct {
	LockedHeartsTotal    *big.Int
	NextStakeSharesTotal *big.Int
	ShareRate            *big.Int
	StakePenaltyTotal    *big.Int
	DailyDataCount       *big.Int
	StakeSharesTotal     *big.Int
	LatestStakeID        *big.Int
	// ClaimStats is nil when the claim statistics are unavailable.
	ClaimStats *big.Int
}

// DecodeGlobals converts the raw globals and unpacks the claim statistics.
func DecodeGlobals(raw *RawGlobals) (*types.GlobalState, error) {
	const layout = "globals"
	if raw == nil {
		return nil, newDecodeError(layout, "nil globals")
	}

	var (
		g   types.GlobalState
		err error
	)
	uints := []struct {
		name string
		src  *big.Int
		dst  *sdkmath.Uint
	}{
		{"lockedHeartsTotal", raw.LockedHeartsTotal, &g.LockedHeartsTotal},
		{"nextStakeSharesTotal", raw.NextStakeSharesTotal, &g.NextStakeSharesTotal},
		{"shareRate", raw.ShareRate, &g.ShareRate},
		{"stakePenaltyTotal", raw.StakePenaltyTotal, &g.StakePenaltyTotal},
		{"stakeSharesTotal", raw.StakeSharesTotal, &g.StakeSharesTotal},
	}
	for _, f := range uints {
		if *f.dst, err = ToUint(layout+"."+f.name, f.src); err != nil {
			return nil, err
		}
	}

	if g.DailyDataCount, err = ToUint64(layout+".dailyDataCount", raw.DailyDataCount); err != nil {
		return nil, err
	}
	if g.LatestStakeID, err = ToUint64(layout+".latestStakeId", raw.LatestStakeID); err != nil {
		return nil, err
	}

	if g.ClaimStats, err = DecodeClaimStats(raw.ClaimStats); err != nil {
		return nil, err
	}

	return &g, nil
}

// DecodeClaimStats unpacks the three 51 bit claim counters. A nil value
// yields zero statistics.
func DecodeClaimStats(packed *big.Int) (types.ClaimStats, error) {
	if packed == nil {
		return types.ZeroClaimStats(), nil
	}

	fields, err := decodeBits("claimStats", packed, ClaimStatsWidths)
	if err != nil {
		return types.ClaimStats{}, err
	}

	return types.ClaimStats{
		ClaimedBtcAddrCount:    fields[0],
		ClaimedSatoshisTotal:   fields[1],
		UnclaimedSatoshisTotal: fields[2],
	}, nil
}

// EncodeClaimStats packs claim statistics back into their 153 bit form.
func EncodeClaimStats(stats types.ClaimStats) (*big.Int, error) {
	return EncodeBits([]sdkmath.Uint{
		stats.ClaimedBtcAddrCount,
		stats.ClaimedSatoshisTotal,
		stats.UnclaimedSatoshisTotal,
	}, ClaimStatsWidths)
}

// ToUint converts a contract integer, rejecting nil, negative and values
// wider than 256 bits.
func ToUint(field string, v *big.Int) (sdkmath.Uint, error) {
	if v == nil {
		return sdkmath.Uint{}, newDecodeError(field, "missing value")
	}
	if err := sdkmath.UintOverflow(v); err != nil {
		return sdkmath.Uint{}, newDecodeError(field, "%v", err)
	}
	return sdkmath.NewUintFromBigInt(v), nil
}

func ToUint64(field string, v *big.Int) (uint64, error) {
	if v == nil {
		return 0, newDecodeError(field, "missing value")
	}
	if v.Sign() < 0 || !v.IsUint64() {
		return 0, newDecodeError(field, "%s does not fit in 64 bits", v)
	}
	return v.Uint64(), nil
}

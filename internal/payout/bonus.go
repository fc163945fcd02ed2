package payout

import (
	"math/big"

	sdkmath "cosmossdk.io/math"

	"github.com/hexstaking/hex-staking-indexer/internal/types"
)

// AdoptionBonus scales a payout slice by the share of claimable addresses and
// satoshis already claimed. Both terms are floored separately.
func AdoptionBonus(slice sdkmath.Uint, stats types.ClaimStats, params *types.ChainParams) (sdkmath.Uint, error) {
	bonus, err := adoptionBonus(slice.BigInt(), stats, params)
	if err != nil {
		return sdkmath.Uint{}, err
	}
	return toUint("adoption bonus", bonus)
}

func adoptionBonus(slice *big.Int, stats types.ClaimStats, params *types.ChainParams) (*big.Int, error) {
	viral, err := mulDiv("adoption bonus", slice,
		stats.ClaimedBtcAddrCount.BigInt(), params.ClaimableBtcAddrCount.BigInt())
	if err != nil {
		return nil, err
	}
	crit, err := mulDiv("adoption bonus", slice,
		stats.ClaimedSatoshisTotal.BigInt(), params.ClaimableSatoshis.BigInt())
	if err != nil {
		return nil, err
	}
	return viral.Add(viral, crit), nil
}

// UnclaimedSatoshis is the unclaimed total distributed on the big pay day.
// Before the claim phase populates the statistics a fixed total is used.
func UnclaimedSatoshis(stats types.ClaimStats, params *types.ChainParams) sdkmath.Uint {
	if stats.IsZero() {
		return params.FallbackUnclaimedSatoshis
	}
	return stats.UnclaimedSatoshisTotal
}

// BigPayDaySlice is the stake's share of the unclaimed satoshis in hearts,
// before the adoption bonus.
func BigPayDaySlice(shares sdkmath.Uint, globals types.GlobalState, params *types.ChainParams) (sdkmath.Uint, error) {
	slice, err := bigPayDaySlice(shares, globals, params)
	if err != nil {
		return sdkmath.Uint{}, err
	}
	return toUint("big pay day slice", slice)
}

func bigPayDaySlice(shares sdkmath.Uint, globals types.GlobalState, params *types.ChainParams) (*big.Int, error) {
	unclaimedHearts := new(big.Int).Mul(
		UnclaimedSatoshis(globals.ClaimStats, params).BigInt(),
		params.HeartsPerSatoshi.BigInt(),
	)
	return mulDiv("big pay day slice", unclaimedHearts, shares.BigInt(), globals.StakeSharesTotal.BigInt())
}

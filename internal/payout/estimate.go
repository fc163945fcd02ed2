package payout

import (
	"math/big"

	sdkmath "cosmossdk.io/math"

	"github.com/hexstaking/hex-staking-indexer/internal/types"
)

// EstimateShares returns the shares a new stake of stakedHearts for
// stakedDays would receive at the given share rate, including the longer
// pays better and bigger pays better bonuses.
func EstimateShares(
	stakedHearts sdkmath.Uint, stakedDays uint64, shareRate sdkmath.Uint, params *types.ChainParams,
) (sdkmath.Uint, error) {
	if stakedDays == 0 {
		return sdkmath.Uint{}, ErrZeroStakedDays
	}

	bonus, err := stakeStartBonusHearts(stakedHearts, stakedDays, params)
	if err != nil {
		return sdkmath.Uint{}, err
	}

	total := new(big.Int).Add(stakedHearts.BigInt(), bonus)
	shares, err := mulDiv("share estimate", total, big.NewInt(types.ShareRateScale), shareRate.BigInt())
	if err != nil {
		return sdkmath.Uint{}, err
	}
	return toUint("share estimate", shares)
}

func stakeStartBonusHearts(hearts sdkmath.Uint, stakedDays uint64, params *types.ChainParams) (*big.Int, error) {
	cappedExtraDays := sdkmath.NewUint(stakedDays - 1)
	if cappedExtraDays.GT(params.LPBMaxDays) {
		cappedExtraDays = params.LPBMaxDays
	}
	cappedHearts := hearts
	if cappedHearts.GT(params.BPBMaxHearts) {
		cappedHearts = params.BPBMaxHearts
	}

	numerator := new(big.Int).Mul(cappedExtraDays.BigInt(), params.BPB.BigInt())
	numerator.Add(numerator, new(big.Int).Mul(cappedHearts.BigInt(), params.LPB.BigInt()))
	denominator := new(big.Int).Mul(params.LPB.BigInt(), params.BPB.BigInt())

	return mulDiv("stake start bonus", hearts.BigInt(), numerator, denominator)
}

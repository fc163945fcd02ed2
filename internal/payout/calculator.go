package payout

import (
	"fmt"
	"math/big"

	sdkmath "cosmossdk.io/math"

	"github.com/hexstaking/hex-staking-indexer/internal/types"
)

// Result is the payout of one stake as of the snapshot's current day.
type Result struct {
	// Interest includes the big pay day amount once that day has passed.
	Interest  sdkmath.Uint
	BigPayDay sdkmath.Uint
}

// Calculator replays the contract's read-path payout arithmetic.
type Calculator struct {
	params *types.ChainParams
}

func NewCalculator(params *types.ChainParams) *Calculator {
	return &Calculator{params: params}
}

func (c *Calculator) Params() *types.ChainParams {
	return c.params
}

// ComputePayout accumulates the stake's share of every served day in days,
// the interest of the current day and, for stakes spanning the big pay day,
// the big pay day slice. days must cover
// [stake.LockedDay, min(snapshot.CurrentDay, stake.EndDay())).
func (c *Calculator) ComputePayout(
	stake types.StakeTerms, snapshot *types.ChainSnapshot, days []types.DailyRecord,
) (*Result, error) {
	if snapshot.CurrentDay <= stake.LockedDay {
		return nil, ErrStakeNotStarted
	}

	globals := snapshot.Globals
	shares := stake.StakeShares

	interest := new(big.Int)
	for i, day := range days {
		dayPayout, err := mulDivUint("daily payout", day.DayPayoutTotal, shares, day.DayStakeSharesTotal)
		if err != nil {
			return nil, fmt.Errorf("day %d: %w", stake.LockedDay+uint64(i), err)
		}
		interest.Add(interest, dayPayout)
	}

	dailyInterestTotal, err := mulDivUint("daily interest",
		snapshot.AllocatedSupply, c.params.InterestNumerator, c.params.InterestDenominator)
	if err != nil {
		return nil, err
	}
	interestShare, err := mulDiv("interest share",
		shares.BigInt(), dailyInterestTotal, globals.StakeSharesTotal.BigInt())
	if err != nil {
		return nil, err
	}
	shareBonus, err := adoptionBonus(interestShare, globals.ClaimStats, c.params)
	if err != nil {
		return nil, err
	}
	interest.Add(interest, interestShare)
	interest.Add(interest, shareBonus)

	bigPayDay := new(big.Int)
	if c.params.StraddlesBigPayDay(stake.LockedDay, stake.StakedDays) {
		slice, err := bigPayDaySlice(shares, globals, c.params)
		if err != nil {
			return nil, err
		}
		sliceBonus, err := adoptionBonus(slice, globals.ClaimStats, c.params)
		if err != nil {
			return nil, err
		}
		bigPayDay.Add(slice, sliceBonus)

		if snapshot.CurrentDay >= c.params.BigPayDay {
			interest.Add(interest, bigPayDay)
		}
	}

	res := &Result{}
	if res.Interest, err = toUint("interest", interest); err != nil {
		return nil, err
	}
	if res.BigPayDay, err = toUint("big pay day", bigPayDay); err != nil {
		return nil, err
	}
	return res, nil
}

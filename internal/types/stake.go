package types

import (
	"slices"

	sdkmath "cosmossdk.io/math"
)

// RawStake is one entry of the contract's stakeLists(owner, index).
type RawStake struct {
	StakeID      uint64
	StakedHearts sdkmath.Uint
	StakeShares  sdkmath.Uint
	LockedDay    uint64
	StakedDays   uint64
	UnlockedDay  uint64
	IsAutoStake  bool
}

// StakeTerms is the subset of a stake the payout accumulator reads.
type StakeTerms struct {
	LockedDay   uint64
	StakedDays  uint64
	StakeShares sdkmath.Uint
}

// EndDay is the first day after the stake's term.
func (t StakeTerms) EndDay() uint64 {
	return t.LockedDay + t.StakedDays
}

type StakeRecord struct {
	StakeID      uint64       `json:"stakeId"`
	LockedDay    uint64       `json:"lockedDay"`
	StakedDays   uint64       `json:"stakedDays"`
	StakedHearts sdkmath.Uint `json:"stakedHearts"`
	StakeShares  sdkmath.Uint `json:"stakeShares"`
	UnlockedDay  uint64       `json:"unlockedDay"`
	IsAutoStake  bool         `json:"isAutoStake"`
	Progress     uint32       `json:"progress"`
	ExitStatus   ExitStatus   `json:"exitStatus"`
	// Payout is the accrued interest including the big pay day once it has passed.
	Payout    sdkmath.Uint `json:"payout"`
	BigPayDay sdkmath.Uint `json:"bigPayDay"`
	// PayoutComputed is false for stakes that have not accrued a day yet.
	PayoutComputed bool `json:"payoutComputed"`
}

func (s *StakeRecord) Terms() StakeTerms {
	return StakeTerms{
		LockedDay:   s.LockedDay,
		StakedDays:  s.StakedDays,
		StakeShares: s.StakeShares,
	}
}

// Value is principal plus accrued payout.
func (s *StakeRecord) Value() sdkmath.Uint {
	return s.StakedHearts.Add(s.Payout)
}

type StakeTotals struct {
	StakedHearts sdkmath.Uint `json:"stakedHearts"`
	StakeShares  sdkmath.Uint `json:"stakeShares"`
	BigPayDay    sdkmath.Uint `json:"bigPayDay"`
	Interest     sdkmath.Uint `json:"interest"`
}

// Value is the sum of principal and interest over all stakes.
func (t StakeTotals) Value() sdkmath.Uint {
	return t.StakedHearts.Add(t.Interest)
}

// SumStakes folds a stake list into its totals.
func SumStakes(stakes []*StakeRecord) StakeTotals {
	totals := StakeTotals{
		StakedHearts: sdkmath.ZeroUint(),
		StakeShares:  sdkmath.ZeroUint(),
		BigPayDay:    sdkmath.ZeroUint(),
		Interest:     sdkmath.ZeroUint(),
	}
	for _, s := range stakes {
		totals.StakedHearts = totals.StakedHearts.Add(s.StakedHearts)
		totals.StakeShares = totals.StakeShares.Add(s.StakeShares)
		totals.BigPayDay = totals.BigPayDay.Add(s.BigPayDay)
		totals.Interest = totals.Interest.Add(s.Payout)
	}
	return totals
}

// SortByProgress returns a copy of stakes ordered by progress, most advanced
// first. Ties are broken by stake id.
func SortByProgress(stakes []*StakeRecord) []*StakeRecord {
	sorted := slices.Clone(stakes)
	slices.SortStableFunc(sorted, func(a, b *StakeRecord) int {
		if a.Progress != b.Progress {
			if a.Progress > b.Progress {
				return -1
			}
			return 1
		}
		switch {
		case a.StakeID < b.StakeID:
			return -1
		case a.StakeID > b.StakeID:
			return 1
		}
		return 0
	})
	return sorted
}

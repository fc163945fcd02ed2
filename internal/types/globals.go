package types

import (
	"time"

	sdkmath "cosmossdk.io/math"
)

// ClaimStats is the decoded form of the packed 153 bit claimStats global.
type ClaimStats struct {
	ClaimedBtcAddrCount    sdkmath.Uint `json:"claimedBtcAddrCount"`
	ClaimedSatoshisTotal   sdkmath.Uint `json:"claimedSatoshisTotal"`
	UnclaimedSatoshisTotal sdkmath.Uint `json:"unclaimedSatoshisTotal"`
}

func ZeroClaimStats() ClaimStats {
	return ClaimStats{
		ClaimedBtcAddrCount:    sdkmath.ZeroUint(),
		ClaimedSatoshisTotal:   sdkmath.ZeroUint(),
		UnclaimedSatoshisTotal: sdkmath.ZeroUint(),
	}
}

// IsZero is true before the claim phase has populated any statistic.
func (c ClaimStats) IsZero() bool {
	return c.ClaimedBtcAddrCount.IsZero() &&
		c.ClaimedSatoshisTotal.IsZero() &&
		c.UnclaimedSatoshisTotal.IsZero()
}

type GlobalState struct {
	LockedHeartsTotal    sdkmath.Uint `json:"lockedHeartsTotal"`
	NextStakeSharesTotal sdkmath.Uint `json:"nextStakeSharesTotal"`
	ShareRate            sdkmath.Uint `json:"shareRate"`
	StakePenaltyTotal    sdkmath.Uint `json:"stakePenaltyTotal"`
	DailyDataCount       uint64       `json:"dailyDataCount"`
	StakeSharesTotal     sdkmath.Uint `json:"stakeSharesTotal"`
	LatestStakeID        uint64       `json:"latestStakeId"`
	ClaimStats           ClaimStats   `json:"claimStats"`
}

// ChainSnapshot is everything the payout formulas read from the chain besides
// the per-stake data. It is fetched once per load and never mutated.
type ChainSnapshot struct {
	Globals         GlobalState  `json:"globals"`
	AllocatedSupply sdkmath.Uint `json:"allocatedSupply"`
	CurrentDay      uint64       `json:"currentDay"`
	FetchedAt       time.Time    `json:"fetchedAt"`
}

package types

import (
	"time"

	sdkmath "cosmossdk.io/math"
)

const (
	// DefaultContractAddress is the mainnet HEX contract.
	DefaultContractAddress = "0x2b591e99afe9f32eaa6214f7b7629768c40eeb39"

	ClaimPhaseStartDay = 1
	ClaimPhaseDays     = 7 * 50
	// DefaultBigPayDay is day 351. Counting from the day after the claim
	// phase ends gives 352 instead; chain.big-pay-day overrides it.
	DefaultBigPayDay   = ClaimPhaseStartDay + ClaimPhaseDays

	HeartsPerHex = 100_000_000

	// daily mint ratio, see allocatedSupply * 10000 / 100448995 in the contract
	DailyInterestNumerator   = 10000
	DailyInterestDenominator = 100448995

	// stake start bonus parameters
	LPBBonusPercent    = 20
	LPBBonusMaxPercent = 200
	BPBBonusPercent    = 10
	BPBMaxHex          = 150 * 1_000_000
	ShareRateScale     = 100_000
	MinStakeDays       = 1
	MaxStakeDays       = 5555

	// ProgressScale is the value of StakeRecord.Progress at full term.
	ProgressScale = 100_000

	// LateExitGraceDays is the number of days after term during which a stake
	// can be ended without being considered late.
	LateExitGraceDays = 7
)

// DefaultLaunchDate is the start of day 0.
var DefaultLaunchDate = time.Date(2019, time.December, 3, 0, 0, 0, 0, time.UTC)

// ChainParams holds the read-only constants used by the payout formulas.
type ChainParams struct {
	LaunchDate time.Time
	BigPayDay  uint64

	ClaimableBtcAddrCount sdkmath.Uint
	ClaimableSatoshis     sdkmath.Uint
	HeartsPerSatoshi      sdkmath.Uint

	// FallbackUnclaimedSatoshis replaces the unclaimed satoshi total when
	// claim stats are not populated yet.
	FallbackUnclaimedSatoshis sdkmath.Uint

	InterestNumerator   sdkmath.Uint
	InterestDenominator sdkmath.Uint

	LPB          sdkmath.Uint
	LPBMaxDays   sdkmath.Uint
	BPB          sdkmath.Uint
	BPBMaxHearts sdkmath.Uint
}

func DefaultChainParams() *ChainParams {
	lpb := sdkmath.NewUint(364 * 100 / LPBBonusPercent)
	bpbMaxHearts := sdkmath.NewUint(BPBMaxHex).MulUint64(HeartsPerHex)

	return &ChainParams{
		LaunchDate:                DefaultLaunchDate,
		BigPayDay:                 DefaultBigPayDay,
		ClaimableBtcAddrCount:     sdkmath.NewUint(27_997_742),
		ClaimableSatoshis:         sdkmath.NewUint(910_087_996_911_001),
		HeartsPerSatoshi:          sdkmath.NewUint(10_000),
		FallbackUnclaimedSatoshis: sdkmath.NewUint(0xfae0c6a6400dadc0),
		InterestNumerator:         sdkmath.NewUint(DailyInterestNumerator),
		InterestDenominator:       sdkmath.NewUint(DailyInterestDenominator),
		LPB:                       lpb,
		LPBMaxDays:                lpb.MulUint64(LPBBonusMaxPercent).QuoUint64(100),
		BPB:                       bpbMaxHearts.MulUint64(100).QuoUint64(BPBBonusPercent),
		BPBMaxHearts:              bpbMaxHearts,
	}
}

// DayStart returns the UTC instant at which the given contract day begins.
func (p *ChainParams) DayStart(day uint64) time.Time {
	return p.LaunchDate.Add(time.Duration(day) * 24 * time.Hour)
}

// StraddlesBigPayDay reports whether the stake window [lockedDay, lockedDay+stakedDays)
// contains the big pay day.
func (p *ChainParams) StraddlesBigPayDay(lockedDay, stakedDays uint64) bool {
	return lockedDay <= p.BigPayDay && p.BigPayDay < lockedDay+stakedDays
}

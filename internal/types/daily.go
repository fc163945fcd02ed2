package types

import sdkmath "cosmossdk.io/math"

// DailyRecord is one day of the contract's dailyData mapping.
type DailyRecord struct {
	DayPayoutTotal            sdkmath.Uint `json:"dayPayoutTotal"`
	DayStakeSharesTotal       sdkmath.Uint `json:"dayStakeSharesTotal"`
	DayUnclaimedSatoshisTotal sdkmath.Uint `json:"dayUnclaimedSatoshisTotal"`
}

package payout

import "github.com/hexstaking/hex-staking-indexer/internal/types"

// Progress is the served fraction of the stake term scaled to
// types.ProgressScale.
func Progress(lockedDay, stakedDays, currentDay uint64) uint32 {
	if currentDay < lockedDay {
		return 0
	}
	if stakedDays == 0 {
		return types.ProgressScale
	}

	served := currentDay - lockedDay
	if served >= stakedDays {
		return types.ProgressScale
	}
	return uint32(served * types.ProgressScale / stakedDays)
}

// ClassifyExit tells what ending the stake on currentDay would be.
func ClassifyExit(lockedDay, stakedDays, currentDay uint64) types.ExitStatus {
	endDay := lockedDay + stakedDays
	switch {
	case currentDay < lockedDay:
		return types.ExitPending
	// currentDay < lockedDay + stakedDays/2 without truncating the half
	case 2*currentDay < 2*lockedDay+stakedDays:
		return types.ExitEarly
	case currentDay < endDay:
		return types.ExitMid
	case currentDay < endDay+types.LateExitGraceDays:
		return types.ExitTerm
	default:
		return types.ExitLate
	}
}

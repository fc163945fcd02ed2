package types

import (
	"time"

	sdkmath "cosmossdk.io/math"
)

type EventTypes string

func (e EventTypes) String() string {
	return string(e)
}

const (
	EventStakeStart EventTypes = "StakeStart"
	EventStakeEnd   EventTypes = "StakeEnd"
)

// StakeStartEvent is the decoded payload of a StakeStart log.
type StakeStartEvent struct {
	StakerAddr   string
	StakeID      uint64
	Timestamp    time.Time
	StakedHearts sdkmath.Uint
	StakeShares  sdkmath.Uint
	StakedDays   uint64
	IsAutoStake  bool
}

// StakeEndEvent is the decoded payload of a StakeEnd log.
type StakeEndEvent struct {
	StakerAddr   string
	StakeID      uint64
	Timestamp    time.Time
	StakedHearts sdkmath.Uint
	StakeShares  sdkmath.Uint
	Payout       sdkmath.Uint
	Penalty      sdkmath.Uint
	ServedDays   uint64
	PrevUnlocked bool
}

// StakeEvent is what the event watcher hands to the service. Exactly one of
// Start and End is set.
type StakeEvent struct {
	Type        EventTypes
	BlockNumber uint64
	TxHash      string
	Start       *StakeStartEvent
	End         *StakeEndEvent
}

func (e *StakeEvent) StakerAddr() string {
	switch {
	case e.Start != nil:
		return e.Start.StakerAddr
	case e.End != nil:
		return e.End.StakerAddr
	}
	return ""
}

// OwnerStakesUpdatedEvent is published every time the stakes of an owner are
// recomputed.
type OwnerStakesUpdatedEvent struct {
	Owner      string      `json:"owner"`
	CurrentDay uint64      `json:"currentDay"`
	StakeCount int         `json:"stakeCount"`
	Totals     StakeTotals `json:"totals"`
	UpdatedAt  int64       `json:"updatedAt"`
}

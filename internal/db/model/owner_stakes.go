package model

import (
	"time"

	"github.com/hexstaking/hex-staking-indexer/internal/types"
)

type StakeDocument struct {
	StakeID        uint64 `bson:"stake_id"`
	LockedDay      uint64 `bson:"locked_day"`
	StakedDays     uint64 `bson:"staked_days"`
	StakedHearts   string `bson:"staked_hearts"`
	StakeShares    string `bson:"stake_shares"`
	UnlockedDay    uint64 `bson:"unlocked_day"`
	IsAutoStake    bool   `bson:"is_auto_stake"`
	Progress       uint32 `bson:"progress"`
	ExitStatus     string `bson:"exit_status"`
	Payout         string `bson:"payout"`
	BigPayDay      string `bson:"big_pay_day"`
	PayoutComputed bool   `bson:"payout_computed"`
}

type StakeTotalsDocument struct {
	StakedHearts string `bson:"staked_hearts"`
	StakeShares  string `bson:"stake_shares"`
	BigPayDay    string `bson:"big_pay_day"`
	Interest     string `bson:"interest"`
}

type OwnerStakesDocument struct {
	Owner      string              `bson:"_id"`
	CurrentDay uint64              `bson:"current_day"`
	Stakes     []StakeDocument     `bson:"stakes"`
	Totals     StakeTotalsDocument `bson:"totals"`
	UpdatedAt  int64               `bson:"updated_at"`
}

func FromStakeRecord(s *types.StakeRecord) StakeDocument {
	return StakeDocument{
		StakeID:        s.StakeID,
		LockedDay:      s.LockedDay,
		StakedDays:     s.StakedDays,
		StakedHearts:   s.StakedHearts.String(),
		StakeShares:    s.StakeShares.String(),
		UnlockedDay:    s.UnlockedDay,
		IsAutoStake:    s.IsAutoStake,
		Progress:       s.Progress,
		ExitStatus:     s.ExitStatus.String(),
		Payout:         s.Payout.String(),
		BigPayDay:      s.BigPayDay.String(),
		PayoutComputed: s.PayoutComputed,
	}
}

func NewOwnerStakesDocument(
	owner string, currentDay uint64, stakes []*types.StakeRecord, totals types.StakeTotals, updatedAt time.Time,
) *OwnerStakesDocument {
	docs := make([]StakeDocument, 0, len(stakes))
	for _, s := range stakes {
		docs = append(docs, FromStakeRecord(s))
	}

	return &OwnerStakesDocument{
		Owner:      owner,
		CurrentDay: currentDay,
		Stakes:     docs,
		Totals: StakeTotalsDocument{
			StakedHearts: totals.StakedHearts.String(),
			StakeShares:  totals.StakeShares.String(),
			BigPayDay:    totals.BigPayDay.String(),
			Interest:     totals.Interest.String(),
		},
		UpdatedAt: updatedAt.Unix(),
	}
}

// ToStakeRecords converts the stored stakes back, the totals are recomputed
// by the caller from the returned list.
func (d *OwnerStakesDocument) ToStakeRecords() ([]*types.StakeRecord, error) {
	var p uintParser
	records := make([]*types.StakeRecord, 0, len(d.Stakes))
	for _, s := range d.Stakes {
		records = append(records, &types.StakeRecord{
			StakeID:        s.StakeID,
			LockedDay:      s.LockedDay,
			StakedDays:     s.StakedDays,
			StakedHearts:   p.parse("staked_hearts", s.StakedHearts),
			StakeShares:    p.parse("stake_shares", s.StakeShares),
			UnlockedDay:    s.UnlockedDay,
			IsAutoStake:    s.IsAutoStake,
			Progress:       s.Progress,
			ExitStatus:     types.ExitStatus(s.ExitStatus),
			Payout:         p.parse("payout", s.Payout),
			BigPayDay:      p.parse("big_pay_day", s.BigPayDay),
			PayoutComputed: s.PayoutComputed,
		})
	}
	if p.err != nil {
		return nil, p.err
	}
	return records, nil
}

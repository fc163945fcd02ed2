package model

import (
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/hexstaking/hex-staking-indexer/internal/types"
)

// Token quantities are stored as decimal strings, they exceed int64.

type ClaimStatsDocument struct {
	ClaimedBtcAddrCount    string `bson:"claimed_btc_addr_count"`
	ClaimedSatoshisTotal   string `bson:"claimed_satoshis_total"`
	UnclaimedSatoshisTotal string `bson:"unclaimed_satoshis_total"`
}

type GlobalsDocument struct {
	LockedHeartsTotal    string             `bson:"locked_hearts_total"`
	NextStakeSharesTotal string             `bson:"next_stake_shares_total"`
	ShareRate            string             `bson:"share_rate"`
	StakePenaltyTotal    string             `bson:"stake_penalty_total"`
	DailyDataCount       uint64             `bson:"daily_data_count"`
	StakeSharesTotal     string             `bson:"stake_shares_total"`
	LatestStakeID        uint64             `bson:"latest_stake_id"`
	ClaimStats           ClaimStatsDocument `bson:"claim_stats"`
}

type ChainSnapshotDocument struct {
	Globals         GlobalsDocument `bson:"globals"`
	AllocatedSupply string          `bson:"allocated_supply"`
	CurrentDay      uint64          `bson:"current_day"`
	FetchedAt       int64           `bson:"fetched_at"`
}

func FromChainSnapshot(s *types.ChainSnapshot) *ChainSnapshotDocument {
	g := s.Globals
	return &ChainSnapshotDocument{
		Globals: GlobalsDocument{
			LockedHeartsTotal:    g.LockedHeartsTotal.String(),
			NextStakeSharesTotal: g.NextStakeSharesTotal.String(),
			ShareRate:            g.ShareRate.String(),
			StakePenaltyTotal:    g.StakePenaltyTotal.String(),
			DailyDataCount:       g.DailyDataCount,
			StakeSharesTotal:     g.StakeSharesTotal.String(),
			LatestStakeID:        g.LatestStakeID,
			ClaimStats: ClaimStatsDocument{
				ClaimedBtcAddrCount:    g.ClaimStats.ClaimedBtcAddrCount.String(),
				ClaimedSatoshisTotal:   g.ClaimStats.ClaimedSatoshisTotal.String(),
				UnclaimedSatoshisTotal: g.ClaimStats.UnclaimedSatoshisTotal.String(),
			},
		},
		AllocatedSupply: s.AllocatedSupply.String(),
		CurrentDay:      s.CurrentDay,
		FetchedAt:       s.FetchedAt.Unix(),
	}
}

func (d *ChainSnapshotDocument) ToChainSnapshot() (*types.ChainSnapshot, error) {
	var p uintParser
	g := d.Globals
	s := &types.ChainSnapshot{
		Globals: types.GlobalState{
			LockedHeartsTotal:    p.parse("locked_hearts_total", g.LockedHeartsTotal),
			NextStakeSharesTotal: p.parse("next_stake_shares_total", g.NextStakeSharesTotal),
			ShareRate:            p.parse("share_rate", g.ShareRate),
			StakePenaltyTotal:    p.parse("stake_penalty_total", g.StakePenaltyTotal),
			DailyDataCount:       g.DailyDataCount,
			StakeSharesTotal:     p.parse("stake_shares_total", g.StakeSharesTotal),
			LatestStakeID:        g.LatestStakeID,
			ClaimStats: types.ClaimStats{
				ClaimedBtcAddrCount:    p.parse("claimed_btc_addr_count", g.ClaimStats.ClaimedBtcAddrCount),
				ClaimedSatoshisTotal:   p.parse("claimed_satoshis_total", g.ClaimStats.ClaimedSatoshisTotal),
				UnclaimedSatoshisTotal: p.parse("unclaimed_satoshis_total", g.ClaimStats.UnclaimedSatoshisTotal),
			},
		},
		AllocatedSupply: p.parse("allocated_supply", d.AllocatedSupply),
		CurrentDay:      d.CurrentDay,
		FetchedAt:       time.Unix(d.FetchedAt, 0).UTC(),
	}
	if p.err != nil {
		return nil, p.err
	}
	return s, nil
}

// uintParser keeps the first parse error so a document converts in one pass.
type uintParser struct {
	err error
}

func (p *uintParser) parse(field, s string) sdkmath.Uint {
	if p.err != nil {
		return sdkmath.ZeroUint()
	}
	v, err := sdkmath.ParseUint(s)
	if err != nil {
		p.err = fmt.Errorf("invalid %s %q: %w", field, s, err)
		return sdkmath.ZeroUint()
	}
	return v
}

package api

import (
	"encoding/json"
	"net/http"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/btcsuite/btcd/btcutil"

	"github.com/hexstaking/hex-staking-indexer/internal/services"
	"github.com/hexstaking/hex-staking-indexer/internal/types"
)

type ErrorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

type StakeResponse struct {
	StakeID        uint64           `json:"stakeId"`
	LockedDay      uint64           `json:"lockedDay"`
	StakedDays     uint64           `json:"stakedDays"`
	StartDate      time.Time        `json:"startDate"`
	EndDate        time.Time        `json:"endDate"`
	UnlockedDay    uint64           `json:"unlockedDay"`
	IsAutoStake    bool             `json:"isAutoStake"`
	StakedHearts   sdkmath.Uint     `json:"stakedHearts"`
	StakeShares    sdkmath.Uint     `json:"stakeShares"`
	Progress       uint32           `json:"progress"`
	ExitStatus     types.ExitStatus `json:"exitStatus"`
	Payout         sdkmath.Uint     `json:"payout"`
	BigPayDay      sdkmath.Uint     `json:"bigPayDay"`
	Value          sdkmath.Uint     `json:"value"`
	PayoutComputed bool             `json:"payoutComputed"`
}

type TotalsResponse struct {
	StakedHearts sdkmath.Uint `json:"stakedHearts"`
	StakeShares  sdkmath.Uint `json:"stakeShares"`
	BigPayDay    sdkmath.Uint `json:"bigPayDay"`
	Interest     sdkmath.Uint `json:"interest"`
	Value        sdkmath.Uint `json:"value"`
}

type OwnerStakesResponse struct {
	Owner      string          `json:"owner"`
	CurrentDay uint64          `json:"currentDay"`
	Stakes     []StakeResponse `json:"stakes"`
	Totals     TotalsResponse  `json:"totals"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

type SnapshotResponse struct {
	*types.ChainSnapshot
	CurrentDate time.Time `json:"currentDate"`
	// UnclaimedBtc is empty until the claim statistics are populated.
	UnclaimedBtc string `json:"unclaimedBtc,omitempty"`
}

type EstimateResponse struct {
	StakedHearts sdkmath.Uint `json:"stakedHearts"`
	StakedDays   uint64       `json:"stakedDays"`
	ShareRate    sdkmath.Uint `json:"shareRate"`
	StakeShares  sdkmath.Uint `json:"stakeShares"`
	CurrentDay   uint64       `json:"currentDay"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// NewOwnerStakesResponse orders the stakes by progress and adds dates and
// values for display.
func NewOwnerStakesResponse(res *services.OwnerStakes, params *types.ChainParams) *OwnerStakesResponse {
	sorted := types.SortByProgress(res.Stakes)
	stakes := make([]StakeResponse, 0, len(sorted))
	for _, s := range sorted {
		stakes = append(stakes, StakeResponse{
			StakeID:        s.StakeID,
			LockedDay:      s.LockedDay,
			StakedDays:     s.StakedDays,
			StartDate:      params.DayStart(s.LockedDay),
			EndDate:        params.DayStart(s.Terms().EndDay()),
			UnlockedDay:    s.UnlockedDay,
			IsAutoStake:    s.IsAutoStake,
			StakedHearts:   s.StakedHearts,
			StakeShares:    s.StakeShares,
			Progress:       s.Progress,
			ExitStatus:     s.ExitStatus,
			Payout:         s.Payout,
			BigPayDay:      s.BigPayDay,
			Value:          s.Value(),
			PayoutComputed: s.PayoutComputed,
		})
	}

	return &OwnerStakesResponse{
		Owner:      res.Owner,
		CurrentDay: res.CurrentDay,
		Stakes:     stakes,
		Totals: TotalsResponse{
			StakedHearts: res.Totals.StakedHearts,
			StakeShares:  res.Totals.StakeShares,
			BigPayDay:    res.Totals.BigPayDay,
			Interest:     res.Totals.Interest,
			Value:        res.Totals.Value(),
		},
		UpdatedAt: res.UpdatedAt,
	}
}

func newSnapshotResponse(snapshot *types.ChainSnapshot, params *types.ChainParams) *SnapshotResponse {
	resp := &SnapshotResponse{
		ChainSnapshot: snapshot,
		CurrentDate:   params.DayStart(snapshot.CurrentDay),
	}
	if stats := snapshot.Globals.ClaimStats; !stats.IsZero() {
		resp.UnclaimedBtc = btcutil.Amount(stats.UnclaimedSatoshisTotal.Uint64()).String()
	}
	return resp
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(body)
}

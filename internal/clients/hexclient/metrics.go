package hexclient

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/hexstaking/hex-staking-indexer/internal/codec"
	"github.com/hexstaking/hex-staking-indexer/internal/observability/metrics"
	"github.com/hexstaking/hex-staking-indexer/internal/types"
)

type hexClientWithMetrics struct {
	hex HexInterface
}

func NewHexClientWithMetrics(hex HexInterface) *hexClientWithMetrics {
	return &hexClientWithMetrics{hex: hex}
}

func (h *hexClientWithMetrics) GetGlobals(ctx context.Context) (*codec.RawGlobals, error) {
	return runHexClientMethodWithMetrics("GetGlobals", func() (*codec.RawGlobals, error) {
		return h.hex.GetGlobals(ctx)
	})
}

func (h *hexClientWithMetrics) GetAllocatedSupply(ctx context.Context) (*big.Int, error) {
	return runHexClientMethodWithMetrics("GetAllocatedSupply", func() (*big.Int, error) {
		return h.hex.GetAllocatedSupply(ctx)
	})
}

func (h *hexClientWithMetrics) GetCurrentDay(ctx context.Context) (uint64, error) {
	return runHexClientMethodWithMetrics("GetCurrentDay", func() (uint64, error) {
		return h.hex.GetCurrentDay(ctx)
	})
}

func (h *hexClientWithMetrics) GetStakeCount(ctx context.Context, owner common.Address) (uint64, error) {
	return runHexClientMethodWithMetrics("GetStakeCount", func() (uint64, error) {
		return h.hex.GetStakeCount(ctx, owner)
	})
}

func (h *hexClientWithMetrics) GetStake(ctx context.Context, owner common.Address, index uint64) (*types.RawStake, error) {
	return runHexClientMethodWithMetrics("GetStake", func() (*types.RawStake, error) {
		return h.hex.GetStake(ctx, owner, index)
	})
}

func (h *hexClientWithMetrics) GetDailyDataRange(ctx context.Context, beginDay, endDay uint64) ([]*big.Int, error) {
	return runHexClientMethodWithMetrics("GetDailyDataRange", func() ([]*big.Int, error) {
		return h.hex.GetDailyDataRange(ctx, beginDay, endDay)
	})
}

func (h *hexClientWithMetrics) SubscribeStakeEvents(ctx context.Context, owners []common.Address, sink chan<- *types.StakeEvent) error {
	// long running, latency of the whole subscription is meaningless
	return h.hex.SubscribeStakeEvents(ctx, owners, sink)
}

func runHexClientMethodWithMetrics[T any](method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	v, err := f()
	duration := time.Since(startTime)

	metrics.RecordHexClientLatency(duration, method, err != nil)
	return v, err
}

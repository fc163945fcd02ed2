package hexclient

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/hexstaking/hex-staking-indexer/internal/codec"
	"github.com/hexstaking/hex-staking-indexer/internal/types"
)

//go:generate mockery --name=HexInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_hex_client.go
type HexInterface interface {
	GetGlobals(ctx context.Context) (*codec.RawGlobals, error)
	GetAllocatedSupply(ctx context.Context) (*big.Int, error)
	GetCurrentDay(ctx context.Context) (uint64, error)
	GetStakeCount(ctx context.Context, owner common.Address) (uint64, error)
	GetStake(ctx context.Context, owner common.Address, index uint64) (*types.RawStake, error)
	// GetDailyDataRange returns the packed daily words of [beginDay, endDay).
	GetDailyDataRange(ctx context.Context, beginDay, endDay uint64) ([]*big.Int, error)
	// SubscribeStakeEvents blocks until ctx is done or the subscription
	// fails, forwarding StakeStart and StakeEnd logs of the given owners to
	// sink. An empty owner list subscribes to every staker.
	SubscribeStakeEvents(ctx context.Context, owners []common.Address, sink chan<- *types.StakeEvent) error
}

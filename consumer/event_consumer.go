package consumer

import (
	"context"

	"github.com/hexstaking/hex-staking-indexer/internal/types"
)

//go:generate mockery --name=EventConsumer --output=../tests/mocks --outpkg=mocks --filename=mock_event_consumer.go
type EventConsumer interface {
	Start() error
	PushOwnerStakesUpdatedEvent(ctx context.Context, ev *types.OwnerStakesUpdatedEvent) error
	Stop() error
}

package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/hexstaking/hex-staking-indexer/internal/config"
	"github.com/hexstaking/hex-staking-indexer/internal/types"
)

const OwnerStakesUpdatedQueueName = "hex_owner_stakes_updated"

type QueueManager struct {
	cfg                     *config.QueueConfig
	ownerStakesUpdatedQueue QueueClient
}

func NewQueueManager(cfg *config.QueueConfig) *QueueManager {
	return &QueueManager{cfg: cfg}
}

// Start connects to the broker and declares the queues.
func (qm *QueueManager) Start() error {
	client, err := NewQueueClient(qm.cfg, OwnerStakesUpdatedQueueName)
	if err != nil {
		return fmt.Errorf("failed to create %s queue: %w", OwnerStakesUpdatedQueueName, err)
	}
	qm.ownerStakesUpdatedQueue = client
	return nil
}

func (qm *QueueManager) PushOwnerStakesUpdatedEvent(ctx context.Context, ev *types.OwnerStakesUpdatedEvent) error {
	if qm.ownerStakesUpdatedQueue == nil {
		return fmt.Errorf("queue manager is not started")
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal owner stakes event: %w", err)
	}

	log.Ctx(ctx).Debug().
		Str("owner", ev.Owner).
		Uint64("current_day", ev.CurrentDay).
		Msg("Publishing owner stakes updated event")

	if err := qm.ownerStakesUpdatedQueue.SendMessage(ctx, string(body)); err != nil {
		return fmt.Errorf("failed to publish owner stakes event: %w", err)
	}
	return nil
}

func (qm *QueueManager) Ping(ctx context.Context) error {
	if qm.ownerStakesUpdatedQueue == nil {
		return fmt.Errorf("queue manager is not started")
	}
	return qm.ownerStakesUpdatedQueue.Ping(ctx)
}

// Stop gracefully stops the interaction with the queue, ensuring all resources are properly released.
func (qm *QueueManager) Stop() error {
	log.Info().Msg("Shutting down queue manager")
	if qm.ownerStakesUpdatedQueue == nil {
		return nil
	}
	return qm.ownerStakesUpdatedQueue.Stop()
}

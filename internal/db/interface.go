package db

import (
	"context"

	"github.com/hexstaking/hex-staking-indexer/internal/db/model"
)

//go:generate mockery --name=DbInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_db_client.go
type DbInterface interface {
	Ping(ctx context.Context) error
	// UpsertChainSnapshot replaces the latest chain snapshot.
	UpsertChainSnapshot(ctx context.Context, snapshot *model.ChainSnapshotDocument) error
	// GetChainSnapshot returns NotFoundError before the first snapshot is saved.
	GetChainSnapshot(ctx context.Context) (*model.ChainSnapshotDocument, error)
	UpsertOwnerStakes(ctx context.Context, doc *model.OwnerStakesDocument) error
	GetOwnerStakes(ctx context.Context, owner string) (*model.OwnerStakesDocument, error)
	// AddTrackedOwner returns DuplicateKeyError if the owner is already tracked.
	AddTrackedOwner(ctx context.Context, doc *model.TrackedOwnerDocument) error
	// GetTrackedOwners returns up to limit owners ordered by address, starting
	// after afterOwner. An empty afterOwner starts from the first owner.
	GetTrackedOwners(ctx context.Context, afterOwner string, limit uint64) ([]*model.TrackedOwnerDocument, error)
	IsTrackedOwner(ctx context.Context, owner string) (bool, error)
	CountTrackedOwners(ctx context.Context) (int64, error)
}

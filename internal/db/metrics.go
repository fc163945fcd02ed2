package db

import (
	"context"
	"time"

	"github.com/hexstaking/hex-staking-indexer/internal/db/model"
	"github.com/hexstaking/hex-staking-indexer/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) UpsertChainSnapshot(ctx context.Context, snapshot *model.ChainSnapshotDocument) error {
	return d.run("UpsertChainSnapshot", func() error {
		return d.db.UpsertChainSnapshot(ctx, snapshot)
	})
}

func (d *DbWithMetrics) GetChainSnapshot(ctx context.Context) (result *model.ChainSnapshotDocument, err error) {
	//nolint:errcheck
	d.run("GetChainSnapshot", func() error {
		result, err = d.db.GetChainSnapshot(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) UpsertOwnerStakes(ctx context.Context, doc *model.OwnerStakesDocument) error {
	return d.run("UpsertOwnerStakes", func() error {
		return d.db.UpsertOwnerStakes(ctx, doc)
	})
}

func (d *DbWithMetrics) GetOwnerStakes(ctx context.Context, owner string) (result *model.OwnerStakesDocument, err error) {
	//nolint:errcheck
	d.run("GetOwnerStakes", func() error {
		result, err = d.db.GetOwnerStakes(ctx, owner)
		return err
	})
	return
}

func (d *DbWithMetrics) AddTrackedOwner(ctx context.Context, doc *model.TrackedOwnerDocument) error {
	return d.run("AddTrackedOwner", func() error {
		return d.db.AddTrackedOwner(ctx, doc)
	})
}

func (d *DbWithMetrics) GetTrackedOwners(
	ctx context.Context, afterOwner string, limit uint64,
) (result []*model.TrackedOwnerDocument, err error) {
	//nolint:errcheck
	d.run("GetTrackedOwners", func() error {
		result, err = d.db.GetTrackedOwners(ctx, afterOwner, limit)
		return err
	})
	return
}

func (d *DbWithMetrics) IsTrackedOwner(ctx context.Context, owner string) (result bool, err error) {
	//nolint:errcheck
	d.run("IsTrackedOwner", func() error {
		result, err = d.db.IsTrackedOwner(ctx, owner)
		return err
	})
	return
}

func (d *DbWithMetrics) CountTrackedOwners(ctx context.Context) (result int64, err error) {
	//nolint:errcheck
	d.run("CountTrackedOwners", func() error {
		result, err = d.db.CountTrackedOwners(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}

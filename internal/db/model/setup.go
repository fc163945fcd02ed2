package model

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hexstaking/hex-staking-indexer/internal/config"
)

const (
	ChainSnapshotCollection = "chain_snapshot"
	OwnerStakesCollection   = "owner_stakes"
	TrackedOwnersCollection = "tracked_owners"

	namespaceExistsCode = 48
)

type index struct {
	Indexes map[string]int
	Unique  bool
}

var collections = map[string][]index{
	ChainSnapshotCollection: {},
	OwnerStakesCollection: {
		{Indexes: map[string]int{"updated_at": 1}, Unique: false},
		{Indexes: map[string]int{"current_day": 1}, Unique: false},
	},
	TrackedOwnersCollection: {},
}

// Setup creates the collections and their indexes.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("Failed to disconnect from MongoDB")
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	database := client.Database(cfg.DbName)

	for collection, idxs := range collections {
		if err := createCollection(ctx, database, collection); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", collection, err)
		}
		for _, idx := range idxs {
			if err := createIndex(ctx, database, collection, idx); err != nil {
				return fmt.Errorf("failed to create index on %s: %w", collection, err)
			}
		}
	}

	log.Ctx(ctx).Info().Msg("Collections and Indexes created successfully.")
	return nil
}

func createCollection(ctx context.Context, database *mongo.Database, collectionName string) error {
	err := database.CreateCollection(ctx, collectionName)
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == namespaceExistsCode {
		return nil
	}
	return err
}

func createIndex(ctx context.Context, database *mongo.Database, collectionName string, idx index) error {
	if len(idx.Indexes) == 0 {
		return nil
	}

	keys := bson.D{}
	for k, v := range idx.Indexes {
		keys = append(keys, bson.E{Key: k, Value: v})
	}

	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetUnique(idx.Unique),
	}

	if _, err := database.Collection(collectionName).Indexes().CreateOne(ctx, indexModel); err != nil {
		return err
	}

	log.Ctx(ctx).Debug().Str("collection", collectionName).Interface("index", idx.Indexes).Msg("Index created successfully")
	return nil
}

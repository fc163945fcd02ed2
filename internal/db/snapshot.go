package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hexstaking/hex-staking-indexer/internal/db/model"
)

const chainSnapshotID = "latest"

type chainSnapshotDoc struct {
	ID                          string `bson:"_id"`
	model.ChainSnapshotDocument `bson:",inline"`
}

func (db *Database) GetChainSnapshot(ctx context.Context) (*model.ChainSnapshotDocument, error) {
	filter := bson.M{"_id": chainSnapshotID}
	res := db.collection(model.ChainSnapshotCollection).FindOne(ctx, filter)

	var doc chainSnapshotDoc
	err := res.Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     chainSnapshotID,
				Message: "chain snapshot not found",
			}
		}
		return nil, err
	}

	return &doc.ChainSnapshotDocument, nil
}

func (db *Database) UpsertChainSnapshot(ctx context.Context, snapshot *model.ChainSnapshotDocument) error {
	doc := chainSnapshotDoc{
		ID:                    chainSnapshotID,
		ChainSnapshotDocument: *snapshot,
	}

	filter := bson.M{"_id": chainSnapshotID}
	_, err := db.collection(model.ChainSnapshotCollection).
		ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
	return err
}

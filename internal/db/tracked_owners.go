package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hexstaking/hex-staking-indexer/internal/db/model"
)

func (db *Database) AddTrackedOwner(ctx context.Context, doc *model.TrackedOwnerDocument) error {
	_, err := db.collection(model.TrackedOwnersCollection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &DuplicateKeyError{
				Key:     doc.Owner,
				Message: "owner is already tracked",
			}
		}
		return err
	}

	return nil
}

func (db *Database) GetTrackedOwners(
	ctx context.Context, afterOwner string, limit uint64,
) ([]*model.TrackedOwnerDocument, error) {
	filter := bson.M{}
	if afterOwner != "" {
		filter["_id"] = bson.M{"$gt": afterOwner}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := db.collection(model.TrackedOwnersCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var owners []*model.TrackedOwnerDocument
	if err := cursor.All(ctx, &owners); err != nil {
		return nil, err
	}

	return owners, nil
}

func (db *Database) IsTrackedOwner(ctx context.Context, owner string) (bool, error) {
	count, err := db.collection(model.TrackedOwnersCollection).
		CountDocuments(ctx, bson.M{"_id": owner}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (db *Database) CountTrackedOwners(ctx context.Context) (int64, error) {
	return db.collection(model.TrackedOwnersCollection).CountDocuments(ctx, bson.M{})
}

package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hexstaking/hex-staking-indexer/internal/db/model"
)

func (db *Database) UpsertOwnerStakes(ctx context.Context, doc *model.OwnerStakesDocument) error {
	filter := bson.M{"_id": doc.Owner}
	_, err := db.collection(model.OwnerStakesCollection).
		ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
	return err
}

func (db *Database) GetOwnerStakes(ctx context.Context, owner string) (*model.OwnerStakesDocument, error) {
	filter := bson.M{"_id": owner}

	var doc model.OwnerStakesDocument
	err := db.collection(model.OwnerStakesCollection).FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     owner,
				Message: "stakes of the owner have not been computed yet",
			}
		}
		return nil, err
	}

	return &doc, nil
}

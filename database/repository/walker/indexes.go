package walkerRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the walker queries depend on.
func (r *MongoWalkerRepo) EnsureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	walkerIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// One walker profile per user.
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "city", Value: 1}},
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, walkerIndexes); err != nil {
		return fmt.Errorf("failed to create walker indexes: %w", err)
	}

	reviewIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "walkerId", Value: 1}, {Key: "createdAt", Value: -1}},
		},
	}
	if _, err := r.reviews.Indexes().CreateMany(ctx, reviewIndexes); err != nil {
		return fmt.Errorf("failed to create review indexes: %w", err)
	}
	return nil
}

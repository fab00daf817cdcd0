package walkerRepo

import (
	"context"
	"fmt"
	"time"

	"pawmi/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoWalkerRepo implements WalkerRepository using MongoDB.
type MongoWalkerRepo struct {
	coll    *mongo.Collection
	reviews *mongo.Collection
}

// NewMongoWalkerRepo creates a new instance of WalkerRepository using MongoDB.
func NewMongoWalkerRepo() WalkerRepository {
	repo := &MongoWalkerRepo{
		coll:    database.Collection("walkers"),
		reviews: database.Collection("walker_reviews"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		fmt.Printf("failed to create walker indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

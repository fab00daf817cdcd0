package walkerRepo

import (
	"fmt"
	"time"

	"pawmi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoWalkerRepo) GetByID(id string) (*models.Walker, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var walker models.Walker
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&walker); err != nil {
		return nil, fmt.Errorf("failed to fetch walker with id %s: %w", id, err)
	}
	return &walker, nil
}

func (r *MongoWalkerRepo) GetByUserID(userID string) (*models.Walker, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var walker models.Walker
	filter := bson.M{"userId": userID}
	if err := r.coll.FindOne(ctx, filter).Decode(&walker); err != nil {
		return nil, fmt.Errorf("failed to fetch walker for user %s: %w", userID, err)
	}
	return &walker, nil
}

// ListActive returns every active walker profile. Filtering and ordering are
// the discovery service's job, not the repository's.
func (r *MongoWalkerRepo) ListActive() ([]models.Walker, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve walkers: %w", err)
	}
	defer cursor.Close(ctx)

	var walkers []models.Walker
	for cursor.Next(ctx) {
		var w models.Walker
		if err := cursor.Decode(&w); err != nil {
			return nil, fmt.Errorf("failed to decode walker: %w", err)
		}
		walkers = append(walkers, w)
	}
	return walkers, nil
}

// ListReviews returns the newest reviews for a walker.
func (r *MongoWalkerRepo) ListReviews(walkerID string, limit int) ([]models.WalkerReview, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}
	cursor, err := r.reviews.Find(ctx, bson.M{"walkerId": walkerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews for walker %s: %w", walkerID, err)
	}
	defer cursor.Close(ctx)

	var reviews []models.WalkerReview
	for cursor.Next(ctx) {
		var rv models.WalkerReview
		if err := cursor.Decode(&rv); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, nil
}

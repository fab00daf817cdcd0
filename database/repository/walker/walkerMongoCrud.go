package walkerRepo

import (
	"fmt"
	"time"

	"pawmi/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new walker document.
func (r *MongoWalkerRepo) Create(walker *models.Walker) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, walker)
	if err != nil {
		return fmt.Errorf("failed to create walker: %w", err)
	}
	return nil
}

// Update modifies an existing walker document.
func (r *MongoWalkerRepo) Update(walker *models.Walker) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": walker.ID}
	update := bson.M{"$set": walker}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update walker with id %s: %w", walker.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("walker with id %s not found", walker.ID)
	}
	return nil
}

// IncrementTotalWalks bumps the completed-walk counter by one.
func (r *MongoWalkerRepo) IncrementTotalWalks(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{
		"$inc": bson.M{"totalWalks": 1},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to increment walks for walker %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("walker with id %s not found", id)
	}
	return nil
}

// SetRating stores the recomputed review aggregate.
func (r *MongoWalkerRepo) SetRating(id string, average float64, totalReviews int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{
		"ratingAverage": average,
		"totalReviews":  totalReviews,
		"updatedAt":     time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set rating for walker %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("walker with id %s not found", id)
	}
	return nil
}

// CreateReview inserts a review document.
func (r *MongoWalkerRepo) CreateReview(review *models.WalkerReview) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.reviews.InsertOne(ctx, review)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

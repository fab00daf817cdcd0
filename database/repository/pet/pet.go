package petRepo

import (
	"context"
	"fmt"
	"time"

	"pawmi/database"
	"pawmi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PetRepository defines persistence operations for pets.
type PetRepository interface {
	Create(pet *models.Pet) error
	Update(pet *models.Pet) error
	Delete(id string) error
	GetByID(id string) (*models.Pet, error)
	ListByOwner(ownerID string) ([]models.Pet, error)
	ListAdoptable() ([]models.Pet, error)
}

// MongoPetRepo implements PetRepository using MongoDB.
type MongoPetRepo struct {
	coll *mongo.Collection
}

// NewMongoPetRepo creates a new instance of PetRepository using MongoDB.
func NewMongoPetRepo() PetRepository {
	return &MongoPetRepo{coll: database.Collection("pets")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPetRepo) Create(pet *models.Pet) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, pet)
	if err != nil {
		return fmt.Errorf("failed to create pet: %w", err)
	}
	return nil
}

func (r *MongoPetRepo) Update(pet *models.Pet) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": pet.ID}
	update := bson.M{"$set": pet}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update pet with id %s: %w", pet.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("pet with id %s not found", pet.ID)
	}
	return nil
}

func (r *MongoPetRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete pet with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("pet with id %s not found", id)
	}
	return nil
}

func (r *MongoPetRepo) GetByID(id string) (*models.Pet, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var pet models.Pet
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&pet); err != nil {
		return nil, fmt.Errorf("failed to fetch pet with id %s: %w", id, err)
	}
	return &pet, nil
}

func (r *MongoPetRepo) ListByOwner(ownerID string) ([]models.Pet, error) {
	return r.list(bson.M{"ownerId": ownerID}, nil)
}

// ListAdoptable returns pets flagged for adoption that have not been adopted
// yet, newest first.
func (r *MongoPetRepo) ListAdoptable() ([]models.Pet, error) {
	filter := bson.M{
		"forAdoption":    true,
		"adoptionStatus": bson.M{"$ne": "adopted"},
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.list(filter, opts)
}

func (r *MongoPetRepo) list(filter bson.M, opts *options.FindOptions) ([]models.Pet, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.coll.Find(ctx, filter, opts)
	} else {
		cursor, err = r.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve pets: %w", err)
	}
	defer cursor.Close(ctx)

	var pets []models.Pet
	for cursor.Next(ctx) {
		var p models.Pet
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode pet: %w", err)
		}
		pets = append(pets, p)
	}
	return pets, nil
}

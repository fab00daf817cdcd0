package walkerRepo

import "pawmi/models"

// WalkerRepository defines persistence operations for walker profiles and
// their reviews.
type WalkerRepository interface {
	Create(walker *models.Walker) error
	Update(walker *models.Walker) error
	GetByID(id string) (*models.Walker, error)
	GetByUserID(userID string) (*models.Walker, error)
	ListActive() ([]models.Walker, error)

	IncrementTotalWalks(id string) error
	SetRating(id string, average float64, totalReviews int) error

	CreateReview(review *models.WalkerReview) error
	ListReviews(walkerID string, limit int) ([]models.WalkerReview, error)
}

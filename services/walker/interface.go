package walker

import (
	"time"

	bookingRepo "pawmi/database/repository/booking"
	walkerRepo "pawmi/database/repository/walker"
	"pawmi/models"
)

// ProfileRequest carries the mutable fields of a walker profile, used both
// for registration and updates.
type ProfileRequest struct {
	Bio              string   `json:"bio"`
	ExperienceYears  int      `json:"experience_years"`
	Certifications   []string `json:"certifications"`
	HourlyRate       float64  `json:"hourly_rate" binding:"required,gt=0"`
	Services         []string `json:"services" binding:"required,min=1"`
	City             string   `json:"city" binding:"required"`
	Neighborhood     string   `json:"neighborhood"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	ServiceRadiusKm  float64  `json:"service_radius_km"`
	AcceptedPetSizes []string `json:"accepted_pet_sizes"`
	AcceptedPetTypes []string `json:"accepted_pet_types"`
	MaxPetsPerWalk   int      `json:"max_pets_per_walk"`
	ProfilePhotos    []string `json:"profile_photos"`
}

// ReviewRequest carries a new review for a walker.
type ReviewRequest struct {
	Rating      int        `json:"rating" binding:"required,min=1,max=5"`
	Comment     string     `json:"comment"`
	ServiceType string     `json:"service_type" binding:"required"`
	ServiceDate *time.Time `json:"service_date"`
}

// WalkerService defines walker profile and review operations.
type WalkerService interface {
	BecomeWalker(userID string, user models.UserInfo, req ProfileRequest) (*models.Walker, error)
	UpdateProfile(walkerID, userID string, req ProfileRequest) (*models.Walker, error)
	GetByID(id string) (*models.Walker, error)
	GetMine(userID string) (*models.Walker, error)
	CreateReview(walkerID, reviewerID string, reviewer models.UserInfo, req ReviewRequest) (*models.WalkerReview, error)
	ListReviews(walkerID string, limit int) ([]models.WalkerReview, error)
}

// DefaultWalkerService implements WalkerService.
type DefaultWalkerService struct {
	Repo        walkerRepo.WalkerRepository
	BookingRepo bookingRepo.BookingRepository
}

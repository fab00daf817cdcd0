package models

import (
	"time"
)

// UserInfo is the denormalized owner data attached to walker and booking
// responses so clients never need a second lookup.
type UserInfo struct {
	FullName        string `bson:"fullName" json:"full_name,omitempty"`
	Email           string `bson:"email" json:"email,omitempty"`
	Phone           string `bson:"phone,omitempty" json:"phone,omitempty"`
	ProfileImageURL string `bson:"profileImageUrl,omitempty" json:"profile_image_url,omitempty"`
}

// Walker is a user offering pet-care services on the marketplace.
type Walker struct {
	ID     string   `bson:"id" json:"id"`
	UserID string   `bson:"userId" json:"user_id"`
	User   UserInfo `bson:"user" json:"user,omitzero"`

	// Professional info.
	Bio             string   `bson:"bio,omitempty" json:"bio,omitempty"`
	ExperienceYears int      `bson:"experienceYears,omitempty" json:"experience_years,omitempty"`
	Certifications  []string `bson:"certifications,omitempty" json:"certifications,omitempty"`

	// Services and pricing.
	HourlyRate float64  `bson:"hourlyRate" json:"hourly_rate"`
	Services   []string `bson:"services" json:"services"` // see ServiceCatalogue for valid values

	// Location.
	City            string   `bson:"city" json:"city"`
	Neighborhood    string   `bson:"neighborhood,omitempty" json:"neighborhood,omitempty"`
	Latitude        *float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude       *float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
	ServiceRadiusKm float64  `bson:"serviceRadiusKm" json:"service_radius_km"`

	// Preferences.
	AcceptedPetSizes []string `bson:"acceptedPetSizes" json:"accepted_pet_sizes"` // small, medium, large, giant
	AcceptedPetTypes []string `bson:"acceptedPetTypes" json:"accepted_pet_types"` // dog, cat, bird, rabbit, other
	MaxPetsPerWalk   int      `bson:"maxPetsPerWalk" json:"max_pets_per_walk"`

	// Verification and state.
	IsActive                 bool `bson:"isActive" json:"is_active"`
	IsVerified               bool `bson:"isVerified" json:"is_verified"`
	BackgroundCheckCompleted bool `bson:"backgroundCheckCompleted" json:"background_check_completed"`

	// Aggregate stats, maintained by the review and booking services.
	TotalWalks    int      `bson:"totalWalks" json:"total_walks"`
	RatingAverage *float64 `bson:"ratingAverage,omitempty" json:"rating_average,omitempty"`
	TotalReviews  int      `bson:"totalReviews" json:"total_reviews"`

	ProfilePhotos []string `bson:"profilePhotos,omitempty" json:"profile_photos,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// Coordinates returns the walker position, and false when either axis is unset.
func (w *Walker) Coordinates() (lat, lon float64, ok bool) {
	if w.Latitude == nil || w.Longitude == nil {
		return 0, 0, false
	}
	return *w.Latitude, *w.Longitude, true
}

// WalkerReview is a customer review left after a completed booking.
type WalkerReview struct {
	ID          string     `bson:"id" json:"id"`
	WalkerID    string     `bson:"walkerId" json:"walker_id"`
	ReviewerID  string     `bson:"reviewerId" json:"reviewer_id"`
	Rating      int        `bson:"rating" json:"rating"` // 1-5
	Comment     string     `bson:"comment,omitempty" json:"comment,omitempty"`
	ServiceType string     `bson:"serviceType" json:"service_type"`
	ServiceDate *time.Time `bson:"serviceDate,omitempty" json:"service_date,omitempty"`
	Reviewer    UserInfo   `bson:"reviewer,omitempty" json:"reviewer,omitzero"`
	CreatedAt   time.Time  `bson:"createdAt" json:"created_at"`
}

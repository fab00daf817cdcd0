package walker

import (
	"math"
	"time"

	"pawmi/models"
	"pawmi/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BecomeWalker registers the user as a walker. A user can hold at most one
// walker profile.
func (s *DefaultWalkerService) BecomeWalker(userID string, user models.UserInfo, req ProfileRequest) (*models.Walker, error) {
	if existing, err := s.Repo.GetByUserID(userID); err == nil && existing != nil {
		return nil, AlreadyRegisteredError{UserID: userID}
	}

	now := time.Now()
	w := &models.Walker{
		ID:        uuid.New().String(),
		UserID:    userID,
		User:      user,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyProfile(w, req)

	if err := s.Repo.Create(w); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("walker registered",
		zap.String("walkerID", w.ID), zap.String("userID", userID))
	return w, nil
}

// UpdateProfile applies profile changes. Only the profile owner may update.
func (s *DefaultWalkerService) UpdateProfile(walkerID, userID string, req ProfileRequest) (*models.Walker, error) {
	w, err := s.Repo.GetByID(walkerID)
	if err != nil {
		return nil, err
	}
	if w.UserID != userID {
		return nil, NotProfileOwnerError{UserID: userID, WalkerID: walkerID}
	}

	applyProfile(w, req)
	w.UpdatedAt = time.Now()

	if err := s.Repo.Update(w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *DefaultWalkerService) GetByID(id string) (*models.Walker, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultWalkerService) GetMine(userID string) (*models.Walker, error) {
	return s.Repo.GetByUserID(userID)
}

// CreateReview stores a review and recomputes the walker's rating aggregate.
// Reviews require a completed booking with the walker and cannot target the
// reviewer's own profile.
func (s *DefaultWalkerService) CreateReview(walkerID, reviewerID string, reviewer models.UserInfo, req ReviewRequest) (*models.WalkerReview, error) {
	w, err := s.Repo.GetByID(walkerID)
	if err != nil {
		return nil, err
	}
	if w.UserID == reviewerID {
		return nil, ReviewNotAllowedError{Reason: "cannot review your own profile"}
	}

	completed, err := s.BookingRepo.HasCompletedBooking(walkerID, reviewerID)
	if err != nil {
		return nil, err
	}
	if !completed {
		return nil, ReviewNotAllowedError{Reason: "requires a completed booking with this walker"}
	}

	review := &models.WalkerReview{
		ID:          uuid.New().String(),
		WalkerID:    walkerID,
		ReviewerID:  reviewerID,
		Rating:      req.Rating,
		Comment:     req.Comment,
		ServiceType: req.ServiceType,
		ServiceDate: req.ServiceDate,
		Reviewer:    reviewer,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.CreateReview(review); err != nil {
		return nil, err
	}

	average, total := NextRating(w.RatingAverage, w.TotalReviews, req.Rating)
	if err := s.Repo.SetRating(walkerID, average, total); err != nil {
		utils.GetLogger().Warn("failed to update walker rating",
			zap.String("walkerID", walkerID), zap.Error(err))
	}

	return review, nil
}

func (s *DefaultWalkerService) ListReviews(walkerID string, limit int) ([]models.WalkerReview, error) {
	return s.Repo.ListReviews(walkerID, limit)
}

// NextRating folds one new rating into the running average, rounded to two
// decimals the way the rating is displayed.
func NextRating(current *float64, totalReviews, rating int) (float64, int) {
	var sum float64
	if current != nil {
		sum = *current * float64(totalReviews)
	}
	total := totalReviews + 1
	average := (sum + float64(rating)) / float64(total)
	return math.Round(average*100) / 100, total
}

func applyProfile(w *models.Walker, req ProfileRequest) {
	w.Bio = req.Bio
	w.ExperienceYears = req.ExperienceYears
	w.Certifications = req.Certifications
	w.HourlyRate = req.HourlyRate
	w.Services = req.Services
	w.City = req.City
	w.Neighborhood = req.Neighborhood
	w.Latitude = req.Latitude
	w.Longitude = req.Longitude
	w.ServiceRadiusKm = req.ServiceRadiusKm
	w.AcceptedPetSizes = req.AcceptedPetSizes
	w.AcceptedPetTypes = req.AcceptedPetTypes
	w.ProfilePhotos = req.ProfilePhotos
	if req.MaxPetsPerWalk > 0 {
		w.MaxPetsPerWalk = req.MaxPetsPerWalk
	} else if w.MaxPetsPerWalk == 0 {
		w.MaxPetsPerWalk = 3
	}
}

package booking

import (
	"fmt"

	"pawmi/models"
	"pawmi/utils"

	"go.uber.org/zap"
)

// CreateBooking validates the request against the walker's offer and the
// owner's pet, fixes the price, and persists the pending booking.
func (s *DefaultBookingService) CreateBooking(ownerID string, req CreateBookingRequest) (*models.Booking, error) {
	walker, err := s.WalkerRepo.GetByID(req.WalkerID)
	if err != nil {
		return nil, fmt.Errorf("walker not found: %w", err)
	}
	if !walker.IsActive {
		return nil, ValidationError{Field: "walker_id", Reason: "refers to an inactive walker"}
	}

	pet, err := s.PetRepo.GetByID(req.PetID)
	if err != nil {
		return nil, fmt.Errorf("pet not found: %w", err)
	}
	if pet.OwnerID != ownerID {
		return nil, PermissionError{UserID: ownerID, BookingID: ""}
	}

	bk, err := NewBooking(walker, pet, req.ServiceType, req.ScheduledDate, req.DurationHours, req.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Create(bk); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking created",
		zap.String("bookingID", bk.ID),
		zap.String("walkerID", bk.WalkerID),
		zap.String("serviceType", bk.ServiceType),
		zap.Float64("totalPrice", bk.TotalPrice),
	)
	return bk, nil
}

// UpdateStatus resolves the actor's role on the booking, applies the
// role-gated transition and persists the result. Completing a booking also
// bumps the walker's walk counter.
func (s *DefaultBookingService) UpdateStatus(bookingID, actorUserID string, target models.BookingStatus) (*models.Booking, error) {
	bk, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}

	role, walker, err := s.resolveRole(bk, actorUserID)
	if err != nil {
		return nil, err
	}

	updated, err := Transition(*bk, role, target)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateStatus(updated.ID, updated.Status); err != nil {
		return nil, err
	}

	if updated.Status == models.BookingCompleted && walker != nil {
		if err := s.WalkerRepo.IncrementTotalWalks(walker.ID); err != nil {
			utils.GetLogger().Warn("failed to bump walk counter",
				zap.String("walkerID", walker.ID), zap.Error(err))
		}
	}

	utils.GetLogger().Info("booking status updated",
		zap.String("bookingID", updated.ID),
		zap.String("from", string(bk.Status)),
		zap.String("to", string(updated.Status)),
		zap.String("actor", string(role)),
	)
	return &updated, nil
}

// GetBooking returns a booking when the user is one of its participants.
func (s *DefaultBookingService) GetBooking(bookingID, userID string) (*models.Booking, error) {
	bk, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if _, _, err := s.resolveRole(bk, userID); err != nil {
		return nil, err
	}
	return bk, nil
}

// ListMyBookings returns the user's bookings, as walker or as pet owner,
// newest scheduled first. An empty status means no status filter.
func (s *DefaultBookingService) ListMyBookings(userID string, asWalker bool, status models.BookingStatus) ([]models.Booking, error) {
	if asWalker {
		walker, err := s.WalkerRepo.GetByUserID(userID)
		if err != nil {
			return nil, fmt.Errorf("no walker profile for user %s: %w", userID, err)
		}
		return s.Repo.ListByWalker(walker.ID, status)
	}
	return s.Repo.ListByOwner(userID, status)
}

// WalkerStats folds the walker's bookings into dashboard counters.
func (s *DefaultBookingService) WalkerStats(walkerUserID string) (*models.BookingStats, error) {
	walker, err := s.WalkerRepo.GetByUserID(walkerUserID)
	if err != nil {
		return nil, fmt.Errorf("no walker profile for user %s: %w", walkerUserID, err)
	}
	bookings, err := s.Repo.ListByWalker(walker.ID, "")
	if err != nil {
		return nil, err
	}

	var rating float64
	if walker.RatingAverage != nil {
		rating = *walker.RatingAverage
	}
	stats := AggregateStats(bookings, rating)
	return &stats, nil
}

// resolveRole determines whether the user acts as the booking's owner or its
// walker. The walker profile is returned for walker actors so callers can
// update its counters.
func (s *DefaultBookingService) resolveRole(bk *models.Booking, userID string) (models.ActorRole, *models.Walker, error) {
	if bk.PetOwnerID == userID {
		return models.RoleOwner, nil, nil
	}
	walker, err := s.WalkerRepo.GetByID(bk.WalkerID)
	if err != nil {
		return "", nil, err
	}
	if walker.UserID == userID {
		return models.RoleWalker, walker, nil
	}
	return "", nil, PermissionError{UserID: userID, BookingID: bk.ID}
}

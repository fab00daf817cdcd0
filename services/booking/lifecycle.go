package booking

import (
	"time"

	"pawmi/models"

	"github.com/google/uuid"
)

// allowedTransitions is the full permission table for status changes. The
// owner can only withdraw; every forward move belongs to the walker,
// including rejecting a pending request.
var allowedTransitions = map[models.ActorRole]map[models.BookingStatus][]models.BookingStatus{
	models.RoleOwner: {
		models.BookingPending:   {models.BookingCancelled},
		models.BookingConfirmed: {models.BookingCancelled},
	},
	models.RoleWalker: {
		models.BookingPending:    {models.BookingConfirmed, models.BookingCancelled},
		models.BookingConfirmed:  {models.BookingInProgress},
		models.BookingInProgress: {models.BookingCompleted},
	},
}

// NewBooking validates a creation request and returns a pending booking with
// the price fixed from the walker's hourly rate. durationHours of zero is
// defaulted from the service catalogue.
func NewBooking(walker *models.Walker, pet *models.Pet, serviceType string, scheduledDate time.Time, durationHours int, notes string) (*models.Booking, error) {
	return newBookingAt(walker, pet, serviceType, scheduledDate, durationHours, notes, time.Now())
}

func newBookingAt(walker *models.Walker, pet *models.Pet, serviceType string, scheduledDate time.Time, durationHours int, notes string, now time.Time) (*models.Booking, error) {
	if !offersService(walker, serviceType) {
		return nil, ValidationError{Field: "service_type", Reason: "is not offered by this walker"}
	}
	if durationHours == 0 {
		if d, ok := models.DefaultServiceDuration(serviceType); ok {
			durationHours = d
		}
	}
	if durationHours <= 0 {
		return nil, ValidationError{Field: "duration_hours", Reason: "must be positive"}
	}
	if !scheduledDate.After(now) {
		return nil, ValidationError{Field: "scheduled_date", Reason: "must be in the future"}
	}

	return &models.Booking{
		ID:            uuid.New().String(),
		WalkerID:      walker.ID,
		PetOwnerID:    pet.OwnerID,
		PetID:         pet.ID,
		ServiceType:   serviceType,
		ScheduledDate: scheduledDate,
		DurationHours: durationHours,
		TotalPrice:    walker.HourlyRate * float64(durationHours),
		Status:        models.BookingPending,
		Notes:         notes,
		WalkerName:    walker.User.FullName,
		PetName:       pet.Name,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Transition applies a role-gated status change and returns the updated
// booking. The input is not mutated; persistence is the caller's job.
func Transition(b models.Booking, actor models.ActorRole, target models.BookingStatus) (models.Booking, error) {
	if b.Status.Terminal() {
		return b, TerminalStateError{Status: b.Status}
	}
	if !transitionAllowed(actor, b.Status, target) {
		return b, InvalidTransitionError{From: b.Status, To: target, Actor: actor}
	}

	b.Status = target
	b.UpdatedAt = time.Now()
	return b, nil
}

func transitionAllowed(actor models.ActorRole, from, to models.BookingStatus) bool {
	for _, allowed := range allowedTransitions[actor][from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func offersService(walker *models.Walker, serviceType string) bool {
	for _, s := range walker.Services {
		if s == serviceType {
			return true
		}
	}
	return false
}

package booking

import (
	"time"

	bookingRepo "pawmi/database/repository/booking"
	petRepo "pawmi/database/repository/pet"
	walkerRepo "pawmi/database/repository/walker"
	"pawmi/models"
)

// CreateBookingRequest is the payload for booking a walker service.
type CreateBookingRequest struct {
	WalkerID      string    `json:"walker_id" binding:"required"`
	PetID         string    `json:"pet_id" binding:"required"`
	ServiceType   string    `json:"service_type" binding:"required"`
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
	DurationHours int       `json:"duration_hours"`
	Notes         string    `json:"notes"`
}

// BookingService defines the operations around the booking lifecycle.
type BookingService interface {
	CreateBooking(ownerID string, req CreateBookingRequest) (*models.Booking, error)
	UpdateStatus(bookingID, actorUserID string, target models.BookingStatus) (*models.Booking, error)
	GetBooking(bookingID, userID string) (*models.Booking, error)
	ListMyBookings(userID string, asWalker bool, status models.BookingStatus) ([]models.Booking, error)
	WalkerStats(walkerUserID string) (*models.BookingStats, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	WalkerRepo walkerRepo.WalkerRepository
	PetRepo    petRepo.PetRepository
}

package bookingRepo

import "pawmi/models"

// BookingRepository defines persistence operations for walker bookings.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	UpdateStatus(id string, status models.BookingStatus) error
	ListByWalker(walkerID string, status models.BookingStatus) ([]models.Booking, error)
	ListByOwner(ownerID string, status models.BookingStatus) ([]models.Booking, error)
	HasCompletedBooking(walkerID, ownerID string) (bool, error)
}

package models

import "time"

// BookingStatus is the lifecycle state of a walker booking.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// Terminal reports whether no further transition may leave this status.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// ActorRole identifies which side of a booking is requesting a change.
type ActorRole string

const (
	RoleOwner  ActorRole = "owner"
	RoleWalker ActorRole = "walker"
)

// Booking is a scheduled walker service for a single pet.
// TotalPrice is fixed at creation (hourly rate times duration) and is never
// recomputed by status transitions.
type Booking struct {
	ID         string `bson:"id" json:"id"`
	WalkerID   string `bson:"walkerId" json:"walker_id"`
	PetOwnerID string `bson:"petOwnerId" json:"pet_owner_id"`
	PetID      string `bson:"petId" json:"pet_id"`

	ServiceType   string        `bson:"serviceType" json:"service_type"`
	ScheduledDate time.Time     `bson:"scheduledDate" json:"scheduled_date"`
	DurationHours int           `bson:"durationHours" json:"duration_hours"`
	TotalPrice    float64       `bson:"totalPrice" json:"total_price"`
	Status        BookingStatus `bson:"status" json:"status"`
	Notes         string        `bson:"notes,omitempty" json:"notes,omitempty"`

	// Denormalized display data.
	WalkerName string `bson:"walkerName,omitempty" json:"walker_name,omitempty"`
	PetName    string `bson:"petName,omitempty" json:"pet_name,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// BookingStats is the dashboard aggregate a walker sees over their bookings.
type BookingStats struct {
	TotalBookings  int     `json:"total_bookings"`
	PendingCount   int     `json:"pending_count"`
	UpcomingCount  int     `json:"upcoming_count"`
	CompletedCount int     `json:"completed_count"`
	TotalEarnings  float64 `json:"total_earnings"`
	AverageRating  float64 `json:"average_rating"`
}

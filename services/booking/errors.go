package booking

import (
	"fmt"

	"pawmi/models"
)

// ValidationError signals a malformed booking creation request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid booking request: %s %s", e.Field, e.Reason)
}

// InvalidTransitionError signals a status change not permitted for the
// actor/state pair.
type InvalidTransitionError struct {
	From  models.BookingStatus
	To    models.BookingStatus
	Actor models.ActorRole
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s may not move booking from %s to %s", e.Actor, e.From, e.To)
}

// TerminalStateError signals an attempted mutation of a finished booking.
type TerminalStateError struct {
	Status models.BookingStatus
}

func (e TerminalStateError) Error() string {
	return fmt.Sprintf("booking is %s and cannot change state", e.Status)
}

// PermissionError signals that the acting user is not a participant of the
// booking they are trying to change.
type PermissionError struct {
	UserID    string
	BookingID string
}

func (e PermissionError) Error() string {
	return fmt.Sprintf("user %s has no access to booking %s", e.UserID, e.BookingID)
}

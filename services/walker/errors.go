package walker

import "fmt"

// AlreadyRegisteredError indicates the user already has a walker profile.
type AlreadyRegisteredError struct {
	UserID string
}

func (e AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("user %s is already registered as a walker", e.UserID)
}

// NotProfileOwnerError indicates the user does not own the profile they are
// trying to change.
type NotProfileOwnerError struct {
	UserID   string
	WalkerID string
}

func (e NotProfileOwnerError) Error() string {
	return fmt.Sprintf("user %s does not own walker profile %s", e.UserID, e.WalkerID)
}

// ReviewNotAllowedError indicates a review that violates the review rules.
type ReviewNotAllowedError struct {
	Reason string
}

func (e ReviewNotAllowedError) Error() string {
	return "review not allowed: " + e.Reason
}

package handlers

import (
	"errors"
	"net/http"

	"pawmi/services/booking"
	"pawmi/services/walker"
	"pawmi/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// respondServiceError maps typed service errors onto HTTP status codes.
func respondServiceError(c *gin.Context, err error) {
	var (
		validationErr    booking.ValidationError
		transitionErr    booking.InvalidTransitionError
		terminalErr      booking.TerminalStateError
		permissionErr    booking.PermissionError
		alreadyWalkerErr walker.AlreadyRegisteredError
		notOwnerErr      walker.NotProfileOwnerError
		reviewErr        walker.ReviewNotAllowedError
	)

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
	case errors.As(err, &transitionErr):
		utils.JSONError(c, http.StatusConflict, "Transition not permitted", err.Error())
	case errors.As(err, &terminalErr):
		utils.JSONError(c, http.StatusConflict, "Booking already finished", err.Error())
	case errors.As(err, &permissionErr):
		utils.JSONError(c, http.StatusForbidden, "Not a participant of this booking", err.Error())
	case errors.As(err, &alreadyWalkerErr):
		utils.JSONError(c, http.StatusBadRequest, "Already registered as walker", err.Error())
	case errors.As(err, &notOwnerErr):
		utils.JSONError(c, http.StatusForbidden, "Not the profile owner", err.Error())
	case errors.As(err, &reviewErr):
		utils.JSONError(c, http.StatusBadRequest, "Review not allowed", err.Error())
	case errors.Is(err, mongo.ErrNoDocuments):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}

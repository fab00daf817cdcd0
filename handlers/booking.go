package handlers

import (
	"net/http"

	"pawmi/middleware"
	"pawmi/models"
	"pawmi/services/booking"
	"pawmi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBookingHandler books a walker service for one of the caller's pets.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	bk, err := h.Service.CreateBooking(middleware.CurrentUserID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bk)
}

// GetBookingHandler returns one booking for a participant.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	bk, err := h.Service.GetBooking(c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// ListMyBookingsHandler lists the caller's bookings. With as_walker=true the
// caller's walker profile is resolved and its bookings returned instead.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	asWalker := c.Query("as_walker") == "true"
	status := models.BookingStatus(c.Query("status"))

	bookings, err := h.Service.ListMyBookings(middleware.CurrentUserID(c), asWalker, status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

type updateStatusRequest struct {
	Status models.BookingStatus `json:"status" binding:"required"`
}

// UpdateBookingStatusHandler applies a role-gated lifecycle transition.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	bk, err := h.Service.UpdateStatus(c.Param("id"), middleware.CurrentUserID(c), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// WalkerStatsHandler returns the caller's walker dashboard counters.
func (h *BookingHandler) WalkerStatsHandler(c *gin.Context) {
	stats, err := h.Service.WalkerStats(middleware.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

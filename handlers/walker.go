package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"pawmi/middleware"
	"pawmi/models"
	"pawmi/services/discovery"
	"pawmi/services/walker"
	"pawmi/utils"

	"github.com/gin-gonic/gin"
)

// WalkerHandler exposes walker discovery, profile and review endpoints.
type WalkerHandler struct {
	Service   walker.WalkerService
	Discovery discovery.DiscoveryService
}

func NewWalkerHandler(svc walker.WalkerService, disc discovery.DiscoveryService) *WalkerHandler {
	return &WalkerHandler{Service: svc, Discovery: disc}
}

// SearchWalkersHandler runs the discovery pipeline over the active walker
// pool. Filters and the requester location come in as query parameters.
func (h *WalkerHandler) SearchWalkersHandler(c *gin.Context) {
	filters := models.SearchFilters{
		LocationQuery: c.Query("city"),
		PetSize:       c.Query("pet_size"),
		MinRating:     queryFloat(c, "min_rating"),
		MaxHourlyRate: queryFloat(c, "max_hourly_rate"),
		MaxDistanceKm: queryFloat(c, "max_distance_km"),
	}
	if services := c.Query("service_types"); services != "" {
		filters.ServiceTypes = strings.Split(services, ",")
	}

	// Both coordinates must parse; a malformed pair means no location rather
	// than a position at (0,0).
	var location *models.Coordinate
	if lat, err := strconv.ParseFloat(c.Query("latitude"), 64); err == nil {
		if lon, err := strconv.ParseFloat(c.Query("longitude"), 64); err == nil {
			location = &models.Coordinate{Latitude: lat, Longitude: lon}
		}
	}

	results, err := h.Discovery.SearchWalkers(filters, location)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetWalkerByIDHandler returns one walker profile.
func (h *WalkerHandler) GetWalkerByIDHandler(c *gin.Context) {
	w, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// GetMyWalkerProfileHandler returns the caller's walker profile.
func (h *WalkerHandler) GetMyWalkerProfileHandler(c *gin.Context) {
	w, err := h.Service.GetMine(middleware.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

type becomeWalkerRequest struct {
	walker.ProfileRequest
	User models.UserInfo `json:"user"`
}

// BecomeWalkerHandler registers the caller as a walker.
func (h *WalkerHandler) BecomeWalkerHandler(c *gin.Context) {
	var req becomeWalkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	w, err := h.Service.BecomeWalker(middleware.CurrentUserID(c), req.User, req.ProfileRequest)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

// UpdateWalkerHandler updates the caller's walker profile.
func (h *WalkerHandler) UpdateWalkerHandler(c *gin.Context) {
	var req walker.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	w, err := h.Service.UpdateProfile(c.Param("id"), middleware.CurrentUserID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

type createReviewRequest struct {
	walker.ReviewRequest
	Reviewer models.UserInfo `json:"reviewer"`
}

// CreateReviewHandler stores a review after a completed booking.
func (h *WalkerHandler) CreateReviewHandler(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	review, err := h.Service.CreateReview(c.Param("id"), middleware.CurrentUserID(c), req.Reviewer, req.ReviewRequest)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// ListReviewsHandler returns the newest reviews for a walker.
func (h *WalkerHandler) ListReviewsHandler(c *gin.Context) {
	limit := 20
	if l, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil && l > 0 {
		limit = l
	}
	reviews, err := h.Service.ListReviews(c.Param("id"), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetServiceCatalogueHandler lists the bookable service types with labels
// and default durations.
func (h *WalkerHandler) GetServiceCatalogueHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"services":  models.ServiceCatalogue,
		"pet_sizes": models.PetSizes,
		"pet_types": models.PetTypes,
	})
}

func queryFloat(c *gin.Context, name string) float64 {
	v, err := strconv.ParseFloat(c.Query(name), 64)
	if err != nil {
		return 0
	}
	return v
}

package handlers

import (
	"net/http"

	"pawmi/models"
	"pawmi/services/adoption"

	"github.com/gin-gonic/gin"
)

// AdoptionHandler exposes the public adoption listing.
type AdoptionHandler struct {
	Service adoption.AdoptionService
}

func NewAdoptionHandler(svc adoption.AdoptionService) *AdoptionHandler {
	return &AdoptionHandler{Service: svc}
}

// ListAdoptionsHandler returns pets available for adoption, optionally
// filtered by species, city or a free-text search.
func (h *AdoptionHandler) ListAdoptionsHandler(c *gin.Context) {
	filters := models.AdoptionFilters{
		Species: c.Query("species"),
		City:    c.Query("city"),
		Search:  c.Query("search"),
	}

	listings, err := h.Service.ListAdoptions(filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"animals": listings,
		"total":   len(listings),
	})
}

package handlers

import (
	"net/http"
	"time"

	petRepo "pawmi/database/repository/pet"
	"pawmi/middleware"
	"pawmi/models"
	"pawmi/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PetHandler exposes pet CRUD for owners.
type PetHandler struct {
	Repo petRepo.PetRepository
}

func NewPetHandler(repo petRepo.PetRepository) *PetHandler {
	return &PetHandler{Repo: repo}
}

type petRequest struct {
	Name        string `json:"name" binding:"required"`
	Species     string `json:"species" binding:"required"`
	Breed       string `json:"breed"`
	Size        string `json:"size"`
	Gender      string `json:"gender"`
	City        string `json:"city"`
	Description string `json:"description"`
	PhotoURL    string `json:"photo_url"`
	Vaccinated  bool   `json:"vaccinated"`
	Sterilized  bool   `json:"sterilized"`

	// Shelter listing fields; ForAdoption publishes the pet on the public
	// adoption listing.
	ForAdoption    bool   `json:"for_adoption"`
	AdoptionStatus string `json:"adoption_status"`
}

func (h *PetHandler) CreatePetHandler(c *gin.Context) {
	var req petRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	now := time.Now()
	pet := &models.Pet{
		ID:        uuid.New().String(),
		OwnerID:   middleware.CurrentUserID(c),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyPetRequest(pet, req)
	if err := h.Repo.Create(pet); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pet)
}

func (h *PetHandler) ListMyPetsHandler(c *gin.Context) {
	pets, err := h.Repo.ListByOwner(middleware.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if pets == nil {
		pets = []models.Pet{}
	}
	c.JSON(http.StatusOK, pets)
}

func (h *PetHandler) UpdatePetHandler(c *gin.Context) {
	pet, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if pet.OwnerID != middleware.CurrentUserID(c) {
		utils.JSONError(c, http.StatusForbidden, "Not the pet owner", "")
		return
	}

	var req petRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	applyPetRequest(pet, req)
	pet.UpdatedAt = time.Now()

	if err := h.Repo.Update(pet); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pet)
}

func applyPetRequest(pet *models.Pet, req petRequest) {
	pet.Name = req.Name
	pet.Species = req.Species
	pet.Breed = req.Breed
	pet.Size = req.Size
	pet.Gender = req.Gender
	pet.City = req.City
	pet.Description = req.Description
	pet.PhotoURL = req.PhotoURL
	pet.Vaccinated = req.Vaccinated
	pet.Sterilized = req.Sterilized
	pet.ForAdoption = req.ForAdoption
	pet.AdoptionStatus = req.AdoptionStatus
}

func (h *PetHandler) DeletePetHandler(c *gin.Context) {
	pet, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if pet.OwnerID != middleware.CurrentUserID(c) {
		utils.JSONError(c, http.StatusForbidden, "Not the pet owner", "")
		return
	}
	if err := h.Repo.Delete(pet.ID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": pet.ID})
}

package adoption

import (
	"strings"

	petRepo "pawmi/database/repository/pet"
	"pawmi/models"
)

// AdoptionStatusAvailable is the listing state a published pet gets when the
// shelter has not set one explicitly.
const AdoptionStatusAvailable = "available"

// AdoptionService serves the public adoption listing.
type AdoptionService interface {
	ListAdoptions(filters models.AdoptionFilters) ([]models.AdoptionListing, error)
}

// DefaultAdoptionService implements AdoptionService over the pet repository.
type DefaultAdoptionService struct {
	Repo petRepo.PetRepository
}

// ListAdoptions loads the adoptable pool and applies the listing filters.
func (s *DefaultAdoptionService) ListAdoptions(filters models.AdoptionFilters) ([]models.AdoptionListing, error) {
	pets, err := s.Repo.ListAdoptable()
	if err != nil {
		return nil, err
	}

	listings := make([]models.AdoptionListing, 0, len(pets))
	for _, p := range pets {
		listings = append(listings, toListing(p))
	}
	return Filter(listings, filters), nil
}

// Filter applies the AND-combined listing predicates. Species and city match
// whole values case-insensitively; search is a substring match over name,
// breed and description. The input slice is never mutated.
func Filter(listings []models.AdoptionListing, filters models.AdoptionFilters) []models.AdoptionListing {
	out := make([]models.AdoptionListing, 0, len(listings))
	for _, l := range listings {
		if matches(l, filters) {
			out = append(out, l)
		}
	}
	return out
}

func matches(l models.AdoptionListing, filters models.AdoptionFilters) bool {
	if s := strings.TrimSpace(filters.Species); s != "" {
		if !strings.EqualFold(l.Species, s) {
			return false
		}
	}
	if c := strings.TrimSpace(filters.City); c != "" {
		if !strings.EqualFold(l.City, c) {
			return false
		}
	}
	if q := strings.TrimSpace(filters.Search); q != "" {
		q = strings.ToLower(q)
		if !strings.Contains(strings.ToLower(l.Name), q) &&
			!strings.Contains(strings.ToLower(l.Breed), q) &&
			!strings.Contains(strings.ToLower(l.Description), q) {
			return false
		}
	}
	return true
}

func toListing(p models.Pet) models.AdoptionListing {
	status := p.AdoptionStatus
	if status == "" {
		status = AdoptionStatusAvailable
	}
	return models.AdoptionListing{
		ID:             p.ID,
		Name:           p.Name,
		Species:        p.Species,
		Breed:          p.Breed,
		Size:           p.Size,
		Gender:         p.Gender,
		City:           p.City,
		Description:    p.Description,
		PhotoURL:       p.PhotoURL,
		Vaccinated:     p.Vaccinated,
		Sterilized:     p.Sterilized,
		AdoptionStatus: status,
	}
}

package models

// AdoptionListing is the public view of a pet available for adoption.
type AdoptionListing struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Species        string `json:"species"`
	Breed          string `json:"breed,omitempty"`
	Size           string `json:"size,omitempty"`
	Gender         string `json:"gender,omitempty"`
	City           string `json:"city,omitempty"`
	Description    string `json:"description,omitempty"`
	PhotoURL       string `json:"photo_url,omitempty"`
	Vaccinated     bool   `json:"vaccinated"`
	Sterilized     bool   `json:"sterilized"`
	AdoptionStatus string `json:"adoption_status"`
}

// AdoptionFilters narrows the public adoption listing. Species and city match
// whole values case-insensitively; Search is a free-text substring match over
// name, breed and description. Empty fields deactivate their filter.
type AdoptionFilters struct {
	Species string `json:"species"`
	City    string `json:"city"`
	Search  string `json:"search"`
}

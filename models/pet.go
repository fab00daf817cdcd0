package models

import "time"

// Pet is a pet registered by an owner. Bookings always reference one pet,
// which must belong to the requesting user. Shelters flag pets for adoption,
// which publishes them on the public adoption listing.
type Pet struct {
	ID      string `bson:"id" json:"id"`
	OwnerID string `bson:"ownerId" json:"owner_id"`
	Name    string `bson:"name" json:"name"`
	Species string `bson:"species" json:"species"`
	Breed   string `bson:"breed,omitempty" json:"breed,omitempty"`
	Size    string `bson:"size,omitempty" json:"size,omitempty"` // small, medium, large, giant
	Gender  string `bson:"gender,omitempty" json:"gender,omitempty"`

	City        string `bson:"city,omitempty" json:"city,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	PhotoURL    string `bson:"photoUrl,omitempty" json:"photo_url,omitempty"`
	Vaccinated  bool   `bson:"vaccinated" json:"vaccinated"`
	Sterilized  bool   `bson:"sterilized" json:"sterilized"`

	ForAdoption    bool   `bson:"forAdoption" json:"for_adoption"`
	AdoptionStatus string `bson:"adoptionStatus,omitempty" json:"adoption_status,omitempty"` // available, pending, adopted

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

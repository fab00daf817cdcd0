package models

// Coordinate is a requester position for distance-aware search.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SearchFilters holds the walker discovery predicates. Zero values deactivate
// a filter except MaxHourlyRate, which is always applied.
type SearchFilters struct {
	// Free-text match against city or neighborhood, case-insensitive.
	LocationQuery string `json:"location_query"`
	// Walker must offer at least one of these. Empty means no constraint.
	ServiceTypes []string `json:"service_types"`
	// Single requested pet size; empty means no constraint.
	PetSize string `json:"pet_size"`
	// Minimum rating; walkers without reviews count as 0.
	MinRating float64 `json:"min_rating"`
	// Price ceiling, always active.
	MaxHourlyRate float64 `json:"max_hourly_rate"`
	// Distance ceiling in km, applied only when a requester location is given.
	MaxDistanceKm float64 `json:"max_distance_km"`
}

// WalkerResult is a walker annotated with the computed distance from the
// requester. DistanceKm is nil when either side lacks coordinates.
type WalkerResult struct {
	Walker
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

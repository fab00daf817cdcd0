package discovery

import (
	"math"
	"sort"
	"strings"

	"pawmi/models"
)

// unknownDistance sorts walkers without coordinates behind every walker with
// a computed distance.
const unknownDistance = 999999.0

// Search filters a walker pool and orders the result. All active predicates
// are AND-combined. With a requester location the result is ordered by
// ascending haversine distance; without one, by descending rating. Both sorts
// are stable, so input order breaks ties. The input slice is never mutated.
//
// A walker without coordinates is never excluded by the distance filter and
// carries no distance annotation.
func Search(walkers []models.Walker, filters models.SearchFilters, location *models.Coordinate) []models.WalkerResult {
	results := make([]models.WalkerResult, 0, len(walkers))

	for _, w := range walkers {
		res := models.WalkerResult{Walker: w}
		if location != nil {
			if lat, lon, ok := w.Coordinates(); ok {
				d := haversine(location.Latitude, location.Longitude, lat, lon)
				res.DistanceKm = &d
			}
		}
		if matches(res, filters, location != nil) {
			results = append(results, res)
		}
	}

	if location != nil {
		sort.SliceStable(results, func(i, j int) bool {
			return distanceOrUnknown(results[i]) < distanceOrUnknown(results[j])
		})
	} else {
		sort.SliceStable(results, func(i, j int) bool {
			return ratingOrZero(results[i].Walker) > ratingOrZero(results[j].Walker)
		})
	}
	return results
}

func matches(res models.WalkerResult, filters models.SearchFilters, located bool) bool {
	w := res.Walker

	if q := strings.TrimSpace(filters.LocationQuery); q != "" {
		q = strings.ToLower(q)
		city := strings.ToLower(w.City)
		hood := strings.ToLower(w.Neighborhood)
		if !strings.Contains(city, q) && !strings.Contains(hood, q) {
			return false
		}
	}

	if len(filters.ServiceTypes) > 0 && !offersAny(w.Services, filters.ServiceTypes) {
		return false
	}

	if filters.PetSize != "" && !contains(w.AcceptedPetSizes, filters.PetSize) {
		return false
	}

	if ratingOrZero(w) < filters.MinRating {
		return false
	}

	// The price ceiling is always active.
	if w.HourlyRate > filters.MaxHourlyRate {
		return false
	}

	// Walkers with no computed distance pass through.
	if located && filters.MaxDistanceKm > 0 && res.DistanceKm != nil && *res.DistanceKm > filters.MaxDistanceKm {
		return false
	}

	return true
}

func offersAny(offered, wanted []string) bool {
	for _, want := range wanted {
		if contains(offered, want) {
			return true
		}
	}
	return false
}

func contains(values []string, v string) bool {
	for _, val := range values {
		if val == v {
			return true
		}
	}
	return false
}

func ratingOrZero(w models.Walker) float64 {
	if w.RatingAverage == nil {
		return 0
	}
	return *w.RatingAverage
}

func distanceOrUnknown(res models.WalkerResult) float64 {
	if res.DistanceKm == nil {
		return unknownDistance
	}
	return *res.DistanceKm
}

// haversine returns the great-circle distance in km between two coordinates.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)
	lat1Rad := lat1 * (math.Pi / 180)
	lat2Rad := lat2 * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}

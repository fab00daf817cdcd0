package booking

import (
	"time"

	"pawmi/models"
)

// AggregateStats folds a booking list into the dashboard counters. The fold
// is order-independent: shuffling the input yields identical output. The
// rating average lives on the walker profile, so it is passed through rather
// than derived from bookings.
func AggregateStats(bookings []models.Booking, ratingAverage float64) models.BookingStats {
	return aggregateStatsAt(bookings, ratingAverage, time.Now())
}

func aggregateStatsAt(bookings []models.Booking, ratingAverage float64, now time.Time) models.BookingStats {
	stats := models.BookingStats{
		TotalBookings: len(bookings),
		AverageRating: ratingAverage,
	}

	for _, b := range bookings {
		switch b.Status {
		case models.BookingPending:
			stats.PendingCount++
		case models.BookingConfirmed, models.BookingInProgress:
			if !b.ScheduledDate.Before(now) {
				stats.UpcomingCount++
			}
		case models.BookingCompleted:
			stats.CompletedCount++
			stats.TotalEarnings += b.TotalPrice
		}
	}
	return stats
}

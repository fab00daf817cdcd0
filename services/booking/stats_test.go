package booking

import (
	"math/rand"
	"testing"
	"time"

	"pawmi/models"

	"github.com/stretchr/testify/assert"
)

func statsFixture(now time.Time) []models.Booking {
	return []models.Booking{
		{Status: models.BookingPending, ScheduledDate: now.Add(24 * time.Hour), TotalPrice: 30000},
		{Status: models.BookingPending, ScheduledDate: now.Add(48 * time.Hour), TotalPrice: 25000},
		{Status: models.BookingConfirmed, ScheduledDate: now.Add(2 * time.Hour), TotalPrice: 50000},
		{Status: models.BookingConfirmed, ScheduledDate: now.Add(-2 * time.Hour), TotalPrice: 50000},
		{Status: models.BookingInProgress, ScheduledDate: now, TotalPrice: 40000},
		{Status: models.BookingCompleted, ScheduledDate: now.Add(-72 * time.Hour), TotalPrice: 50000},
		{Status: models.BookingCompleted, ScheduledDate: now.Add(-24 * time.Hour), TotalPrice: 80000},
		{Status: models.BookingCancelled, ScheduledDate: now.Add(12 * time.Hour), TotalPrice: 60000},
	}
}

func TestAggregateStatsCounters(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	stats := aggregateStatsAt(statsFixture(now), 4.8, now)

	assert.Equal(t, 8, stats.TotalBookings)
	assert.Equal(t, 2, stats.PendingCount)
	// Past-dated confirmed bookings are not upcoming; a walk starting right
	// now still is.
	assert.Equal(t, 2, stats.UpcomingCount)
	assert.Equal(t, 2, stats.CompletedCount)
	// Cancelled bookings never contribute to earnings.
	assert.Equal(t, 130000.0, stats.TotalEarnings)
	assert.Equal(t, 4.8, stats.AverageRating)
}

func TestAggregateStatsEmpty(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	stats := aggregateStatsAt(nil, 0, now)

	assert.Equal(t, models.BookingStats{}, stats)
}

func TestAggregateStatsOrderIndependent(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	bookings := statsFixture(now)
	want := aggregateStatsAt(bookings, 4.8, now)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		rng.Shuffle(len(bookings), func(a, b int) {
			bookings[a], bookings[b] = bookings[b], bookings[a]
		})
		assert.Equal(t, want, aggregateStatsAt(bookings, 4.8, now))
	}
}

package booking

import (
	"testing"
	"time"

	"pawmi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWalker() *models.Walker {
	return &models.Walker{
		ID:         "walker-1",
		UserID:     "user-walker",
		User:       models.UserInfo{FullName: "Laura Gomez"},
		HourlyRate: 25000,
		Services:   []string{"walking", "daycare"},
	}
}

func testPet() *models.Pet {
	return &models.Pet{
		ID:      "pet-1",
		OwnerID: "user-owner",
		Name:    "Rocky",
		Species: "dog",
		Size:    "medium",
	}
}

func TestNewBookingPricing(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	scheduled := now.Add(48 * time.Hour)

	b, err := newBookingAt(testWalker(), testPet(), "walking", scheduled, 2, "ring the bell", now)
	require.NoError(t, err)

	assert.Equal(t, models.BookingPending, b.Status)
	assert.Equal(t, 2, b.DurationHours)
	assert.Equal(t, 50000.0, b.TotalPrice)
	assert.Equal(t, "walker-1", b.WalkerID)
	assert.Equal(t, "user-owner", b.PetOwnerID)
	assert.Equal(t, "Laura Gomez", b.WalkerName)
	assert.Equal(t, "Rocky", b.PetName)
	assert.NotEmpty(t, b.ID)
}

func TestNewBookingDefaultsDurationFromCatalogue(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	scheduled := now.Add(24 * time.Hour)

	b, err := newBookingAt(testWalker(), testPet(), "daycare", scheduled, 0, "", now)
	require.NoError(t, err)

	assert.Equal(t, 8, b.DurationHours)
	assert.Equal(t, 200000.0, b.TotalPrice)
}

func TestNewBookingRejectsUnofferedService(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	_, err := newBookingAt(testWalker(), testPet(), "grooming", now.Add(time.Hour), 2, "", now)
	require.Error(t, err)

	var vErr ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "service_type", vErr.Field)
}

func TestNewBookingRejectsPastDate(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for _, scheduled := range []time.Time{now, now.Add(-time.Hour)} {
		_, err := newBookingAt(testWalker(), testPet(), "walking", scheduled, 1, "", now)
		var vErr ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "scheduled_date", vErr.Field)
	}
}

func TestNewBookingRejectsNegativeDuration(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	_, err := newBookingAt(testWalker(), testPet(), "walking", now.Add(time.Hour), -3, "", now)
	var vErr ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "duration_hours", vErr.Field)
}

func TestTransitionAllowedPaths(t *testing.T) {
	cases := []struct {
		actor  models.ActorRole
		from   models.BookingStatus
		target models.BookingStatus
	}{
		{models.RoleWalker, models.BookingPending, models.BookingConfirmed},
		{models.RoleWalker, models.BookingPending, models.BookingCancelled},
		{models.RoleWalker, models.BookingConfirmed, models.BookingInProgress},
		{models.RoleWalker, models.BookingInProgress, models.BookingCompleted},
		{models.RoleOwner, models.BookingPending, models.BookingCancelled},
		{models.RoleOwner, models.BookingConfirmed, models.BookingCancelled},
	}

	for _, tc := range cases {
		b := models.Booking{ID: "b1", Status: tc.from}
		updated, err := Transition(b, tc.actor, tc.target)
		require.NoErrorf(t, err, "%s: %s -> %s", tc.actor, tc.from, tc.target)
		assert.Equal(t, tc.target, updated.Status)
	}
}

func TestTransitionRejectsUnauthorizedMoves(t *testing.T) {
	cases := []struct {
		actor  models.ActorRole
		from   models.BookingStatus
		target models.BookingStatus
	}{
		// The owner never moves a booking forward.
		{models.RoleOwner, models.BookingPending, models.BookingConfirmed},
		{models.RoleOwner, models.BookingConfirmed, models.BookingInProgress},
		{models.RoleOwner, models.BookingInProgress, models.BookingCompleted},
		// Neither side cancels an in-progress walk.
		{models.RoleOwner, models.BookingInProgress, models.BookingCancelled},
		{models.RoleWalker, models.BookingInProgress, models.BookingCancelled},
		// No skipping states.
		{models.RoleWalker, models.BookingPending, models.BookingInProgress},
		{models.RoleWalker, models.BookingPending, models.BookingCompleted},
		{models.RoleWalker, models.BookingConfirmed, models.BookingCompleted},
	}

	for _, tc := range cases {
		b := models.Booking{ID: "b1", Status: tc.from}
		_, err := Transition(b, tc.actor, tc.target)

		var tErr InvalidTransitionError
		require.ErrorAsf(t, err, &tErr, "%s: %s -> %s", tc.actor, tc.from, tc.target)
		assert.Equal(t, tc.from, tErr.From)
		assert.Equal(t, tc.target, tErr.To)
	}
}

func TestTransitionTerminalStatesAreFinal(t *testing.T) {
	for _, status := range []models.BookingStatus{models.BookingCompleted, models.BookingCancelled} {
		for _, actor := range []models.ActorRole{models.RoleOwner, models.RoleWalker} {
			b := models.Booking{ID: "b1", Status: status}
			_, err := Transition(b, actor, models.BookingPending)

			var termErr TerminalStateError
			require.ErrorAsf(t, err, &termErr, "%s from %s", actor, status)
			assert.Equal(t, status, termErr.Status)
		}
	}
}

func TestTransitionDoesNotMutateInput(t *testing.T) {
	b := models.Booking{ID: "b1", Status: models.BookingPending}
	updated, err := Transition(b, models.RoleWalker, models.BookingConfirmed)
	require.NoError(t, err)

	assert.Equal(t, models.BookingPending, b.Status)
	assert.Equal(t, models.BookingConfirmed, updated.Status)
}

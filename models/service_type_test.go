package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultServiceDuration(t *testing.T) {
	cases := map[string]int{
		"walking":   1,
		"daycare":   8,
		"overnight": 24,
		"training":  2,
		"grooming":  2,
	}
	for service, hours := range cases {
		got, ok := DefaultServiceDuration(service)
		assert.True(t, ok, service)
		assert.Equal(t, hours, got, service)
	}

	_, ok := DefaultServiceDuration("taxidermy")
	assert.False(t, ok)
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.True(t, BookingCompleted.Terminal())
	assert.True(t, BookingCancelled.Terminal())
	assert.False(t, BookingPending.Terminal())
	assert.False(t, BookingConfirmed.Terminal())
	assert.False(t, BookingInProgress.Terminal())
}

func TestStatusLabelsCoverEveryStatus(t *testing.T) {
	for _, s := range []BookingStatus{BookingPending, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled} {
		label, ok := StatusLabels[s]
		assert.True(t, ok, s)
		assert.NotEmpty(t, label.Label)
		assert.NotEmpty(t, label.Color)
	}
}

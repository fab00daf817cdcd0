package booking

import (
	"fmt"
	"testing"
	"time"

	"pawmi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s not found", id)
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) UpdateStatus(id string, status models.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) ListByWalker(walkerID string, status models.BookingStatus) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.WalkerID == walkerID && (status == "" || b.Status == status) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByOwner(ownerID string, status models.BookingStatus) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.PetOwnerID == ownerID && (status == "" || b.Status == status) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) HasCompletedBooking(walkerID, ownerID string) (bool, error) {
	for _, b := range r.bookings {
		if b.WalkerID == walkerID && b.PetOwnerID == ownerID && b.Status == models.BookingCompleted {
			return true, nil
		}
	}
	return false, nil
}

type fakeWalkerRepo struct {
	walkers    map[string]*models.Walker
	walkCounts map[string]int
}

func newFakeWalkerRepo(walkers ...*models.Walker) *fakeWalkerRepo {
	r := &fakeWalkerRepo{
		walkers:    make(map[string]*models.Walker),
		walkCounts: make(map[string]int),
	}
	for _, w := range walkers {
		r.walkers[w.ID] = w
	}
	return r
}

func (r *fakeWalkerRepo) Create(w *models.Walker) error { r.walkers[w.ID] = w; return nil }
func (r *fakeWalkerRepo) Update(w *models.Walker) error { r.walkers[w.ID] = w; return nil }

func (r *fakeWalkerRepo) GetByID(id string) (*models.Walker, error) {
	w, ok := r.walkers[id]
	if !ok {
		return nil, fmt.Errorf("walker %s not found", id)
	}
	return w, nil
}

func (r *fakeWalkerRepo) GetByUserID(userID string) (*models.Walker, error) {
	for _, w := range r.walkers {
		if w.UserID == userID {
			return w, nil
		}
	}
	return nil, fmt.Errorf("no walker for user %s", userID)
}

func (r *fakeWalkerRepo) ListActive() ([]models.Walker, error) {
	var out []models.Walker
	for _, w := range r.walkers {
		if w.IsActive {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *fakeWalkerRepo) IncrementTotalWalks(id string) error {
	r.walkCounts[id]++
	return nil
}

func (r *fakeWalkerRepo) SetRating(id string, average float64, totalReviews int) error { return nil }
func (r *fakeWalkerRepo) CreateReview(review *models.WalkerReview) error               { return nil }
func (r *fakeWalkerRepo) ListReviews(walkerID string, limit int) ([]models.WalkerReview, error) {
	return nil, nil
}

type fakePetRepo struct {
	pets map[string]*models.Pet
}

func newFakePetRepo(pets ...*models.Pet) *fakePetRepo {
	r := &fakePetRepo{pets: make(map[string]*models.Pet)}
	for _, p := range pets {
		r.pets[p.ID] = p
	}
	return r
}

func (r *fakePetRepo) Create(p *models.Pet) error { r.pets[p.ID] = p; return nil }
func (r *fakePetRepo) Update(p *models.Pet) error { r.pets[p.ID] = p; return nil }
func (r *fakePetRepo) Delete(id string) error     { delete(r.pets, id); return nil }

func (r *fakePetRepo) GetByID(id string) (*models.Pet, error) {
	p, ok := r.pets[id]
	if !ok {
		return nil, fmt.Errorf("pet %s not found", id)
	}
	return p, nil
}

func (r *fakePetRepo) ListAdoptable() ([]models.Pet, error) {
	var out []models.Pet
	for _, p := range r.pets {
		if p.ForAdoption {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePetRepo) ListByOwner(ownerID string) ([]models.Pet, error) {
	var out []models.Pet
	for _, p := range r.pets {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func newTestService() (*DefaultBookingService, *fakeWalkerRepo) {
	walker := testWalker()
	walker.IsActive = true
	walkerRepo := newFakeWalkerRepo(walker)
	return &DefaultBookingService{
		Repo:       newFakeBookingRepo(),
		WalkerRepo: walkerRepo,
		PetRepo:    newFakePetRepo(testPet()),
	}, walkerRepo
}

func TestCreateBookingPersistsPending(t *testing.T) {
	svc, _ := newTestService()

	bk, err := svc.CreateBooking("user-owner", CreateBookingRequest{
		WalkerID:      "walker-1",
		PetID:         "pet-1",
		ServiceType:   "walking",
		ScheduledDate: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, bk.Status)
	assert.Equal(t, 1, bk.DurationHours)
	assert.Equal(t, 25000.0, bk.TotalPrice)

	stored, err := svc.Repo.GetByID(bk.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, stored.Status)
}

func TestCreateBookingRejectsForeignPet(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateBooking("some-other-user", CreateBookingRequest{
		WalkerID:      "walker-1",
		PetID:         "pet-1",
		ServiceType:   "walking",
		ScheduledDate: time.Now().Add(24 * time.Hour),
	})

	var pErr PermissionError
	require.ErrorAs(t, err, &pErr)
}

func TestCreateBookingRejectsInactiveWalker(t *testing.T) {
	svc, walkerRepo := newTestService()
	walkerRepo.walkers["walker-1"].IsActive = false

	_, err := svc.CreateBooking("user-owner", CreateBookingRequest{
		WalkerID:      "walker-1",
		PetID:         "pet-1",
		ServiceType:   "walking",
		ScheduledDate: time.Now().Add(24 * time.Hour),
	})

	var vErr ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "walker_id", vErr.Field)
}

func TestUpdateStatusResolvesActorRoles(t *testing.T) {
	svc, _ := newTestService()
	bk, err := svc.CreateBooking("user-owner", CreateBookingRequest{
		WalkerID:      "walker-1",
		PetID:         "pet-1",
		ServiceType:   "walking",
		ScheduledDate: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	// The owner cannot confirm their own request.
	_, err = svc.UpdateStatus(bk.ID, "user-owner", models.BookingConfirmed)
	var tErr InvalidTransitionError
	require.ErrorAs(t, err, &tErr)

	// The walker can.
	updated, err := svc.UpdateStatus(bk.ID, "user-walker", models.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, updated.Status)

	// A stranger is rejected outright.
	_, err = svc.UpdateStatus(bk.ID, "user-stranger", models.BookingInProgress)
	var pErr PermissionError
	require.ErrorAs(t, err, &pErr)
}

func TestCompletionBumpsWalkCounter(t *testing.T) {
	svc, walkerRepo := newTestService()
	bk, err := svc.CreateBooking("user-owner", CreateBookingRequest{
		WalkerID:      "walker-1",
		PetID:         "pet-1",
		ServiceType:   "walking",
		ScheduledDate: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	for _, target := range []models.BookingStatus{models.BookingConfirmed, models.BookingInProgress, models.BookingCompleted} {
		_, err = svc.UpdateStatus(bk.ID, "user-walker", target)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, walkerRepo.walkCounts["walker-1"])

	// Completed is terminal; no further moves.
	_, err = svc.UpdateStatus(bk.ID, "user-walker", models.BookingCancelled)
	var termErr TerminalStateError
	require.ErrorAs(t, err, &termErr)
}

func TestWalkerStatsUsesProfileRating(t *testing.T) {
	svc, walkerRepo := newTestService()
	rating := 4.8
	walkerRepo.walkers["walker-1"].RatingAverage = &rating

	bk, err := svc.CreateBooking("user-owner", CreateBookingRequest{
		WalkerID:      "walker-1",
		PetID:         "pet-1",
		ServiceType:   "walking",
		ScheduledDate: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	for _, target := range []models.BookingStatus{models.BookingConfirmed, models.BookingInProgress, models.BookingCompleted} {
		_, err = svc.UpdateStatus(bk.ID, "user-walker", target)
		require.NoError(t, err)
	}

	stats, err := svc.WalkerStats("user-walker")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalBookings)
	assert.Equal(t, 1, stats.CompletedCount)
	assert.Equal(t, 25000.0, stats.TotalEarnings)
	assert.Equal(t, 4.8, stats.AverageRating)
}

package walker

import (
	"fmt"
	"testing"

	"pawmi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memWalkerRepo struct {
	walkers map[string]*models.Walker
	reviews []models.WalkerReview
}

func newMemWalkerRepo() *memWalkerRepo {
	return &memWalkerRepo{walkers: make(map[string]*models.Walker)}
}

func (r *memWalkerRepo) Create(w *models.Walker) error { r.walkers[w.ID] = w; return nil }
func (r *memWalkerRepo) Update(w *models.Walker) error { r.walkers[w.ID] = w; return nil }

func (r *memWalkerRepo) GetByID(id string) (*models.Walker, error) {
	w, ok := r.walkers[id]
	if !ok {
		return nil, fmt.Errorf("walker %s not found", id)
	}
	return w, nil
}

func (r *memWalkerRepo) GetByUserID(userID string) (*models.Walker, error) {
	for _, w := range r.walkers {
		if w.UserID == userID {
			return w, nil
		}
	}
	return nil, fmt.Errorf("no walker for user %s", userID)
}

func (r *memWalkerRepo) ListActive() ([]models.Walker, error) { return nil, nil }

func (r *memWalkerRepo) IncrementTotalWalks(id string) error { return nil }

func (r *memWalkerRepo) SetRating(id string, average float64, totalReviews int) error {
	w, ok := r.walkers[id]
	if !ok {
		return fmt.Errorf("walker %s not found", id)
	}
	w.RatingAverage = &average
	w.TotalReviews = totalReviews
	return nil
}

func (r *memWalkerRepo) CreateReview(review *models.WalkerReview) error {
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *memWalkerRepo) ListReviews(walkerID string, limit int) ([]models.WalkerReview, error) {
	var out []models.WalkerReview
	for _, rev := range r.reviews {
		if rev.WalkerID == walkerID {
			out = append(out, rev)
		}
	}
	return out, nil
}

type memBookingRepo struct {
	completed map[string]bool // walkerID|ownerID
}

func (r *memBookingRepo) Create(b *models.Booking) error                       { return nil }
func (r *memBookingRepo) GetByID(id string) (*models.Booking, error)           { return nil, nil }
func (r *memBookingRepo) UpdateStatus(id string, s models.BookingStatus) error { return nil }
func (r *memBookingRepo) ListByWalker(w string, s models.BookingStatus) ([]models.Booking, error) {
	return nil, nil
}
func (r *memBookingRepo) ListByOwner(o string, s models.BookingStatus) ([]models.Booking, error) {
	return nil, nil
}
func (r *memBookingRepo) HasCompletedBooking(walkerID, ownerID string) (bool, error) {
	return r.completed[walkerID+"|"+ownerID], nil
}

func profileRequest() ProfileRequest {
	return ProfileRequest{
		HourlyRate:       30000,
		Services:         []string{"walking"},
		City:             "Bogotá",
		AcceptedPetSizes: []string{"small", "medium"},
	}
}

func TestBecomeWalkerOnce(t *testing.T) {
	svc := &DefaultWalkerService{
		Repo:        newMemWalkerRepo(),
		BookingRepo: &memBookingRepo{},
	}

	w, err := svc.BecomeWalker("user-1", models.UserInfo{FullName: "Ana"}, profileRequest())
	require.NoError(t, err)
	assert.True(t, w.IsActive)
	assert.Equal(t, 3, w.MaxPetsPerWalk)
	assert.Equal(t, "Ana", w.User.FullName)

	_, err = svc.BecomeWalker("user-1", models.UserInfo{}, profileRequest())
	var regErr AlreadyRegisteredError
	require.ErrorAs(t, err, &regErr)
}

func TestUpdateProfileOwnerGated(t *testing.T) {
	svc := &DefaultWalkerService{
		Repo:        newMemWalkerRepo(),
		BookingRepo: &memBookingRepo{},
	}
	w, err := svc.BecomeWalker("user-1", models.UserInfo{}, profileRequest())
	require.NoError(t, err)

	req := profileRequest()
	req.HourlyRate = 35000
	updated, err := svc.UpdateProfile(w.ID, "user-1", req)
	require.NoError(t, err)
	assert.Equal(t, 35000.0, updated.HourlyRate)

	_, err = svc.UpdateProfile(w.ID, "user-2", req)
	var ownErr NotProfileOwnerError
	require.ErrorAs(t, err, &ownErr)
}

func TestCreateReviewRequiresCompletedBooking(t *testing.T) {
	bookings := &memBookingRepo{completed: map[string]bool{}}
	svc := &DefaultWalkerService{
		Repo:        newMemWalkerRepo(),
		BookingRepo: bookings,
	}
	w, err := svc.BecomeWalker("user-walker", models.UserInfo{}, profileRequest())
	require.NoError(t, err)

	req := ReviewRequest{Rating: 5, ServiceType: "walking"}

	_, err = svc.CreateReview(w.ID, "user-owner", models.UserInfo{}, req)
	var revErr ReviewNotAllowedError
	require.ErrorAs(t, err, &revErr)

	bookings.completed[w.ID+"|user-owner"] = true
	review, err := svc.CreateReview(w.ID, "user-owner", models.UserInfo{FullName: "Ana"}, req)
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)

	stored, err := svc.GetByID(w.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.RatingAverage)
	assert.Equal(t, 5.0, *stored.RatingAverage)
	assert.Equal(t, 1, stored.TotalReviews)
}

func TestCreateReviewRejectsSelfReview(t *testing.T) {
	bookings := &memBookingRepo{completed: map[string]bool{}}
	svc := &DefaultWalkerService{
		Repo:        newMemWalkerRepo(),
		BookingRepo: bookings,
	}
	w, err := svc.BecomeWalker("user-walker", models.UserInfo{}, profileRequest())
	require.NoError(t, err)
	bookings.completed[w.ID+"|user-walker"] = true

	_, err = svc.CreateReview(w.ID, "user-walker", models.UserInfo{}, ReviewRequest{Rating: 5, ServiceType: "walking"})
	var revErr ReviewNotAllowedError
	require.ErrorAs(t, err, &revErr)
	assert.Contains(t, revErr.Reason, "own profile")
}

package trip

import (
	"context"
	"errors"
	"testing"

	"tripplanner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	states map[string]*models.SessionState
}

func newFakeStore() *fakeStore {
	return &fakeStore{states: map[string]*models.SessionState{}}
}

func (f *fakeStore) Update(ctx context.Context, sessionID string, fn func(*models.SessionState) error) error {
	st, ok := f.states[sessionID]
	if !ok {
		return errors.New("session not found")
	}
	return fn(st)
}

type fakeArchive struct {
	saved    []*models.BookingRecord
	statuses map[string]string
	saveErr  error
}

func newFakeArchive() *fakeArchive {
	return &fakeArchive{statuses: map[string]string{}}
}

func (f *fakeArchive) Save(rec *models.BookingRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, rec)
	return nil
}

func (f *fakeArchive) UpdateStatus(bookingID, status string) error {
	f.statuses[bookingID] = status
	return nil
}

type fakeNotifier struct {
	queued []models.BookingEmail
	err    error
}

func (f *fakeNotifier) Queue(ctx context.Context, email models.BookingEmail) error {
	if f.err != nil {
		return f.err
	}
	f.queued = append(f.queued, email)
	return nil
}

func newTestService() (*DefaultTripService, *fakeStore, *fakeArchive, *fakeNotifier) {
	store := newFakeStore()
	archive := newFakeArchive()
	notifier := &fakeNotifier{}
	return NewDefaultTripService(store, archive, notifier), store, archive, notifier
}

func TestBookTravelService(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path archives and queues the email", func(t *testing.T) {
		svc, store, archive, notifier := newTestService()
		store.states["s1"] = &models.SessionState{
			UserID: "u1", UserName: "Asha", UserEmail: "asha@example.com",
			Travel: models.TravelDraft{From: "Delhi", To: "Jaipur", Date: "2025-07-25", Mode: models.ModeTrain, Price: 2500},
		}

		res, err := svc.BookTravel(ctx, "s1")
		require.NoError(t, err)

		assert.Equal(t, StatusSuccess, res.Status)
		assert.Equal(t, NotificationQueued, res.NotificationStatus)
		require.NotNil(t, res.Travel)

		require.Len(t, archive.saved, 1)
		rec := archive.saved[0]
		assert.Equal(t, "travel", rec.BookingType)
		assert.Equal(t, "u1", rec.UserID)
		assert.Equal(t, "s1", rec.SessionID)
		assert.Equal(t, models.BookingStatusConfirmed, rec.Status)

		require.Len(t, notifier.queued, 1)
		assert.Equal(t, "asha@example.com", notifier.queued[0].To)
		assert.Equal(t, res.Travel.TicketID, notifier.queued[0].BookingID)
	})

	t.Run("incomplete draft does not book", func(t *testing.T) {
		svc, store, archive, _ := newTestService()
		store.states["s1"] = &models.SessionState{
			Travel: models.TravelDraft{From: "Delhi"},
		}

		res, err := svc.BookTravel(ctx, "s1")
		require.NoError(t, err)

		assert.Equal(t, StatusMissingData, res.Status)
		assert.Nil(t, store.states["s1"].TripPlan.Travel)
		assert.Empty(t, archive.saved)
	})

	t.Run("enqueue failure does not roll back the booking", func(t *testing.T) {
		svc, store, _, notifier := newTestService()
		notifier.err = errors.New("queue down")
		store.states["s1"] = &models.SessionState{
			UserEmail: "asha@example.com",
			Travel:    models.TravelDraft{From: "Delhi", To: "Jaipur", Date: "2025-07-25", Mode: models.ModeTrain},
		}

		res, err := svc.BookTravel(ctx, "s1")
		require.NoError(t, err)

		assert.Equal(t, StatusSuccess, res.Status)
		assert.Equal(t, NotificationFailed, res.NotificationStatus)
		assert.NotNil(t, store.states["s1"].TripPlan.Travel)
	})

	t.Run("missing recipient skips the notification", func(t *testing.T) {
		svc, store, _, notifier := newTestService()
		store.states["s1"] = &models.SessionState{
			Travel: models.TravelDraft{From: "Delhi", To: "Jaipur", Date: "2025-07-25", Mode: models.ModeTrain},
		}

		res, err := svc.BookTravel(ctx, "s1")
		require.NoError(t, err)

		assert.Equal(t, NotificationSkipped, res.NotificationStatus)
		assert.Empty(t, notifier.queued)
	})
}

func TestCancelTravelService(t *testing.T) {
	ctx := context.Background()

	t.Run("cancellation marks the archive and reports the refund", func(t *testing.T) {
		svc, store, archive, notifier := newTestService()
		state := &models.SessionState{UserEmail: "asha@example.com"}
		state.TripPlan.Travel = &models.TravelBooking{
			Mode: models.ModeTrain, Price: 2500, TicketID: "PNR-ABC123",
		}
		store.states["s1"] = state

		res, err := svc.CancelTravel(ctx, "s1")
		require.NoError(t, err)

		assert.Equal(t, StatusSuccess, res.Status)
		assert.Equal(t, 2500, res.Refund)
		assert.Equal(t, models.BookingStatusCancelled, archive.statuses["PNR-ABC123"])
		require.Len(t, notifier.queued, 1)
		assert.Equal(t, "travel cancellation", notifier.queued[0].BookingType)
	})

	t.Run("nothing to cancel", func(t *testing.T) {
		svc, store, _, _ := newTestService()
		store.states["s1"] = &models.SessionState{}

		res, err := svc.CancelTravel(ctx, "s1")
		require.NoError(t, err)

		assert.Equal(t, StatusNotFound, res.Status)
		assert.Empty(t, store.states["s1"].CancelledBookings)
	})

	t.Run("unknown session surfaces the store error", func(t *testing.T) {
		svc, _, _, _ := newTestService()
		_, err := svc.CancelTravel(ctx, "missing")
		assert.Error(t, err)
	})
}

func TestServiceViews(t *testing.T) {
	ctx := context.Background()
	svc, store, _, _ := newTestService()

	state := &models.SessionState{Budget: 10000}
	state.TripPlan.Travel = &models.TravelBooking{
		From: "Delhi", To: "Manali", Date: "2025-07-12", Mode: models.ModeBus,
		Price: 5000, TicketID: "TKT-AAAAAAAA",
	}
	state.TripPlan.Accommodation = &models.AccommodationBooking{
		Location: "Manali", CheckIn: "2025-07-10", CheckOut: "2025-07-18",
		Nights: 8, TotalPrice: 7000, BookingID: "HTL-MAN-20250710-AAAAAAAA",
	}
	store.states["s1"] = state

	report, err := svc.Conflicts(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, report.Conflict)
	assert.Len(t, report.Reasons, 2)

	bill, err := svc.Bill(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 12000, bill.Total)

	bookings, err := svc.ActiveBookings(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, bookings.Bookings, 2)
	assert.Equal(t, 12000, bookings.TotalCost)
}

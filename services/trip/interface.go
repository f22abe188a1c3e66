// File: services/trip/interface.go
package trip

import (
	"context"

	"tripplanner/models"
)

// SessionStore is the slice of session management the trip tools need: a
// serialized read-modify-write of one session's state. Implementations must
// guarantee that two Update calls for the same session never interleave.
type SessionStore interface {
	Update(ctx context.Context, sessionID string, fn func(*models.SessionState) error) error
}

// Notifier queues booking documents for asynchronous delivery. Queueing is
// best effort; a failure degrades the result message but never rolls back
// the booking.
type Notifier interface {
	Queue(ctx context.Context, email models.BookingEmail) error
}

// BookingArchive persists committed bookings for audit across sessions.
type BookingArchive interface {
	Save(record *models.BookingRecord) error
	UpdateStatus(bookingID, status string) error
}

// TripService is the conversational booking pipeline: per-domain extraction,
// completeness checks, booking, cancellation, and the cross-booking views.
type TripService interface {
	ParseTravel(ctx context.Context, sessionID, input string) (*ExtractResult, error)
	CheckTravel(ctx context.Context, sessionID string) (*CheckResult, error)
	BookTravel(ctx context.Context, sessionID string) (*BookResult, error)
	CancelTravel(ctx context.Context, sessionID string) (*CancelResult, error)

	ParseAccommodation(ctx context.Context, sessionID, input string) (*ExtractResult, error)
	CheckAccommodation(ctx context.Context, sessionID string) (*CheckResult, error)
	BookAccommodation(ctx context.Context, sessionID string) (*BookResult, error)
	CancelAccommodation(ctx context.Context, sessionID string) (*CancelResult, error)

	ParseSightseeing(ctx context.Context, sessionID, input string) (*ExtractResult, error)
	CheckSightseeing(ctx context.Context, sessionID string) (*CheckResult, error)
	BookSightseeing(ctx context.Context, sessionID string) (*BookResult, error)
	CancelSightseeing(ctx context.Context, sessionID string) (*CancelResult, error)

	Conflicts(ctx context.Context, sessionID string) (*models.ConflictReport, error)
	Bill(ctx context.Context, sessionID string) (*models.Bill, error)
	ActiveBookings(ctx context.Context, sessionID string) (*BookingsResult, error)
	CancelledBookings(ctx context.Context, sessionID string) (*CancelledResult, error)
}

// DefaultTripService wires the pure booking logic to session storage, the
// booking archive and the notification queue.
type DefaultTripService struct {
	store    SessionStore
	archive  BookingArchive
	notifier Notifier
}

func NewDefaultTripService(store SessionStore, archive BookingArchive, notifier Notifier) *DefaultTripService {
	return &DefaultTripService{store: store, archive: archive, notifier: notifier}
}

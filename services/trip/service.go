// File: services/trip/service.go
package trip

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tripplanner/models"
	"tripplanner/utils"

	"go.uber.org/zap"
)

// withState runs fn against the session's state under the store's
// per-session serialization.
func (s *DefaultTripService) withState(ctx context.Context, sessionID string, fn func(*models.SessionState)) error {
	return s.store.Update(ctx, sessionID, func(st *models.SessionState) error {
		fn(st)
		return nil
	})
}

func (s *DefaultTripService) ParseTravel(ctx context.Context, sessionID, input string) (*ExtractResult, error) {
	var res *ExtractResult
	err := s.withState(ctx, sessionID, func(st *models.SessionState) {
		res = ParseTravelDetails(st, input)
	})
	return res, err
}

func (s *DefaultTripService) CheckTravel(ctx context.Context, sessionID string) (*CheckResult, error) {
	var res *CheckResult
	err := s.withState(ctx, sessionID, func(st *models.SessionState) {
		res = CheckTravelState(st)
	})
	return res, err
}

func (s *DefaultTripService) BookTravel(ctx context.Context, sessionID string) (*BookResult, error) {
	var res *BookResult
	err := s.withState(ctx, sessionID, func(st *models.SessionState) {
		if chk := CheckTravelState(st); chk.Status != StatusReadyToBook {
			res = &BookResult{Status: StatusMissingData, Message: chk.Message}
			return
		}
		b := CommitTravel(st)
		notif := s.recordBooking(ctx, sessionID, st, &models.BookingRecord{
			BookingID:   b.TicketID,
			BookingType: "travel",
			Travel:      b,
		}, travelEmailFields(b))
		res = &BookResult{
			Status:             StatusSuccess,
			Message:            fmt.Sprintf("Travel booked: %s from %s to %s on %s (ticket %s).", b.Mode, b.From, b.To, b.Date, b.TicketID),
			NotificationStatus: notif,
			Travel:             b,
		}
	})
	return res, err
}

func (s *DefaultTripService) CancelTravel(ctx context.Context, sessionID string) (*CancelResult, error) {
	return s.cancel(ctx, sessionID, "travel", CancelTravel)
}

func (s *DefaultTripService) ParseAccommodation(ctx context.Context, sessionID, input string) (*ExtractResult, error) {
	var res *ExtractResult
	err := s.withState(ctx, sessionID, func(st *models.SessionState) {
		res = ParseAccommodationDetails(st, input)
	})
	return res, err
}

func (s *DefaultTripService) CheckAccommodation(ctx context.Context, sessionID string) (*CheckResult, error) {
	var res *CheckResult
	err := s.withState(ctx, sessionID, func(st *models.SessionState) {
		res = CheckAccommodationState(st)
	})
	return res, err
}

func (s *DefaultTripService) BookAccommodation(ctx context.Context, sessionID string) (*BookResult, error) {
	var res *BookResult
	err := s.withState(ctx, sessionID, func(st *models.SessionState) {
		if chk := CheckAccommodationState(st); chk.Status != StatusReadyToBook {
			res = &BookResult{Status: StatusMissingData, Message: chk.Message}
			return
		}
		b := CommitAccommodation(st)
		notif := s.recordBooking(ctx, sessionID, st, &models.BookingRecord{
			BookingID:     b.BookingID,
			BookingType:   "accommodation",
			Accommodation: b,
		}, accommodationEmailFields(b))
		res = &BookResult{
			Status:             StatusSuccess,
			Message:            fmt.Sprintf("Accommodation booked in %s, %s to %s (%d nights, booking %s).", b.Location, b.CheckIn, b.CheckOut, b.Nights, b.BookingID),
			NotificationStatus: notif,
			Accommodation:      b,
		}
	})
	return res, err
}

func (s *DefaultTripService) CancelAccommodation(ctx context.Context, sessionID string) (*CancelResult, error) {
	return s.cancel(ctx, sessionID, "accommodation", CancelAccommodation)
}

func (s *DefaultTripService) ParseSightseeing(ctx context.Context, sessionID, input string) (*ExtractResult, error) {
	var res *ExtractResult
	err := s.withState(ctx, sessionID, func(st *models.SessionState) {
		res = ParseSightseeingDetails(st, input)
	})
	return res, err
}

func (s *DefaultTripService) CheckSightseeing(ctx context.Context, sessionID string) (*CheckResult, error) {
	var res *CheckResult
	err := s.withState(ctx, sessionID, func(st *models.SessionState) {
		res = CheckSightseeingState(st)
	})
	return res, err
}

func (s *DefaultTripService) BookSightseeing(ctx context.Context, sessionID string) (*BookResult, error) {
	var res *BookResult
	err := s.withState(ctx, sessionID, func(st *models.SessionState) {
		if chk := CheckSightseeingState(st); chk.Status != StatusReadyToBook {
			res = &BookResult{Status: StatusMissingData, Message: chk.Message}
			return
		}
		b := CommitSightseeing(st)
		notif := s.recordBooking(ctx, sessionID, st, &models.BookingRecord{
			BookingID:   b.BookingID,
			BookingType: "sightseeing",
			Sightseeing: b,
		}, sightseeingEmailFields(b))
		res = &BookResult{
			Status:             StatusSuccess,
			Message:            fmt.Sprintf("Sightseeing booked in %s on %s (booking %s).", b.Location, b.Date, b.BookingID),
			NotificationStatus: notif,
			Sightseeing:        b,
		}
	})
	return res, err
}

func (s *DefaultTripService) CancelSightseeing(ctx context.Context, sessionID string) (*CancelResult, error) {
	return s.cancel(ctx, sessionID, "sightseeing", CancelSightseeing)
}

func (s *DefaultTripService) Conflicts(ctx context.Context, sessionID string) (*models.ConflictReport, error) {
	var report models.ConflictReport
	err := s.withState(ctx, sessionID, func(st *models.SessionState) {
		report = CheckTripConflicts(st)
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *DefaultTripService) Bill(ctx context.Context, sessionID string) (*models.Bill, error) {
	var bill models.Bill
	err := s.withState(ctx, sessionID, func(st *models.SessionState) {
		bill = CalculateBill(st.TripPlan)
	})
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (s *DefaultTripService) ActiveBookings(ctx context.Context, sessionID string) (*BookingsResult, error) {
	var res *BookingsResult
	err := s.withState(ctx, sessionID, func(st *models.SessionState) {
		res = ListActiveBookings(st)
	})
	return res, err
}

func (s *DefaultTripService) CancelledBookings(ctx context.Context, sessionID string) (*CancelledResult, error) {
	var res *CancelledResult
	err := s.withState(ctx, sessionID, func(st *models.SessionState) {
		res = ViewCancelledBookings(st)
	})
	return res, err
}

// cancel runs one domain's cancellation core, marks the archived record
// cancelled and queues the refund notification.
func (s *DefaultTripService) cancel(ctx context.Context, sessionID, domain string, core func(*models.SessionState) (*models.CancelledBooking, error)) (*CancelResult, error) {
	var res *CancelResult
	err := s.withState(ctx, sessionID, func(st *models.SessionState) {
		rec, cErr := core(st)
		if cErr != nil {
			var be *BookingError
			if errors.As(cErr, &be) {
				res = &CancelResult{Status: StatusNotFound, Message: be.Message}
				return
			}
			res = &CancelResult{Status: StatusNotFound, Message: cErr.Error()}
			return
		}

		if s.archive != nil {
			if aErr := s.archive.UpdateStatus(rec.BookingID, models.BookingStatusCancelled); aErr != nil {
				utils.GetLogger().Warn("booking archive status update failed",
					zap.String("booking_id", rec.BookingID), zap.Error(aErr))
			}
		}

		notif := s.queueEmail(ctx, st, models.BookingEmail{
			To:          st.UserEmail,
			UserName:    st.UserName,
			BookingType: domain + " cancellation",
			BookingID:   rec.BookingID,
			Fields: []models.BookingField{
				{Label: "Booking ID", Text: rec.BookingID},
				{Label: "Refund", Amount: rec.Refund(), IsAmount: true},
			},
		})

		res = &CancelResult{
			Status:             StatusSuccess,
			Message:            fmt.Sprintf("Cancelled %s booking %s.", domain, rec.BookingID),
			NotificationStatus: notif,
			Refund:             rec.Refund(),
			Cancelled:          rec,
		}
	})
	return res, err
}

// recordBooking archives the committed booking and queues its confirmation
// email. Archive failures are logged and swallowed: the live booking in the
// session state is authoritative.
func (s *DefaultTripService) recordBooking(ctx context.Context, sessionID string, st *models.SessionState, rec *models.BookingRecord, fields []models.BookingField) string {
	if s.archive != nil {
		now := time.Now().UTC()
		rec.UserID = st.UserID
		rec.SessionID = sessionID
		rec.CreatedAt = now
		rec.UpdatedAt = now
		rec.Status = models.BookingStatusConfirmed
		if err := s.archive.Save(rec); err != nil {
			utils.GetLogger().Warn("booking archive save failed",
				zap.String("booking_id", rec.BookingID), zap.Error(err))
		}
	}

	return s.queueEmail(ctx, st, models.BookingEmail{
		To:          st.UserEmail,
		UserName:    st.UserName,
		BookingType: rec.BookingType,
		BookingID:   rec.BookingID,
		Fields:      fields,
	})
}

// queueEmail hands the document to the notification queue and reports the
// queueing outcome. A missing or malformed recipient skips delivery.
func (s *DefaultTripService) queueEmail(ctx context.Context, st *models.SessionState, email models.BookingEmail) string {
	if s.notifier == nil || !looksLikeEmail(st.UserEmail) {
		return NotificationSkipped
	}
	if err := s.notifier.Queue(ctx, email); err != nil {
		utils.GetLogger().Warn("notification enqueue failed",
			zap.String("booking_id", email.BookingID), zap.Error(err))
		return NotificationFailed
	}
	return NotificationQueued
}

func looksLikeEmail(addr string) bool {
	return strings.Contains(addr, "@") && strings.Contains(addr, ".")
}

// File: services/trip/bookings.go
package trip

import (
	"fmt"

	"tripplanner/models"
)

// ListActiveBookings summarizes the active bookings of a trip plan in the
// fixed travel, accommodation, sightseeing order.
func ListActiveBookings(state *models.SessionState) *BookingsResult {
	plan := state.TripPlan
	var bookings []BookingSummary

	if t := plan.Travel; t != nil {
		bookings = append(bookings, BookingSummary{
			Type:      "travel",
			BookingID: t.TicketID,
			Details:   fmt.Sprintf("%s from %s to %s on %s", t.Mode, t.From, t.To, t.Date),
			Price:     t.Price,
		})
	}
	if a := plan.Accommodation; a != nil {
		bookings = append(bookings, BookingSummary{
			Type:      "accommodation",
			BookingID: a.BookingID,
			Details:   fmt.Sprintf("stay in %s, %s to %s (%d nights)", a.Location, a.CheckIn, a.CheckOut, a.Nights),
			Price:     a.TotalPrice,
		})
	}
	if s := plan.Sightseeing; s != nil {
		bookings = append(bookings, BookingSummary{
			Type:      "sightseeing",
			BookingID: s.BookingID,
			Details:   fmt.Sprintf("sightseeing in %s on %s", s.Location, s.Date),
			Price:     s.Budget,
		})
	}

	if len(bookings) == 0 {
		return &BookingsResult{
			Status:  StatusNoBookings,
			Message: "No active bookings in this trip plan.",
		}
	}
	return &BookingsResult{
		Status:    StatusOK,
		Message:   fmt.Sprintf("%d active booking(s).", len(bookings)),
		Bookings:  bookings,
		TotalCost: totalTripCost(plan),
	}
}

// ViewCancelledBookings returns the cancellation history with the refund
// total. The history is append-only, so the order is cancellation order.
func ViewCancelledBookings(state *models.SessionState) *CancelledResult {
	if len(state.CancelledBookings) == 0 {
		return &CancelledResult{
			Status:  StatusNoBookings,
			Message: "No cancelled bookings in this session.",
		}
	}
	refund := 0
	for _, c := range state.CancelledBookings {
		refund += c.Refund()
	}
	return &CancelledResult{
		Status:      StatusOK,
		Message:     fmt.Sprintf("%d cancelled booking(s).", len(state.CancelledBookings)),
		Cancelled:   state.CancelledBookings,
		TotalRefund: refund,
	}
}

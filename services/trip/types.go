package trip

import "tripplanner/models"

// Operation statuses shared across the trip tools.
const (
	StatusSuccess     = "success"
	StatusReadyToBook = "ready_to_book"
	StatusMissingData = "missing_data"
	StatusNotFound    = "not_found"
	StatusConflict    = "conflict"
	StatusOK          = "ok"
	StatusNoBookings  = "no_bookings"
)

// Notification outcomes surfaced in result messages. Delivery itself is
// asynchronous; a booking commits regardless of the notification outcome.
const (
	NotificationQueued  = "queued"
	NotificationFailed  = "failed"
	NotificationSkipped = "skipped"
)

// ExtractResult reports the fields pulled out of one utterance. The same
// fields have already been merged into the session state.
type ExtractResult struct {
	Status    string         `json:"status"`
	Message   string         `json:"message"`
	Extracted map[string]any `json:"extracted_details"`
}

// CheckResult classifies a domain's scratch state as ready or missing.
// MissingFields preserves the fixed iteration order of the required-field
// table so the output is deterministic.
type CheckResult struct {
	Status        string         `json:"status"`
	Message       string         `json:"message"`
	Available     map[string]any `json:"available_data"`
	MissingFields []string       `json:"missing_fields"`
}

// BookResult is the outcome of a booking commit.
type BookResult struct {
	Status             string                       `json:"status"`
	Message            string                       `json:"message"`
	NotificationStatus string                       `json:"notification_status"`
	Travel             *models.TravelBooking        `json:"travel_details,omitempty"`
	Accommodation      *models.AccommodationBooking `json:"accommodation_details,omitempty"`
	Sightseeing        *models.SightseeingBooking   `json:"sightseeing_details,omitempty"`
}

// CancelResult is the outcome of a cancellation.
type CancelResult struct {
	Status             string                   `json:"status"`
	Message            string                   `json:"message"`
	NotificationStatus string                   `json:"notification_status,omitempty"`
	Refund             int                      `json:"refund"`
	Cancelled          *models.CancelledBooking `json:"cancelled_booking,omitempty"`
}

// BookingSummary is one row of the active-bookings listing.
type BookingSummary struct {
	Type      string `json:"type"`
	BookingID string `json:"id"`
	Details   string `json:"details"`
	Price     int    `json:"price"`
}

// BookingsResult lists all active bookings with their combined cost.
type BookingsResult struct {
	Status    string           `json:"status"`
	Message   string           `json:"message"`
	Bookings  []BookingSummary `json:"bookings"`
	TotalCost int              `json:"total_cost"`
}

// CancelledResult lists the cancellation history with the total refund.
type CancelledResult struct {
	Status      string                    `json:"status"`
	Message     string                    `json:"message"`
	Cancelled   []models.CancelledBooking `json:"cancelled_bookings"`
	TotalRefund int                       `json:"total_refund"`
}

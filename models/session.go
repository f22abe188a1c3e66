package models

import "time"

// Session links a user to a mutable state document.
type Session struct {
	SessionID   string       `bson:"session_id" json:"session_id"`
	UserID      string       `bson:"user_id" json:"user_id"`
	SessionName string       `bson:"session_name,omitempty" json:"session_name,omitempty"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
	LastActive  time.Time    `bson:"last_active" json:"last_active"`
	State       SessionState `bson:"state" json:"state"`
	IsActive    bool         `bson:"is_active" json:"is_active"`
}

// SessionState is the per-session state document mutated across turns.
// Every field is typed; extraction writes the drafts, booking moves draft
// data into TripPlan, and the conflict checker overwrites the conflict
// fields wholesale on every run.
type SessionState struct {
	UserID    string `bson:"user_id,omitempty" json:"user_id,omitempty"`
	UserName  string `bson:"user_name,omitempty" json:"user_name,omitempty"`
	UserEmail string `bson:"user_email,omitempty" json:"user_email,omitempty"`

	// Overall trip budget in rupees; 0 means no budget was given.
	Budget int `bson:"budget,omitempty" json:"budget,omitempty"`

	TripPlan TripPlan `bson:"trip_plan" json:"trip_plan"`

	// Scratch fields per domain, consumed and cleared on commit.
	Travel        TravelDraft        `bson:"travel_draft,omitempty" json:"travel_draft,omitempty"`
	Accommodation AccommodationDraft `bson:"accommodation_draft,omitempty" json:"accommodation_draft,omitempty"`
	Sightseeing   SightseeingDraft   `bson:"sightseeing_draft,omitempty" json:"sightseeing_draft,omitempty"`

	// Append-only cancellation audit log.
	CancelledBookings []CancelledBooking `bson:"cancelled_bookings,omitempty" json:"cancelled_bookings,omitempty"`

	// Derived conflict fields, never authoritative input.
	Conflict       bool   `bson:"conflict" json:"conflict"`
	ConflictReason string `bson:"conflict_reason,omitempty" json:"conflict_reason,omitempty"`

	// Last free-text search result; scraped for prices as a last resort.
	ConversationResult string `bson:"conversation_result,omitempty" json:"conversation_result,omitempty"`
}

// CancelledBooking is one entry in the cancellation history. Exactly one of
// the detail pointers is set, matching Type.
type CancelledBooking struct {
	Type          string                `bson:"type" json:"type"` // "travel", "accommodation" or "sightseeing"
	BookingID     string                `bson:"booking_id" json:"booking_id"`
	CancelledAt   time.Time             `bson:"cancelled_at" json:"cancelled_at"`
	Travel        *TravelBooking        `bson:"travel,omitempty" json:"travel,omitempty"`
	Accommodation *AccommodationBooking `bson:"accommodation,omitempty" json:"accommodation,omitempty"`
	Sightseeing   *SightseeingBooking   `bson:"sightseeing,omitempty" json:"sightseeing,omitempty"`
}

// Refund returns the amount refunded for the cancelled booking, which is
// the priced field of the original record (0 if it was never priced).
func (c CancelledBooking) Refund() int {
	switch {
	case c.Travel != nil:
		return c.Travel.Price
	case c.Accommodation != nil:
		return c.Accommodation.TotalPrice
	case c.Sightseeing != nil:
		return c.Sightseeing.Budget
	}
	return 0
}

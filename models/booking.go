package models

import "time"

// Booking statuses for archived records.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// BookingRecord is the durable archive of a committed booking, kept across
// sessions for audit. The live copy lives in the session's TripPlan.
type BookingRecord struct {
	BookingID     string                `bson:"booking_id" json:"booking_id"`
	UserID        string                `bson:"user_id" json:"user_id"`
	SessionID     string                `bson:"session_id" json:"session_id"`
	BookingType   string                `bson:"booking_type" json:"booking_type"`
	Travel        *TravelBooking        `bson:"travel,omitempty" json:"travel,omitempty"`
	Accommodation *AccommodationBooking `bson:"accommodation,omitempty" json:"accommodation,omitempty"`
	Sightseeing   *SightseeingBooking   `bson:"sightseeing,omitempty" json:"sightseeing,omitempty"`
	CreatedAt     time.Time             `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time             `bson:"updated_at" json:"updated_at"`
	Status        string                `bson:"status" json:"status"`
}

package models

// TravelMode is the closed set of supported transport modes. Each mode maps
// to its own ticket-id format; an unrecognized mode never reaches booking
// because extraction only produces values from this set.
type TravelMode string

const (
	ModeTrain  TravelMode = "train"
	ModeFlight TravelMode = "flight"
	ModeBus    TravelMode = "bus"
	ModeCar    TravelMode = "car"
	ModeCab    TravelMode = "cab"
	ModeMetro  TravelMode = "metro"
	ModeTram   TravelMode = "tram"
	ModeFerry  TravelMode = "ferry"
)

// ParseTravelMode maps user wording onto a TravelMode ("plane" is an alias
// for flight). The second return is false for anything outside the set.
func ParseTravelMode(s string) (TravelMode, bool) {
	switch s {
	case "train", "flight", "bus", "car", "cab", "metro", "tram", "ferry":
		return TravelMode(s), true
	case "plane":
		return ModeFlight, true
	default:
		return "", false
	}
}

// TripPlan aggregates at most one active booking per domain. A nil pointer
// means the domain has not been booked in this session.
type TripPlan struct {
	Travel        *TravelBooking        `bson:"travel,omitempty" json:"travel,omitempty"`
	Accommodation *AccommodationBooking `bson:"accommodation,omitempty" json:"accommodation,omitempty"`
	Sightseeing   *SightseeingBooking   `bson:"sightseeing,omitempty" json:"sightseeing,omitempty"`
}

// IsEmpty reports whether no domain has an active booking.
func (p TripPlan) IsEmpty() bool {
	return p.Travel == nil && p.Accommodation == nil && p.Sightseeing == nil
}

// TravelBooking is a committed travel reservation.
type TravelBooking struct {
	From          string     `bson:"from" json:"from"`
	To            string     `bson:"to" json:"to"`
	Date          string     `bson:"date" json:"date"` // ISO "YYYY-MM-DD"
	Mode          TravelMode `bson:"mode" json:"mode"`
	TransportName string     `bson:"transport_name,omitempty" json:"transport_name,omitempty"`
	Price         int        `bson:"price" json:"price"` // Rupees; 0 means unconfirmed
	TicketID      string     `bson:"ticket_id" json:"ticket_id"`
}

// AccommodationBooking is a committed hotel reservation.
type AccommodationBooking struct {
	Location   string `bson:"location" json:"location"`
	CheckIn    string `bson:"check_in" json:"check_in"`
	CheckOut   string `bson:"check_out" json:"check_out"`
	Nights     int    `bson:"nights" json:"nights"`           // Always >= 1
	Rate       int    `bson:"budget" json:"budget"`           // Per-night rate in rupees
	TotalPrice int    `bson:"total_price" json:"total_price"` // 0 means unconfirmed
	BookingID  string `bson:"booking_id" json:"booking_id"`
}

// SightseeingBooking is a committed sightseeing reservation.
type SightseeingBooking struct {
	Location  string `bson:"location" json:"location"`
	Date      string `bson:"date" json:"date"`
	Budget    int    `bson:"budget" json:"budget"` // 0 means unconfirmed
	BookingID string `bson:"booking_id" json:"booking_id"`
	EntryID   string `bson:"entry_id,omitempty" json:"entry_id,omitempty"`
}

// TravelDraft accumulates extracted travel fields across turns before a
// booking commits. Zero values mean "not yet provided".
type TravelDraft struct {
	From          string     `bson:"from,omitempty" json:"from,omitempty"`
	To            string     `bson:"to,omitempty" json:"to,omitempty"`
	Date          string     `bson:"date,omitempty" json:"date,omitempty"`
	Mode          TravelMode `bson:"mode,omitempty" json:"mode,omitempty"`
	TransportName string     `bson:"transport_name,omitempty" json:"transport_name,omitempty"`
	Price         int        `bson:"price,omitempty" json:"price,omitempty"`
}

// AccommodationDraft accumulates extracted accommodation fields.
type AccommodationDraft struct {
	Location   string `bson:"location,omitempty" json:"location,omitempty"`
	CheckIn    string `bson:"check_in,omitempty" json:"check_in,omitempty"`
	CheckOut   string `bson:"check_out,omitempty" json:"check_out,omitempty"`
	Nights     int    `bson:"nights,omitempty" json:"nights,omitempty"`
	Rate       int    `bson:"budget,omitempty" json:"budget,omitempty"`
	TotalPrice int    `bson:"total_price,omitempty" json:"total_price,omitempty"`
}

// SightseeingDraft accumulates extracted sightseeing fields.
type SightseeingDraft struct {
	Location string `bson:"location,omitempty" json:"location,omitempty"`
	Date     string `bson:"date,omitempty" json:"date,omitempty"`
	Budget   int    `bson:"budget,omitempty" json:"budget,omitempty"`
}

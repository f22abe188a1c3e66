package models

// BillItem is one line of the trip bill. Confirmed is false for bookings
// that exist but have no price yet; they still get a line ("price to be
// confirmed") and contribute 0 to the subtotal.
type BillItem struct {
	Description  string `json:"description"`
	Date         string `json:"date,omitempty"`
	CheckIn      string `json:"check_in,omitempty"`
	CheckOut     string `json:"check_out,omitempty"`
	Nights       int    `json:"nights,omitempty"`
	RatePerNight int    `json:"rate_per_night,omitempty"`
	BookingID    string `json:"booking_id"`
	Amount       int    `json:"amount"`
	Confirmed    bool   `json:"confirmed"`
}

// BillSection groups the items of one booking domain.
type BillSection struct {
	Items    []BillItem `json:"items"`
	Subtotal int        `json:"subtotal"`
}

// Bill is the aggregated cost breakdown of the current trip plan.
type Bill struct {
	Travel        BillSection `json:"travel"`
	Accommodation BillSection `json:"accommodation"`
	Sightseeing   BillSection `json:"sightseeing"`
	Total         int         `json:"total"`
}

package models

// BookingField is one labelled row of a booking confirmation document.
// Amount rows are rendered with the currency format; text rows verbatim.
// Rows with an empty text value or a zero amount are omitted entirely.
type BookingField struct {
	Label    string `json:"label"`
	Text     string `json:"text,omitempty"`
	Amount   int    `json:"amount,omitempty"`
	IsAmount bool   `json:"is_amount,omitempty"`
}

// BookingEmail is the payload of an "email:send" task. Fields are kept in
// declaration order so the rendered document is deterministic.
type BookingEmail struct {
	To          string         `json:"to"`
	UserName    string         `json:"user_name"`
	BookingType string         `json:"booking_type"`
	BookingID   string         `json:"booking_id"`
	Fields      []BookingField `json:"fields"`
}

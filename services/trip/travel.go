// File: services/trip/travel.go
package trip

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"tripplanner/models"
	"tripplanner/utils"

	"go.uber.org/zap"
)

var (
	travelFromToRe = regexp.MustCompile(`(?i)from\s+([A-Za-z\s]+?)\s+to\s+([A-Za-z\s]+?)(?:\s+on|\s+by|\s+via|,|\.|$)`)

	travelDateRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)on\s+([A-Za-z]+\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s*\d{4})?)`),
		regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`),
		regexp.MustCompile(`(\d{1,2}[-/]\d{1,2}[-/]\d{4})`),
	}

	travelModeRe = regexp.MustCompile(`(?i)\b(train|flight|plane|bus|car|cab|metro|tram|ferry)\b`)

	transportNameRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:train|flight|bus|ferry|metro|tram)\s+(?:name|number|no\.?|#)\s*[:\-]?\s*([A-Za-z0-9\s]+?)(?:\s+on|\s+from|\s+to|,|\.|$)`),
		regexp.MustCompile(`(?i)(?:by|via|on)\s+(?:the\s+)?([A-Za-z0-9\s]+?)\s+(?:train|flight|bus|ferry|metro|tram)\b`),
		// The carrier suffix must not double as a name word, or filler
		// before the name gets captured ("book the Shatabdi").
		regexp.MustCompile(`\b([A-Z][A-Za-z0-9]*(?:\s+[A-Z][A-Za-z0-9]*)?\s+(?:Express|Mail|Superfast|Airways|Airlines|Travels))\b`),
	}

	travelPriceRe = regexp.MustCompile(`(?i)(?:price|fare|cost|budget|ticket)\D{0,15}?(\d{3,6})`)
)

// ParseTravelDetails extracts travel fields from one utterance and merges
// them into the session's travel draft. Extraction is additive: fields
// mentioned earlier in the conversation survive turns that do not repeat
// them, and a field restated with a new value overwrites the old one.
func ParseTravelDetails(state *models.SessionState, input string) *ExtractResult {
	extracted := map[string]any{}
	d := &state.Travel

	if m := travelFromToRe.FindStringSubmatch(input); m != nil {
		d.From = strings.TrimSpace(m[1])
		d.To = strings.TrimSpace(m[2])
		extracted["from"] = d.From
		extracted["to"] = d.To
		logProvenance("travel", "route", 0)
	}

	if m, i, ok := firstMatch(input, travelDateRes); ok {
		if iso := normalizeDateField(m[1]); iso != "" {
			d.Date = iso
			extracted["date"] = iso
			logProvenance("travel", "date", i)
		}
	}

	if m := travelModeRe.FindStringSubmatch(input); m != nil {
		if mode, ok := models.ParseTravelMode(strings.ToLower(m[1])); ok {
			d.Mode = mode
			extracted["mode"] = string(mode)
			logProvenance("travel", "mode", 0)
		}
	}

	if m, i, ok := firstMatch(input, transportNameRes); ok {
		name := cleanTransportName(m[1])
		if name != "" {
			d.TransportName = name
			extracted["transport_name"] = name
			logProvenance("travel", "transport_name", i)
		}
	}

	if m := travelPriceRe.FindStringSubmatch(input); m != nil {
		if p := atoiSafe(m[1]); p > 0 {
			d.Price = p
			extracted["price"] = p
			logProvenance("travel", "price", 0)
		}
	}

	msg := "No travel details found in the message."
	if len(extracted) > 0 {
		msg = fmt.Sprintf("Extracted travel details: %v", extracted)
	}
	return &ExtractResult{Status: StatusSuccess, Message: msg, Extracted: extracted}
}

// cleanTransportName strips leading articles and stray whitespace from a
// captured transport name.
func cleanTransportName(s string) string {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	for _, art := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(lower, art) {
			s = strings.TrimSpace(s[len(art):])
			break
		}
	}
	return s
}

// CheckTravelState classifies the travel draft as ready to book or missing
// data. Transport name and price are optional and only reported when set.
func CheckTravelState(state *models.SessionState) *CheckResult {
	d := state.Travel
	available := map[string]any{}
	var missing []string

	required := []struct {
		key   string
		label string
		ok    bool
		val   any
	}{
		{"from", "Origin", d.From != "", d.From},
		{"to", "Destination", d.To != "", d.To},
		{"date", "Date", d.Date != "", d.Date},
		{"mode", "Mode of travel", d.Mode != "", string(d.Mode)},
	}
	for _, f := range required {
		if f.ok {
			available[f.key] = f.val
		} else {
			missing = append(missing, f.label)
		}
	}
	if d.TransportName != "" {
		available["transport_name"] = d.TransportName
	}
	if d.Price > 0 {
		available["price"] = d.Price
	}

	if len(missing) > 0 {
		return &CheckResult{
			Status:        StatusMissingData,
			Message:       fmt.Sprintf("Missing travel details: %s", strings.Join(missing, ", ")),
			Available:     available,
			MissingFields: missing,
		}
	}
	return &CheckResult{
		Status:    StatusReadyToBook,
		Message:   "All required travel details are available.",
		Available: available,
	}
}

// CommitTravel turns the travel draft into an active booking. Price falls
// back to scraping the last search result when the user never stated one
// (range form takes the lower bound); 0 means unconfirmed. The draft is
// cleared afterwards so stale fields cannot leak into a later booking.
func CommitTravel(state *models.SessionState) *models.TravelBooking {
	d := state.Travel
	price := d.Price
	if price == 0 {
		price = scrapeRupeeAmount(state.ConversationResult, true)
	}

	booking := &models.TravelBooking{
		From:          d.From,
		To:            d.To,
		Date:          d.Date,
		Mode:          d.Mode,
		TransportName: d.TransportName,
		Price:         price,
		TicketID:      TicketID(d.Mode, d),
	}

	if state.TripPlan.Travel != nil {
		utils.GetLogger().Warn("overwriting active travel booking",
			zap.String("old_ticket_id", state.TripPlan.Travel.TicketID),
			zap.String("new_ticket_id", booking.TicketID),
		)
	}
	state.TripPlan.Travel = booking
	state.Travel = models.TravelDraft{}
	return booking
}

// CancelTravel moves the active travel booking into the cancellation
// history. The history is append-only; a second cancellation finds no
// active booking and leaves it untouched.
func CancelTravel(state *models.SessionState) (*models.CancelledBooking, error) {
	b := state.TripPlan.Travel
	if b == nil {
		return nil, ErrNoActiveBooking("travel")
	}
	rec := models.CancelledBooking{
		Type:        "travel",
		BookingID:   b.TicketID,
		CancelledAt: time.Now().UTC(),
		Travel:      b,
	}
	state.CancelledBookings = append(state.CancelledBookings, rec)
	state.TripPlan.Travel = nil
	return &rec, nil
}

// travelEmailFields renders a travel booking into the ordered field list
// used by the confirmation email.
func travelEmailFields(b *models.TravelBooking) []models.BookingField {
	return []models.BookingField{
		{Label: "From", Text: b.From},
		{Label: "To", Text: b.To},
		{Label: "Date", Text: b.Date},
		{Label: "Mode", Text: string(b.Mode)},
		{Label: "Transport Name", Text: b.TransportName},
		{Label: "Ticket Price", Amount: b.Price, IsAmount: true},
		{Label: "Ticket ID", Text: b.TicketID},
	}
}

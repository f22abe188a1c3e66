// File: services/trip/accommodation.go
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
	accomLocationRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:hotel|stay|accommodation|room)\s+(?:in|at|near)\s+([A-Za-z\s]+?)(?:\s+from|\s+on|\s+for|,|\.|$)`),
		regexp.MustCompile(`(?i)(?:in|at)\s+([A-Za-z\s]+?)\s+(?:from|between|for)\b`),
	}

	// The check-out capture keeps a trailing ", YYYY" so an explicit year
	// is not lost to the planning-year default.
	accomStayRangeRe = regexp.MustCompile(`(?i)from\s+([A-Za-z0-9,\s/]+?)\s+(?:to|until|till)\s+([A-Za-z0-9\s/]+?(?:,\s*\d{4})?)(?:\s+budget|\s+with|\s+at|,|\.|$)`)

	accomCheckInRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)check[\s-]?in\s+(?:on\s+|date\s+|is\s+)*([A-Za-z0-9,\s/-]+?)(?:\s+and|\s+check|\s+budget|,|\.|$)`),
	}
	accomCheckOutRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)check[\s-]?out\s+(?:on\s+|date\s+|is\s+)*([A-Za-z0-9,\s/-]+?)(?:\s+and|\s+budget|,|\.|$)`),
	}

	accomNightsRe = regexp.MustCompile(`(?i)(\d{1,2})\s+nights?\b`)

	accomRateRe  = regexp.MustCompile(`(?i)(?:budget|rate|price)\s+(?:of\s+|is\s+|around\s+|about\s+)?(\d{3,6})(?:\s+rupees)?\s+(?:per|a)\s+night`)
	accomTotalRe = regexp.MustCompile(`(?i)total\s+(?:cost|price|budget)?\s*(?:of\s+|is\s+|around\s+|about\s+)?(\d{3,7})(?:\s+rupees)?`)
)

// ParseAccommodationDetails extracts accommodation fields from one
// utterance and merges them into the session's accommodation draft.
// Dates are normalized to ISO at extraction time; a date that fails to
// normalize stays missing rather than polluting the draft.
func ParseAccommodationDetails(state *models.SessionState, input string) *ExtractResult {
	extracted := map[string]any{}
	d := &state.Accommodation

	if m, i, ok := firstMatch(input, accomLocationRes); ok {
		d.Location = strings.TrimSpace(m[1])
		extracted["location"] = d.Location
		logProvenance("accommodation", "location", i)
	}

	// "from X to Y" covers both dates in one shot; the explicit check-in /
	// check-out phrasings override it when present.
	if m := accomStayRangeRe.FindStringSubmatch(input); m != nil {
		if in := normalizeDateField(m[1]); in != "" {
			d.CheckIn = in
			extracted["check_in"] = in
			logProvenance("accommodation", "check_in", 0)
		}
		if out := normalizeDateField(m[2]); out != "" {
			d.CheckOut = out
			extracted["check_out"] = out
			logProvenance("accommodation", "check_out", 0)
		}
	}
	if m, i, ok := firstMatch(input, accomCheckInRes); ok {
		if in := normalizeDateField(m[1]); in != "" {
			d.CheckIn = in
			extracted["check_in"] = in
			logProvenance("accommodation", "check_in", i+1)
		}
	}
	if m, i, ok := firstMatch(input, accomCheckOutRes); ok {
		if out := normalizeDateField(m[1]); out != "" {
			d.CheckOut = out
			extracted["check_out"] = out
			logProvenance("accommodation", "check_out", i+1)
		}
	}

	if m := accomNightsRe.FindStringSubmatch(input); m != nil {
		if n := atoiSafe(m[1]); n > 0 {
			d.Nights = n
			extracted["nights"] = n
			logProvenance("accommodation", "nights", 0)
		}
	}

	if m := accomRateRe.FindStringSubmatch(input); m != nil {
		if r := atoiSafe(m[1]); r > 0 {
			d.Rate = r
			extracted["budget_per_night"] = r
			logProvenance("accommodation", "rate", 0)
		}
	}

	if m := accomTotalRe.FindStringSubmatch(input); m != nil {
		if t := atoiSafe(m[1]); t > 0 {
			d.TotalPrice = t
			extracted["total_price"] = t
			logProvenance("accommodation", "total_price", 0)
		}
	}

	msg := "No accommodation details found in the message."
	if len(extracted) > 0 {
		msg = fmt.Sprintf("Extracted accommodation details: %v", extracted)
	}
	return &ExtractResult{Status: StatusSuccess, Message: msg, Extracted: extracted}
}

// CheckAccommodationState classifies the accommodation draft. Location and
// check-in are required; check-out is satisfiable by a stated nights count,
// and prices are optional.
func CheckAccommodationState(state *models.SessionState) *CheckResult {
	d := state.Accommodation
	available := map[string]any{}
	var missing []string

	if d.Location != "" {
		available["location"] = d.Location
	} else {
		missing = append(missing, "Location")
	}
	if d.CheckIn != "" {
		available["check_in"] = d.CheckIn
	} else {
		missing = append(missing, "Check-in date")
	}
	switch {
	case d.CheckOut != "":
		available["check_out"] = d.CheckOut
	case d.Nights > 0:
		available["nights"] = d.Nights
	default:
		missing = append(missing, "Check-out date")
	}
	if d.Nights > 0 {
		available["nights"] = d.Nights
	}
	if d.Rate > 0 {
		available["budget_per_night"] = d.Rate
	}
	if d.TotalPrice > 0 {
		available["total_price"] = d.TotalPrice
	}

	if len(missing) > 0 {
		return &CheckResult{
			Status:        StatusMissingData,
			Message:       fmt.Sprintf("Missing accommodation details: %s", strings.Join(missing, ", ")),
			Available:     available,
			MissingFields: missing,
		}
	}
	return &CheckResult{
		Status:    StatusReadyToBook,
		Message:   "All required accommodation details are available.",
		Available: available,
	}
}

// CommitAccommodation turns the accommodation draft into an active booking,
// deriving whatever the user left implicit:
//
//	nights     <- date span when both dates are ISO, else stated count, else 1
//	check-out  <- check-in + nights when absent
//	total      <- stated total, else rate x nights, else search-result scrape
//	rate       <- total / nights when only the total was given
//
// The derived nights count is never below one.
func CommitAccommodation(state *models.SessionState) *models.AccommodationBooking {
	d := state.Accommodation

	nights := d.Nights
	if IsISODate(d.CheckIn) && IsISODate(d.CheckOut) {
		if n, ok := nightsBetween(d.CheckIn, d.CheckOut); ok {
			nights = n
		}
	}
	if nights < 1 {
		nights = 1
	}

	checkOut := d.CheckOut
	if checkOut == "" && IsISODate(d.CheckIn) {
		if out, ok := addNights(d.CheckIn, nights); ok {
			checkOut = out
		}
	}

	rate := d.Rate
	total := 0
	switch {
	case d.TotalPrice > 0:
		// An explicitly stated total wins over the derived one.
		total = d.TotalPrice
	case rate > 0:
		total = rate * nights
	default:
		total = scrapeRupeeAmount(state.ConversationResult, false)
	}
	if total > 0 && rate == 0 {
		rate = total / nights
	}

	booking := &models.AccommodationBooking{
		Location:   d.Location,
		CheckIn:    d.CheckIn,
		CheckOut:   checkOut,
		Nights:     nights,
		Rate:       rate,
		TotalPrice: total,
		BookingID:  AccommodationBookingID(d.Location, d.CheckIn),
	}

	if state.TripPlan.Accommodation != nil {
		utils.GetLogger().Warn("overwriting active accommodation booking",
			zap.String("old_booking_id", state.TripPlan.Accommodation.BookingID),
			zap.String("new_booking_id", booking.BookingID),
		)
	}
	state.TripPlan.Accommodation = booking
	state.Accommodation = models.AccommodationDraft{}
	return booking
}

// CancelAccommodation moves the active accommodation booking into the
// cancellation history.
func CancelAccommodation(state *models.SessionState) (*models.CancelledBooking, error) {
	b := state.TripPlan.Accommodation
	if b == nil {
		return nil, ErrNoActiveBooking("accommodation")
	}
	rec := models.CancelledBooking{
		Type:          "accommodation",
		BookingID:     b.BookingID,
		CancelledAt:   time.Now().UTC(),
		Accommodation: b,
	}
	state.CancelledBookings = append(state.CancelledBookings, rec)
	state.TripPlan.Accommodation = nil
	return &rec, nil
}

func accommodationEmailFields(b *models.AccommodationBooking) []models.BookingField {
	return []models.BookingField{
		{Label: "Location", Text: b.Location},
		{Label: "Check In", Text: b.CheckIn},
		{Label: "Check Out", Text: b.CheckOut},
		{Label: "Nights", Text: fmt.Sprintf("%d", b.Nights)},
		{Label: "Rate Per Night", Amount: b.Rate, IsAmount: true},
		{Label: "Total Price", Amount: b.TotalPrice, IsAmount: true},
		{Label: "Booking ID", Text: b.BookingID},
	}
}

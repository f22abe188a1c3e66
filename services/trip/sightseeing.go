// File: services/trip/sightseeing.go
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
	sightLocationRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:sightseeing|visit|tour|explore)\s+(?:in|at|around|of)?\s*([A-Za-z\s]+?)(?:\s+on|\s+with|\s+for|,|\.|$)`),
		regexp.MustCompile(`(?i)(?:places|attractions|spots)\s+(?:in|at|around)\s+([A-Za-z\s]+?)(?:\s+on|,|\.|$)`),
	}

	sightDateRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)on\s+([A-Za-z]+\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s*\d{4})?)`),
		regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`),
		regexp.MustCompile(`(\d{1,2}[-/]\d{1,2}[-/]\d{4})`),
	}

	sightBudgetRe = regexp.MustCompile(`(?i)(?:budget|spend|cost)\s+(?:of\s+|is\s+|around\s+|about\s+)?(\d{2,6})(?:\s+rupees)?`)
)

// ParseSightseeingDetails extracts sightseeing fields from one utterance
// and merges them into the session's sightseeing draft.
func ParseSightseeingDetails(state *models.SessionState, input string) *ExtractResult {
	extracted := map[string]any{}
	d := &state.Sightseeing

	if m, i, ok := firstMatch(input, sightLocationRes); ok {
		loc := strings.TrimSpace(m[1])
		if loc != "" {
			d.Location = loc
			extracted["location"] = loc
			logProvenance("sightseeing", "location", i)
		}
	}

	if m, i, ok := firstMatch(input, sightDateRes); ok {
		if iso := normalizeDateField(m[1]); iso != "" {
			d.Date = iso
			extracted["date"] = iso
			logProvenance("sightseeing", "date", i)
		}
	}

	if m := sightBudgetRe.FindStringSubmatch(input); m != nil {
		if b := atoiSafe(m[1]); b > 0 {
			d.Budget = b
			extracted["budget"] = b
			logProvenance("sightseeing", "budget", 0)
		}
	}

	msg := "No sightseeing details found in the message."
	if len(extracted) > 0 {
		msg = fmt.Sprintf("Extracted sightseeing details: %v", extracted)
	}
	return &ExtractResult{Status: StatusSuccess, Message: msg, Extracted: extracted}
}

// CheckSightseeingState classifies the sightseeing draft. Location and date
// are required; the budget is optional.
func CheckSightseeingState(state *models.SessionState) *CheckResult {
	d := state.Sightseeing
	available := map[string]any{}
	var missing []string

	if d.Location != "" {
		available["location"] = d.Location
	} else {
		missing = append(missing, "Location")
	}
	if d.Date != "" {
		available["date"] = d.Date
	} else {
		missing = append(missing, "Date")
	}
	if d.Budget > 0 {
		available["budget"] = d.Budget
	}

	if len(missing) > 0 {
		return &CheckResult{
			Status:        StatusMissingData,
			Message:       fmt.Sprintf("Missing sightseeing details: %s", strings.Join(missing, ", ")),
			Available:     available,
			MissingFields: missing,
		}
	}
	return &CheckResult{
		Status:    StatusReadyToBook,
		Message:   "All required sightseeing details are available.",
		Available: available,
	}
}

// CommitSightseeing turns the sightseeing draft into an active booking with
// a booking id and an entry-pass id. An unstated budget falls back to the
// search-result scrape; 0 means unconfirmed.
func CommitSightseeing(state *models.SessionState) *models.SightseeingBooking {
	d := state.Sightseeing

	budget := d.Budget
	if budget == 0 {
		budget = scrapeRupeeAmount(state.ConversationResult, false)
	}

	booking := &models.SightseeingBooking{
		Location:  d.Location,
		Date:      d.Date,
		Budget:    budget,
		BookingID: SightseeingBookingID(d.Location, d.Date),
		EntryID:   EntryID(),
	}

	if state.TripPlan.Sightseeing != nil {
		utils.GetLogger().Warn("overwriting active sightseeing booking",
			zap.String("old_booking_id", state.TripPlan.Sightseeing.BookingID),
			zap.String("new_booking_id", booking.BookingID),
		)
	}
	state.TripPlan.Sightseeing = booking
	state.Sightseeing = models.SightseeingDraft{}
	return booking
}

// CancelSightseeing moves the active sightseeing booking into the
// cancellation history.
func CancelSightseeing(state *models.SessionState) (*models.CancelledBooking, error) {
	b := state.TripPlan.Sightseeing
	if b == nil {
		return nil, ErrNoActiveBooking("sightseeing")
	}
	rec := models.CancelledBooking{
		Type:        "sightseeing",
		BookingID:   b.BookingID,
		CancelledAt: time.Now().UTC(),
		Sightseeing: b,
	}
	state.CancelledBookings = append(state.CancelledBookings, rec)
	state.TripPlan.Sightseeing = nil
	return &rec, nil
}

func sightseeingEmailFields(b *models.SightseeingBooking) []models.BookingField {
	return []models.BookingField{
		{Label: "Location", Text: b.Location},
		{Label: "Date", Text: b.Date},
		{Label: "Budget", Amount: b.Budget, IsAmount: true},
		{Label: "Booking ID", Text: b.BookingID},
		{Label: "Entry ID", Text: b.EntryID},
	}
}

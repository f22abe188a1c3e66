package trip

import (
	"testing"

	"tripplanner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTravelDetails(t *testing.T) {
	t.Run("full sentence", func(t *testing.T) {
		state := &models.SessionState{}
		res := ParseTravelDetails(state, "from Delhi to Jaipur by train on July 25th, 2025, budget 2500 rupees")

		assert.Equal(t, StatusSuccess, res.Status)
		assert.Equal(t, "Delhi", state.Travel.From)
		assert.Equal(t, "Jaipur", state.Travel.To)
		assert.Equal(t, "2025-07-25", state.Travel.Date)
		assert.Equal(t, models.ModeTrain, state.Travel.Mode)
		assert.Equal(t, 2500, state.Travel.Price)
	})

	t.Run("plane aliases to flight", func(t *testing.T) {
		state := &models.SessionState{}
		ParseTravelDetails(state, "from Mumbai to Goa by plane")
		assert.Equal(t, models.ModeFlight, state.Travel.Mode)
	})

	t.Run("transport name by carrier", func(t *testing.T) {
		state := &models.SessionState{}
		ParseTravelDetails(state, "travelling via the Rajdhani train from Delhi to Mumbai")
		assert.Equal(t, "Rajdhani", state.Travel.TransportName)
	})

	t.Run("named express", func(t *testing.T) {
		state := &models.SessionState{}
		ParseTravelDetails(state, "book the Shatabdi Express for me")
		assert.Equal(t, "Shatabdi Express", state.Travel.TransportName)
	})

	t.Run("leading filler words are not part of the name", func(t *testing.T) {
		state := &models.SessionState{}
		ParseTravelDetails(state, "please book the Duronto Express for me")
		assert.Equal(t, "Duronto Express", state.Travel.TransportName)
	})

	t.Run("no details", func(t *testing.T) {
		state := &models.SessionState{}
		res := ParseTravelDetails(state, "hello there")
		assert.Empty(t, res.Extracted)
	})

	t.Run("extraction is additive across turns", func(t *testing.T) {
		state := &models.SessionState{}
		ParseTravelDetails(state, "from Delhi to Jaipur")
		ParseTravelDetails(state, "by train")

		assert.Equal(t, "Delhi", state.Travel.From)
		assert.Equal(t, "Jaipur", state.Travel.To)
		assert.Equal(t, models.ModeTrain, state.Travel.Mode)
	})

	t.Run("restated field overwrites", func(t *testing.T) {
		state := &models.SessionState{}
		ParseTravelDetails(state, "from Delhi to Jaipur")
		ParseTravelDetails(state, "actually from Delhi to Agra")
		assert.Equal(t, "Agra", state.Travel.To)
	})
}

func TestCheckTravelState(t *testing.T) {
	t.Run("missing fields reported in order", func(t *testing.T) {
		state := &models.SessionState{Travel: models.TravelDraft{From: "Delhi"}}
		res := CheckTravelState(state)

		assert.Equal(t, StatusMissingData, res.Status)
		assert.Equal(t, []string{"Destination", "Date", "Mode of travel"}, res.MissingFields)
		assert.Equal(t, "Delhi", res.Available["from"])
	})

	t.Run("ready without optional fields", func(t *testing.T) {
		state := &models.SessionState{Travel: models.TravelDraft{
			From: "Delhi", To: "Jaipur", Date: "2025-07-25", Mode: models.ModeTrain,
		}}
		res := CheckTravelState(state)

		assert.Equal(t, StatusReadyToBook, res.Status)
		assert.Empty(t, res.MissingFields)
	})
}

func TestCommitTravel(t *testing.T) {
	t.Run("books from a complete draft", func(t *testing.T) {
		state := &models.SessionState{Travel: models.TravelDraft{
			From: "Delhi", To: "Jaipur", Date: "2025-07-25", Mode: models.ModeTrain, Price: 2500,
		}}
		b := CommitTravel(state)

		assert.Equal(t, models.ModeTrain, b.Mode)
		assert.Equal(t, 2500, b.Price)
		assert.Regexp(t, `^PNR-[A-Z0-9]{6}$`, b.TicketID)
		assert.Same(t, b, state.TripPlan.Travel)
		assert.Equal(t, models.TravelDraft{}, state.Travel, "draft must be cleared after commit")
	})

	t.Run("price falls back to the search result range lower bound", func(t *testing.T) {
		state := &models.SessionState{
			Travel:             models.TravelDraft{From: "Delhi", To: "Jaipur", Date: "2025-07-25", Mode: models.ModeBus},
			ConversationResult: "Buses run daily, fares ₹450 - ₹700 depending on class.",
		}
		b := CommitTravel(state)
		assert.Equal(t, 450, b.Price)
	})

	t.Run("single quoted price", func(t *testing.T) {
		state := &models.SessionState{
			Travel:             models.TravelDraft{From: "Delhi", To: "Jaipur", Date: "2025-07-25", Mode: models.ModeBus},
			ConversationResult: "A sleeper seat costs ₹550.",
		}
		b := CommitTravel(state)
		assert.Equal(t, 550, b.Price)
	})

	t.Run("no price stays unconfirmed", func(t *testing.T) {
		state := &models.SessionState{
			Travel: models.TravelDraft{From: "Delhi", To: "Jaipur", Date: "2025-07-25", Mode: models.ModeTrain},
		}
		b := CommitTravel(state)
		assert.Zero(t, b.Price)
	})
}

func TestCancelTravel(t *testing.T) {
	t.Run("moves the booking into history", func(t *testing.T) {
		state := &models.SessionState{}
		state.TripPlan.Travel = &models.TravelBooking{
			From: "Delhi", To: "Jaipur", Date: "2025-07-25",
			Mode: models.ModeTrain, Price: 2500, TicketID: "PNR-ABC123",
		}

		rec, err := CancelTravel(state)
		require.NoError(t, err)

		assert.Nil(t, state.TripPlan.Travel)
		require.Len(t, state.CancelledBookings, 1)
		assert.Equal(t, "travel", rec.Type)
		assert.Equal(t, "PNR-ABC123", rec.BookingID)
		assert.Equal(t, 2500, rec.Refund())
	})

	t.Run("nothing to cancel leaves history unchanged", func(t *testing.T) {
		state := &models.SessionState{}
		_, err := CancelTravel(state)

		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Empty(t, state.CancelledBookings)
	})
}

package trip

import (
	"testing"

	"tripplanner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSightseeingDetails(t *testing.T) {
	t.Run("full sentence", func(t *testing.T) {
		state := &models.SessionState{}
		res := ParseSightseeingDetails(state, "sightseeing in Jaipur on July 26th, budget of 1500 rupees")

		assert.Equal(t, StatusSuccess, res.Status)
		assert.Equal(t, "Jaipur", state.Sightseeing.Location)
		assert.Equal(t, "2025-07-26", state.Sightseeing.Date)
		assert.Equal(t, 1500, state.Sightseeing.Budget)
	})

	t.Run("attractions phrasing", func(t *testing.T) {
		state := &models.SessionState{}
		ParseSightseeingDetails(state, "show me attractions in Udaipur")
		assert.Equal(t, "Udaipur", state.Sightseeing.Location)
	})

	t.Run("extraction is additive across turns", func(t *testing.T) {
		state := &models.SessionState{}
		ParseSightseeingDetails(state, "visit Jaipur")
		ParseSightseeingDetails(state, "on July 26")

		assert.Equal(t, "Jaipur", state.Sightseeing.Location)
		assert.Equal(t, "2025-07-26", state.Sightseeing.Date)
	})
}

func TestCheckSightseeingState(t *testing.T) {
	t.Run("budget is optional", func(t *testing.T) {
		state := &models.SessionState{Sightseeing: models.SightseeingDraft{
			Location: "Jaipur", Date: "2025-07-26",
		}}
		res := CheckSightseeingState(state)
		assert.Equal(t, StatusReadyToBook, res.Status)
	})

	t.Run("missing date", func(t *testing.T) {
		state := &models.SessionState{Sightseeing: models.SightseeingDraft{Location: "Jaipur"}}
		res := CheckSightseeingState(state)

		assert.Equal(t, StatusMissingData, res.Status)
		assert.Equal(t, []string{"Date"}, res.MissingFields)
	})
}

func TestCommitSightseeing(t *testing.T) {
	t.Run("books with entry pass", func(t *testing.T) {
		state := &models.SessionState{Sightseeing: models.SightseeingDraft{
			Location: "Jaipur", Date: "2025-07-26", Budget: 1500,
		}}
		b := CommitSightseeing(state)

		assert.Equal(t, 1500, b.Budget)
		assert.Regexp(t, `^SSG-JAI-20250726-[0-9A-F]{8}$`, b.BookingID)
		assert.Regexp(t, `^ENT-[A-Z0-9]{5}$`, b.EntryID)
		assert.Equal(t, models.SightseeingDraft{}, state.Sightseeing, "draft must be cleared after commit")
	})

	t.Run("budget scraped from the search result", func(t *testing.T) {
		state := &models.SessionState{
			Sightseeing:        models.SightseeingDraft{Location: "Jaipur", Date: "2025-07-26"},
			ConversationResult: "Entry to the fort costs ₹500 per person.",
		}
		b := CommitSightseeing(state)
		assert.Equal(t, 500, b.Budget)
	})
}

func TestCancelSightseeing(t *testing.T) {
	state := &models.SessionState{}
	state.TripPlan.Sightseeing = &models.SightseeingBooking{
		Location: "Jaipur", Budget: 1500, BookingID: "SSG-JAI-20250726-DEADBEEF",
	}

	rec, err := CancelSightseeing(state)
	require.NoError(t, err)

	assert.Nil(t, state.TripPlan.Sightseeing)
	assert.Equal(t, "sightseeing", rec.Type)
	assert.Equal(t, 1500, rec.Refund())

	_, err = CancelSightseeing(state)
	assert.Error(t, err)
	assert.Len(t, state.CancelledBookings, 1)
}

package trip

import (
	"testing"

	"tripplanner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccommodationDetails(t *testing.T) {
	t.Run("full sentence", func(t *testing.T) {
		state := &models.SessionState{}
		res := ParseAccommodationDetails(state,
			"hotel in Manali from August 10th to August 14th, 2025, budget 2500 rupees per night, total around 10000 rupees")

		assert.Equal(t, StatusSuccess, res.Status)
		assert.Equal(t, "Manali", state.Accommodation.Location)
		assert.Equal(t, "2025-08-10", state.Accommodation.CheckIn)
		assert.Equal(t, "2025-08-14", state.Accommodation.CheckOut)
		assert.Equal(t, 2500, state.Accommodation.Rate)
		assert.Equal(t, 10000, state.Accommodation.TotalPrice)
	})

	t.Run("explicit year survives the range capture", func(t *testing.T) {
		state := &models.SessionState{}
		ParseAccommodationDetails(state, "hotel in Manali from August 10th, 2026 to August 14th, 2026")

		assert.Equal(t, "2026-08-10", state.Accommodation.CheckIn)
		assert.Equal(t, "2026-08-14", state.Accommodation.CheckOut)
	})

	t.Run("explicit check-in and check-out", func(t *testing.T) {
		state := &models.SessionState{}
		ParseAccommodationDetails(state, "check-in on July 12 and check-out on July 16")

		assert.Equal(t, "2025-07-12", state.Accommodation.CheckIn)
		assert.Equal(t, "2025-07-16", state.Accommodation.CheckOut)
	})

	t.Run("nights count", func(t *testing.T) {
		state := &models.SessionState{}
		ParseAccommodationDetails(state, "staying 3 nights at a hotel in Shimla")

		assert.Equal(t, 3, state.Accommodation.Nights)
		assert.Equal(t, "Shimla", state.Accommodation.Location)
	})

	t.Run("extraction is additive across turns", func(t *testing.T) {
		state := &models.SessionState{}
		ParseAccommodationDetails(state, "hotel in Manali")
		ParseAccommodationDetails(state, "check-in on August 10")

		assert.Equal(t, "Manali", state.Accommodation.Location)
		assert.Equal(t, "2025-08-10", state.Accommodation.CheckIn)
	})

	t.Run("unparsable date stays missing", func(t *testing.T) {
		state := &models.SessionState{}
		ParseAccommodationDetails(state, "check-in on whenever works")
		assert.Empty(t, state.Accommodation.CheckIn)
	})
}

func TestCheckAccommodationState(t *testing.T) {
	t.Run("missing everything", func(t *testing.T) {
		state := &models.SessionState{}
		res := CheckAccommodationState(state)

		assert.Equal(t, StatusMissingData, res.Status)
		assert.Equal(t, []string{"Location", "Check-in date", "Check-out date"}, res.MissingFields)
	})

	t.Run("nights satisfy the check-out requirement", func(t *testing.T) {
		state := &models.SessionState{Accommodation: models.AccommodationDraft{
			Location: "Manali", CheckIn: "2025-08-10", Nights: 4,
		}}
		res := CheckAccommodationState(state)
		assert.Equal(t, StatusReadyToBook, res.Status)
	})
}

func TestCommitAccommodation(t *testing.T) {
	t.Run("nights derived from the date span", func(t *testing.T) {
		state := &models.SessionState{Accommodation: models.AccommodationDraft{
			Location: "Manali", CheckIn: "2025-08-10", CheckOut: "2025-08-14",
			Rate: 2500, TotalPrice: 10000,
		}}
		b := CommitAccommodation(state)

		assert.Equal(t, 4, b.Nights)
		assert.Equal(t, 10000, b.TotalPrice)
		assert.Equal(t, 2500, b.Rate)
		assert.Regexp(t, `^HTL-MAN-20250810-[0-9A-F]{8}$`, b.BookingID)
		assert.Equal(t, models.AccommodationDraft{}, state.Accommodation, "draft must be cleared after commit")
	})

	t.Run("total derived from the rate", func(t *testing.T) {
		state := &models.SessionState{Accommodation: models.AccommodationDraft{
			Location: "Shimla", CheckIn: "2025-08-10", CheckOut: "2025-08-12", Rate: 2000,
		}}
		b := CommitAccommodation(state)

		assert.Equal(t, 2, b.Nights)
		assert.Equal(t, 4000, b.TotalPrice)
	})

	t.Run("rate derived from the total", func(t *testing.T) {
		state := &models.SessionState{Accommodation: models.AccommodationDraft{
			Location: "Shimla", CheckIn: "2025-08-10", Nights: 3, TotalPrice: 9000,
		}}
		b := CommitAccommodation(state)

		assert.Equal(t, 3000, b.Rate)
		assert.Equal(t, "2025-08-13", b.CheckOut, "check-out derived from check-in plus nights")
	})

	t.Run("stated nights ignored when dates disagree", func(t *testing.T) {
		state := &models.SessionState{Accommodation: models.AccommodationDraft{
			Location: "Shimla", CheckIn: "2025-08-10", CheckOut: "2025-08-14", Nights: 2,
		}}
		b := CommitAccommodation(state)
		assert.Equal(t, 4, b.Nights)
	})

	t.Run("price scraped from the search result", func(t *testing.T) {
		state := &models.SessionState{
			Accommodation:      models.AccommodationDraft{Location: "Shimla", CheckIn: "2025-08-10", Nights: 2},
			ConversationResult: "Decent rooms available around ₹1800.",
		}
		b := CommitAccommodation(state)

		assert.Equal(t, 1800, b.TotalPrice)
		assert.Equal(t, 900, b.Rate)
	})

	t.Run("no price stays unconfirmed", func(t *testing.T) {
		state := &models.SessionState{Accommodation: models.AccommodationDraft{
			Location: "Shimla", CheckIn: "2025-08-10", Nights: 2,
		}}
		b := CommitAccommodation(state)

		assert.Zero(t, b.TotalPrice)
		assert.Zero(t, b.Rate)
	})
}

func TestCancelAccommodation(t *testing.T) {
	state := &models.SessionState{}
	state.TripPlan.Accommodation = &models.AccommodationBooking{
		Location: "Manali", TotalPrice: 10000, BookingID: "HTL-MAN-20250810-DEADBEEF",
	}

	rec, err := CancelAccommodation(state)
	require.NoError(t, err)

	assert.Nil(t, state.TripPlan.Accommodation)
	assert.Equal(t, 10000, rec.Refund())

	_, err = CancelAccommodation(state)
	assert.Error(t, err)
	assert.Len(t, state.CancelledBookings, 1)
}

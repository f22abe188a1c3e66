package trip

import (
	"testing"

	"tripplanner/models"

	"github.com/stretchr/testify/assert"
)

func TestTicketIDFormats(t *testing.T) {
	draft := models.TravelDraft{From: "Delhi", To: "Agra", Date: "2025-07-12"}

	cases := []struct {
		mode    models.TravelMode
		pattern string
	}{
		{models.ModeTrain, `^PNR-[A-Z0-9]{6}$`},
		{models.ModeFlight, `^BRD-[A-Z0-9]{7}$`},
		{models.ModeBus, `^TKT-[A-Z0-9]{8}$`},
		{models.ModeFerry, `^FRY-[A-Z0-9]{7}$`},
		{models.ModeMetro, `^MTR-[A-Z0-9]{5}$`},
		{models.ModeTram, `^TRM-[A-Z0-9]{6}$`},
	}
	for _, tc := range cases {
		t.Run(string(tc.mode), func(t *testing.T) {
			assert.Regexp(t, tc.pattern, TicketID(tc.mode, draft))
		})
	}

	t.Run("cab uses route codes", func(t *testing.T) {
		assert.Equal(t, "CAB-DE-AG", TicketID(models.ModeCab, draft))
	})
	t.Run("car uses the travel date", func(t *testing.T) {
		assert.Equal(t, "CAR-20250712", TicketID(models.ModeCar, draft))
	})
}

func TestCompositeBookingIDs(t *testing.T) {
	t.Run("accommodation", func(t *testing.T) {
		id := AccommodationBookingID("Manali", "2025-08-10")
		assert.Regexp(t, `^HTL-MAN-20250810-[0-9A-F]{8}$`, id)
	})
	t.Run("sightseeing", func(t *testing.T) {
		id := SightseeingBookingID("Jaipur", "2025-07-26")
		assert.Regexp(t, `^SSG-JAI-20250726-[0-9A-F]{8}$`, id)
	})
	t.Run("missing location falls back to the prefix", func(t *testing.T) {
		id := AccommodationBookingID("", "2025-08-10")
		assert.Regexp(t, `^HTL-HTL-20250810-[0-9A-F]{8}$`, id)
	})
	t.Run("short location kept whole", func(t *testing.T) {
		id := SightseeingBookingID("Ooty", "2025-07-26")
		assert.Regexp(t, `^SSG-OOT-20250726-[0-9A-F]{8}$`, id)
	})
}

func TestEntryID(t *testing.T) {
	assert.Regexp(t, `^ENT-[A-Z0-9]{5}$`, EntryID())
}

package trip

import (
	"testing"

	"tripplanner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBill(t *testing.T) {
	t.Run("full plan", func(t *testing.T) {
		var plan models.TripPlan
		plan.Travel = &models.TravelBooking{
			From: "Delhi", To: "Manali", Date: "2025-08-09", Mode: models.ModeBus,
			Price: 1200, TicketID: "TKT-AAAAAAAA",
		}
		plan.Accommodation = &models.AccommodationBooking{
			Location: "Manali", CheckIn: "2025-08-10", CheckOut: "2025-08-14",
			Nights: 4, Rate: 2500, TotalPrice: 10000, BookingID: "HTL-MAN-20250810-AAAAAAAA",
		}
		plan.Sightseeing = &models.SightseeingBooking{
			Location: "Manali", Date: "2025-08-11", Budget: 1500, BookingID: "SSG-MAN-20250811-AAAAAAAA",
		}

		bill := CalculateBill(plan)

		assert.Equal(t, 1200, bill.Travel.Subtotal)
		assert.Equal(t, 10000, bill.Accommodation.Subtotal)
		assert.Equal(t, 1500, bill.Sightseeing.Subtotal)
		assert.Equal(t, 12700, bill.Total)

		require.Len(t, bill.Accommodation.Items, 1)
		item := bill.Accommodation.Items[0]
		assert.Equal(t, 4, item.Nights)
		assert.Equal(t, 2500, item.RatePerNight)
		assert.True(t, item.Confirmed)
	})

	t.Run("unconfirmed price still gets a line", func(t *testing.T) {
		var plan models.TripPlan
		plan.Sightseeing = &models.SightseeingBooking{
			Location: "Jaipur", Date: "2025-07-26", Budget: 0, BookingID: "SSG-JAI-20250726-AAAAAAAA",
		}

		bill := CalculateBill(plan)

		require.Len(t, bill.Sightseeing.Items, 1)
		assert.False(t, bill.Sightseeing.Items[0].Confirmed)
		assert.Zero(t, bill.Sightseeing.Items[0].Amount)
		assert.Zero(t, bill.Total)
	})

	t.Run("empty plan", func(t *testing.T) {
		bill := CalculateBill(models.TripPlan{})

		assert.Empty(t, bill.Travel.Items)
		assert.Empty(t, bill.Accommodation.Items)
		assert.Empty(t, bill.Sightseeing.Items)
		assert.Zero(t, bill.Total)
	})
}

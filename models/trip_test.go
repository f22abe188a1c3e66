package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTravelMode(t *testing.T) {
	cases := []struct {
		input string
		want  TravelMode
		ok    bool
	}{
		{"train", ModeTrain, true},
		{"flight", ModeFlight, true},
		{"plane", ModeFlight, true},
		{"ferry", ModeFerry, true},
		{"rocket", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseTravelMode(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTripPlanIsEmpty(t *testing.T) {
	var plan TripPlan
	assert.True(t, plan.IsEmpty())

	plan.Travel = &TravelBooking{TicketID: "PNR-ABC123"}
	assert.False(t, plan.IsEmpty())
}

func TestCancelledBookingRefund(t *testing.T) {
	assert.Equal(t, 2500, CancelledBooking{Travel: &TravelBooking{Price: 2500}}.Refund())
	assert.Equal(t, 10000, CancelledBooking{Accommodation: &AccommodationBooking{TotalPrice: 10000}}.Refund())
	assert.Equal(t, 1500, CancelledBooking{Sightseeing: &SightseeingBooking{Budget: 1500}}.Refund())
	assert.Zero(t, CancelledBooking{}.Refund())
}

func TestConflictReportReason(t *testing.T) {
	report := ConflictReport{Conflict: true, Reasons: []string{"a", "b"}}
	assert.Equal(t, "a; b", report.Reason())
	assert.Empty(t, ConflictReport{}.Reason())
}

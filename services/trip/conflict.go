// File: services/trip/conflict.go
package trip

import (
	"fmt"

	"tripplanner/models"
)

// CheckTripConflicts recomputes every cross-booking consistency check from
// scratch and overwrites the session's conflict fields with the outcome.
// Running it twice on unchanged state yields the same report; clearing a
// conflicting booking clears the corresponding reason on the next run.
//
// Checks, in order:
//
//	travel date after the hotel check-in
//	sightseeing date outside the hotel stay window
//	combined cost above the stated trip budget
//
// Date checks only run on canonical ISO dates; a malformed date is treated
// as unknown rather than conflicting. All failing checks are reported, not
// just the first.
func CheckTripConflicts(state *models.SessionState) models.ConflictReport {
	var reasons []string
	plan := state.TripPlan

	if plan.Travel != nil && plan.Accommodation != nil &&
		IsISODate(plan.Travel.Date) && IsISODate(plan.Accommodation.CheckIn) {
		if plan.Travel.Date > plan.Accommodation.CheckIn {
			reasons = append(reasons, fmt.Sprintf(
				"travel date %s is after hotel check-in %s",
				plan.Travel.Date, plan.Accommodation.CheckIn))
		}
	}

	if plan.Sightseeing != nil && plan.Accommodation != nil &&
		IsISODate(plan.Sightseeing.Date) &&
		IsISODate(plan.Accommodation.CheckIn) && IsISODate(plan.Accommodation.CheckOut) {
		if plan.Sightseeing.Date < plan.Accommodation.CheckIn ||
			plan.Sightseeing.Date > plan.Accommodation.CheckOut {
			reasons = append(reasons, fmt.Sprintf(
				"sightseeing date %s is outside the hotel stay %s to %s",
				plan.Sightseeing.Date, plan.Accommodation.CheckIn, plan.Accommodation.CheckOut))
		}
	}

	if state.Budget > 0 {
		if total := totalTripCost(plan); total > state.Budget {
			reasons = append(reasons, fmt.Sprintf(
				"total trip cost %d exceeds the budget %d", total, state.Budget))
		}
	}

	report := models.ConflictReport{Conflict: len(reasons) > 0, Reasons: reasons}
	state.Conflict = report.Conflict
	state.ConflictReason = report.Reason()
	return report
}

// totalTripCost sums the priced field of each active booking. Unconfirmed
// prices count as zero.
func totalTripCost(plan models.TripPlan) int {
	total := 0
	if plan.Travel != nil {
		total += plan.Travel.Price
	}
	if plan.Accommodation != nil {
		total += plan.Accommodation.TotalPrice
	}
	if plan.Sightseeing != nil {
		total += plan.Sightseeing.Budget
	}
	return total
}

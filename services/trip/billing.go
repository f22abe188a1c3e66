// File: services/trip/billing.go
package trip

import (
	"fmt"

	"tripplanner/models"
)

// CalculateBill builds the cost breakdown for the active trip plan. Every
// active booking gets a line even when its price is still unconfirmed; an
// unconfirmed line contributes 0 and is flagged so renderers can print
// "price to be confirmed" instead of a number.
func CalculateBill(plan models.TripPlan) models.Bill {
	var bill models.Bill

	if t := plan.Travel; t != nil {
		item := models.BillItem{
			Description: fmt.Sprintf("%s from %s to %s", t.Mode, t.From, t.To),
			Date:        t.Date,
			BookingID:   t.TicketID,
			Amount:      t.Price,
			Confirmed:   t.Price > 0,
		}
		bill.Travel.Items = append(bill.Travel.Items, item)
		bill.Travel.Subtotal += item.Amount
	}

	if a := plan.Accommodation; a != nil {
		item := models.BillItem{
			Description:  fmt.Sprintf("stay in %s", a.Location),
			CheckIn:      a.CheckIn,
			CheckOut:     a.CheckOut,
			Nights:       a.Nights,
			RatePerNight: a.Rate,
			BookingID:    a.BookingID,
			Amount:       a.TotalPrice,
			Confirmed:    a.TotalPrice > 0,
		}
		bill.Accommodation.Items = append(bill.Accommodation.Items, item)
		bill.Accommodation.Subtotal += item.Amount
	}

	if s := plan.Sightseeing; s != nil {
		item := models.BillItem{
			Description: fmt.Sprintf("sightseeing in %s", s.Location),
			Date:        s.Date,
			BookingID:   s.BookingID,
			Amount:      s.Budget,
			Confirmed:   s.Budget > 0,
		}
		bill.Sightseeing.Items = append(bill.Sightseeing.Items, item)
		bill.Sightseeing.Subtotal += item.Amount
	}

	bill.Total = bill.Travel.Subtotal + bill.Accommodation.Subtotal + bill.Sightseeing.Subtotal
	return bill
}

// File: services/notification/render.go
package notification

import (
	"fmt"
	"html"
	"strings"

	"tripplanner/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.English)

// FormatRupees renders an amount with digit grouping, e.g. "₹12,500.00".
func FormatRupees(amount int) string {
	return currencyPrinter.Sprintf("₹%.2f", float64(amount))
}

// RenderBookingEmail renders one booking document into a subject, an HTML
// body and a plain-text body. Fields render in declaration order; rows with
// an empty text value or a zero amount are dropped, so an unconfirmed price
// simply does not appear.
func RenderBookingEmail(email models.BookingEmail) (subject, htmlBody, plainBody string) {
	title := titleCase(email.BookingType)
	subject = fmt.Sprintf("%s Confirmation - %s", title, email.BookingID)

	name := email.UserName
	if name == "" {
		name = "Traveller"
	}

	var hb, pb strings.Builder
	hb.WriteString("<html><body>")
	hb.WriteString(fmt.Sprintf("<h2>%s Confirmation</h2>", html.EscapeString(title)))
	hb.WriteString(fmt.Sprintf("<p>Dear %s,</p>", html.EscapeString(name)))
	hb.WriteString("<p>Here are your booking details:</p><table>")

	pb.WriteString(fmt.Sprintf("%s Confirmation\n\nDear %s,\n\nHere are your booking details:\n\n", title, name))

	for _, f := range email.Fields {
		var value string
		switch {
		case f.IsAmount && f.Amount > 0:
			value = FormatRupees(f.Amount)
		case !f.IsAmount && f.Text != "":
			value = f.Text
		default:
			continue
		}
		hb.WriteString(fmt.Sprintf("<tr><td><b>%s</b></td><td>%s</td></tr>",
			html.EscapeString(f.Label), html.EscapeString(value)))
		pb.WriteString(fmt.Sprintf("%s: %s\n", f.Label, value))
	}

	hb.WriteString("</table><p>Happy travels!</p></body></html>")
	pb.WriteString("\nHappy travels!\n")

	return subject, hb.String(), pb.String()
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

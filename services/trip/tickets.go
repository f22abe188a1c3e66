package trip

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"tripplanner/models"

	"github.com/google/uuid"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomCode(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(codeAlphabet[rand.Intn(len(codeAlphabet))])
	}
	return sb.String()
}

// TicketID generates a travel ticket identifier for the given mode. Each
// mode has its own exact format; cab and car ids are synthesized from the
// route and date instead of a random code.
func TicketID(mode models.TravelMode, draft models.TravelDraft) string {
	switch mode {
	case models.ModeTrain:
		return "PNR-" + randomCode(6)
	case models.ModeFlight:
		return "BRD-" + randomCode(7)
	case models.ModeBus:
		return "TKT-" + randomCode(8)
	case models.ModeFerry:
		return "FRY-" + randomCode(7)
	case models.ModeMetro:
		return "MTR-" + randomCode(5)
	case models.ModeTram:
		return "TRM-" + randomCode(6)
	case models.ModeCab:
		return "CAB-" + upperPrefix(draft.From, 2) + "-" + upperPrefix(draft.To, 2)
	case models.ModeCar:
		return "CAR-" + strings.ReplaceAll(draft.Date, "-", "")
	}
	// Unreachable: extraction only produces modes from the closed set.
	return "TKT-" + randomCode(8)
}

// AccommodationBookingID builds "HTL-<LOC3>-<DATE8>-<UUID8>".
func AccommodationBookingID(location, checkIn string) string {
	return compositeBookingID("HTL", location, checkIn)
}

// SightseeingBookingID builds "SSG-<LOC3>-<DATE8>-<UUID8>".
func SightseeingBookingID(location, date string) string {
	return compositeBookingID("SSG", location, date)
}

// EntryID generates a generic entry-pass identifier.
func EntryID() string {
	return "ENT-" + randomCode(5)
}

func compositeBookingID(prefix, location, date string) string {
	locCode := upperPrefix(location, 3)
	if locCode == "" {
		locCode = prefix
	}
	dateCode := strings.ReplaceAll(date, "-", "")
	if dateCode == "" {
		dateCode = time.Now().Format("20060102")
	}
	suffix := strings.ToUpper(uuid.New().String()[:8])
	return fmt.Sprintf("%s-%s-%s-%s", prefix, locCode, dateCode, suffix)
}

func upperPrefix(s string, n int) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) > n {
		return s[:n]
	}
	return s
}

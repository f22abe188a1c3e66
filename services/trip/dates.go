package trip

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tripplanner/config"
)

var (
	ordinalSuffixRe = regexp.MustCompile(`(\d+)(st|nd|rd|th)`)
	monthDayRe      = regexp.MustCompile(`^[A-Za-z]+\s+\d{1,2}(?:,\s*\d{4})?$`)
	isoDateRe       = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dayMonthYearRe  = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{4})$`)
	fourDigitYearRe = regexp.MustCompile(`\d{4}`)
)

// planningYear is the year assumed for dates given without one.
func planningYear() int {
	if y := config.AppConfig.PlanningYear; y > 0 {
		return y
	}
	return 2025
}

// IsISODate reports whether s looks like a canonical "YYYY-MM-DD" date.
// Downstream date arithmetic must check this before parsing; a non-ISO
// string is treated as "still missing" rather than crashed on.
func IsISODate(s string) bool {
	return isoDateRe.MatchString(s)
}

// NormalizeDate converts the supported textual date families into the
// canonical ISO form:
//
//	"August 10th" / "August 10, 2025"  (missing year -> planning year)
//	"2025-08-10"                       (passthrough)
//	"10/08/2025" / "10-08-2025"        (day/month/year, reordered)
//
// Unlike the caller-facing extractors, which simply skip fields they cannot
// parse, this returns an explicit error for unparsable input.
func NormalizeDate(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("empty date string")
	}

	// Strip ordinal suffixes (1st, 2nd, 3rd, 4th).
	s = ordinalSuffixRe.ReplaceAllString(s, "$1")

	switch {
	case isoDateRe.MatchString(s):
		return s, nil

	case monthDayRe.MatchString(s):
		if !fourDigitYearRe.MatchString(s) {
			s = fmt.Sprintf("%s, %d", s, planningYear())
		}
		s = capitalizeMonth(s)
		for _, layout := range []string{"January 2, 2006", "Jan 2, 2006"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format("2006-01-02"), nil
			}
		}
		return "", fmt.Errorf("unrecognized month-day date %q", raw)

	case dayMonthYearRe.MatchString(s):
		m := dayMonthYearRe.FindStringSubmatch(s)
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		iso := fmt.Sprintf("%s-%02d-%02d", m[3], month, day)
		// Reject ISO-shaped non-dates like "2025-13-13".
		if _, err := time.Parse("2006-01-02", iso); err != nil {
			return "", fmt.Errorf("invalid calendar date %q", raw)
		}
		return iso, nil
	}

	return "", fmt.Errorf("unrecognized date format %q", raw)
}

// normalizeDateField is the extractor-side wrapper: a parse failure yields
// the empty string, i.e. the field stays missing.
func normalizeDateField(raw string) string {
	iso, err := NormalizeDate(raw)
	if err != nil {
		return ""
	}
	return iso
}

func capitalizeMonth(s string) string {
	parts := strings.SplitN(s, " ", 2)
	if len(parts) < 2 {
		return s
	}
	month := strings.ToLower(parts[0])
	return strings.ToUpper(month[:1]) + month[1:] + " " + parts[1]
}

// nightsBetween computes the stay length between two ISO dates, clamped to
// a minimum of one night.
func nightsBetween(checkIn, checkOut string) (int, bool) {
	in, err := time.Parse("2006-01-02", checkIn)
	if err != nil {
		return 0, false
	}
	out, err := time.Parse("2006-01-02", checkOut)
	if err != nil {
		return 0, false
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return nights, true
}

// addNights returns the ISO date n nights after checkIn.
func addNights(checkIn string, n int) (string, bool) {
	in, err := time.Parse("2006-01-02", checkIn)
	if err != nil {
		return "", false
	}
	return in.AddDate(0, 0, n).Format("2006-01-02"), true
}

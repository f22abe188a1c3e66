package trip

import (
	"regexp"
	"strconv"

	"tripplanner/utils"

	"go.uber.org/zap"
)

// firstMatch runs an ordered cascade of patterns against the input and
// returns the submatches of the first one that fires, together with the
// pattern's index. Declaration order is significant: overlapping patterns
// are resolved by position, not by match quality.
func firstMatch(input string, patterns []*regexp.Regexp) ([]string, int, bool) {
	for i, re := range patterns {
		if m := re.FindStringSubmatch(input); m != nil {
			return m, i, true
		}
	}
	return nil, -1, false
}

// logProvenance records which pattern produced a field, since overlapping
// alternatives are a real source of mis-extraction.
func logProvenance(domain, field string, pattern int) {
	utils.GetLogger().Debug("field extracted",
		zap.String("domain", domain),
		zap.String("field", field),
		zap.Int("pattern", pattern),
	)
}

// Currency scraping for the conversation_result fallback. The range form
// takes the lower bound.
var (
	rupeeRangeRe  = regexp.MustCompile(`₹\s*(\d+)\s*-\s*₹\s*(\d+)`)
	rupeeAmountRe = regexp.MustCompile(`₹\s*(\d+)`)
)

// scrapeRupeeAmount pulls a currency amount out of unstructured search
// output; 0 when nothing matches.
func scrapeRupeeAmount(text string, allowRange bool) int {
	if allowRange {
		if m := rupeeRangeRe.FindStringSubmatch(text); m != nil {
			return atoiSafe(m[1])
		}
	}
	if m := rupeeAmountRe.FindStringSubmatch(text); m != nil {
		return atoiSafe(m[1])
	}
	return 0
}

// atoiSafe converts digits already validated by a regex; 0 on failure.
func atoiSafe(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

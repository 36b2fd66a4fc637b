package recognize

import (
	"regexp"
	"strings"
)

var (
	reDate   = regexp.MustCompile(`\b20\d{2}[.\-/]\d{1,2}[.\-/]\d{1,2}\b|\d{4}년`)
	reCurr   = regexp.MustCompile(`원|₩|krw|\$|usd`)
	reAmount = regexp.MustCompile(`\d{1,3}(,\d{3})+|\d{4,}`)
)

func hasDatePattern(s string) bool     { return reDate.MatchString(s) }
func hasCurrencyPattern(s string) bool { return reCurr.MatchString(s) }
func hasAmountPattern(s string) bool   { return reAmount.MatchString(s) }

// naive heuristic confidence based on decoded text characteristics, on a
// 0..100 scale. Boosts when common receipt/certificate artifacts show up
// (date-ish, currency-ish, amount-ish).
func heuristicConfidence(txt string) float64 {
	txtL := strings.ToLower(txt)
	score := 20.0 // base
	if hasDatePattern(txtL) {
		score += 20
	}
	if hasCurrencyPattern(txtL) {
		score += 15
	}
	if hasAmountPattern(txtL) {
		score += 15
	}
	if len(txt) > 120 {
		score += 10
	} // enough content
	if score > 100 {
		score = 100
	}
	return score
}

// Package fields holds the rule-based text extractors. Every extractor is a
// pure function over raw OCR text: zero or more typed candidates out, empty
// input tolerated, pattern failures absorbed as "no candidate produced".
package fields

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/certhub/docscan/internal/entity"
)

// reAmount matches an optional label word, then either comma-grouped digit
// groups of 3 or a bare run of 4+ digits, then an optional 원 unit marker.
var reAmount = regexp.MustCompile(`([가-힣A-Za-z]+)?\s*[:\s]*([0-9]{1,3}(?:,[0-9]{3})+|\d{4,})\s*원?`)

// ExtractAmounts pulls labeled monetary candidates out of raw text. Grouping
// separators are stripped before parsing; non-positive or unparseable values
// are discarded. The original label token is preserved alongside each value.
func ExtractAmounts(text string) []entity.FieldCandidate[int64] {
	if text == "" {
		return nil
	}
	var out []entity.FieldCandidate[int64]
	for _, m := range reAmount.FindAllStringSubmatch(text, -1) {
		n, err := strconv.ParseInt(strings.ReplaceAll(m[2], ",", ""), 10, 64)
		if err != nil || n <= 0 {
			continue
		}
		out = append(out, entity.FieldCandidate[int64]{
			Label: strings.TrimSpace(m[1]),
			Value: n,
		})
	}
	return out
}

package fields

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/certhub/docscan/internal/entity"
)

var (
	// full-year style: 2024.3.5 / 2024-03-05 / 2024년 3월 5일
	reDateFull = regexp.MustCompile(`(\d{4})[.\-/년\s](\d{1,2})[.\-/월\s](\d{1,2})일?`)
	// two-digit-year style: 24.3.5 / 24-03-05
	reDateShort = regexp.MustCompile(`(\d{2})[.\-/](\d{1,2})[.\-/](\d{1,2})`)
	// label keywords looked for in the surrounding context of a date match
	reDateLabel = regexp.MustCompile(`결제|승인|거래|취득|합격|발급`)
)

// labelContextPad is how many runes of context on each side of a date match
// are scanned for a label keyword.
const labelContextPad = 5

// NormalizeDate rewrites a matched date string to YYYY-MM-DD. Two-digit
// years above 50 map to 19xx, the rest to 20xx. Returns "" when the value
// does not split into exactly year, month and day.
func NormalizeDate(value string) string {
	if value == "" {
		return ""
	}
	cleaned := strings.NewReplacer("년", "-", "월", "-", "일", "", ".", "-", "/", "-").Replace(value)
	cleaned = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, cleaned)

	var parts []string
	for _, p := range strings.Split(cleaned, "-") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) != 3 {
		return ""
	}

	year, month, day := parts[0], parts[1], parts[2]
	if len(year) == 2 {
		if n, err := strconv.Atoi(year); err == nil && n > 50 {
			year = "19" + year
		} else {
			year = "20" + year
		}
	}
	if len(month) == 1 {
		month = "0" + month
	}
	if len(day) == 1 {
		day = "0" + day
	}
	return year + "-" + month + "-" + day
}

// ExtractDates pulls normalized date candidates out of raw text, attaching a
// label guessed from the surrounding context of each match.
func ExtractDates(text string) []entity.FieldCandidate[string] {
	if text == "" {
		return nil
	}
	var out []entity.FieldCandidate[string]
	for _, re := range []*regexp.Regexp{reDateFull, reDateShort} {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			normalized := NormalizeDate(text[loc[0]:loc[1]])
			if normalized == "" {
				continue
			}
			context := runeContext(text, loc[0], loc[1], labelContextPad)
			out = append(out, entity.FieldCandidate[string]{
				Label: reDateLabel.FindString(context),
				Value: normalized,
			})
		}
	}
	return out
}

// runeContext widens [start,end) by pad runes on each side, staying on rune
// boundaries.
func runeContext(s string, start, end, pad int) string {
	for i := 0; i < pad && start > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(s[:start])
		start -= size
	}
	for i := 0; i < pad && end < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}
	return s[start:end]
}

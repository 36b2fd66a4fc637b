package fields

import (
	"regexp"
	"strings"
)

// Labeled-field and trailing-qualifier patterns for name-like substrings.
// Deliberately over-inclusive: recall matters more than precision here, the
// catalog matcher narrows the set afterwards.
var (
	certNameCandidatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)자격증명[:\s]*([^\n\r]{2,60})`),
		regexp.MustCompile(`(?i)자격명[:\s]*([^\n\r]{2,60})`),
		regexp.MustCompile(`(?i)Certificate[:\s]*([^\n\r]{2,60})`),
		regexp.MustCompile(`(?i)Certificate?\s+([A-Za-z0-9\s\-&]{2,80})`),
	}
	reNameQualifierTail = regexp.MustCompile(`(?i)([A-Za-z0-9가-힣\s\-&]{3,80})(?:자격|시험|Cert|Certificate|Certification)`)
)

// ExtractCertNameCandidates produces a deduplicated, order-preserving set of
// certificate-name-like substrings for later catalog matching.
func ExtractCertNameCandidates(text string) []string {
	if text == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	for _, re := range certNameCandidatePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			add(m[1])
		}
	}
	for _, m := range reNameQualifierTail.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	return out
}

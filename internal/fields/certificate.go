package fields

import (
	"regexp"
	"strings"

	"github.com/certhub/docscan/internal/entity"
)

var (
	certNamePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:자격증명|자격명|Certificate)[:\s]*([^\n\r]+)`),
		regexp.MustCompile(`(?i)(정보처리기사|PMP|AWS|Azure|GCP|토익|토플|JLPT|HSK)`),
	}
	certIssuerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`발급기관[:\s]*([^\n\r]+)`),
		regexp.MustCompile(`주관기관[:\s]*([^\n\r]+)`),
		regexp.MustCompile(`시행기관[:\s]*([^\n\r]+)`),
	}
	// date label priority: acquisition > pass > issuance
	certDatePriority = []string{"취득", "합격", "발급"}
)

// ExtractCertificateFields combines name, issuer and date sub-patterns into
// the per-page certificate extraction. The certificate date is the first
// labeled date candidate found when scanning labels in priority order.
func ExtractCertificateFields(text string) entity.CertificateFields {
	if text == "" {
		return entity.CertificateFields{}
	}
	out := entity.CertificateFields{
		Name:   firstSubmatch(certNamePatterns, text),
		Issuer: firstSubmatch(certIssuerPatterns, text),
	}

	var labeled []entity.FieldCandidate[string]
	for _, d := range ExtractDates(text) {
		if d.Label != "" && containsAnyOf(d.Label, certDatePriority) {
			labeled = append(labeled, d)
		}
	}
	for _, key := range certDatePriority {
		for _, d := range labeled {
			if strings.Contains(d.Label, key) {
				out.Date = d.Value
				return out
			}
		}
	}
	return out
}

func firstSubmatch(patterns []*regexp.Regexp, text string) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); len(m) > 1 && m[1] != "" {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

func containsAnyOf(s string, keys []string) bool {
	for _, k := range keys {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

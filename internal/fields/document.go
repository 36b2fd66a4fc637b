package fields

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Single-document (coarse-path) extractors.

var documentCertNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:자격증명|자격명|시험명|자격종목)\s*[:\s]*([가-힣a-zA-Z0-9\s]+?)(?:\s|$|합격|급수|등급)`),
	regexp.MustCompile(`(?i)(정보처리기사|정보처리산업기사|컴퓨터활용능력|네트워크관리사|SQLD|SQLP|빅데이터분석기사|데이터분석전문가|AWS|Azure|GCP|PMP|CCNA|CCNP|CCIE|토익|토플|JLPT|HSK)`),
}

// ExtractCertificationName tries labeled-field patterns first, then the
// well-known name list, accepting the first match within a 2-50 rune bound.
func ExtractCertificationName(text string) string {
	if text == "" {
		return ""
	}
	for _, re := range documentCertNamePatterns {
		m := re.FindStringSubmatch(text)
		if len(m) < 2 || m[1] == "" {
			continue
		}
		name := strings.TrimSpace(m[1])
		if n := utf8.RuneCountInString(name); n >= 2 && n <= 50 {
			return name
		}
	}
	return ""
}

// Explicit "N급" tokens are tried before bare class tokens: certification
// names like 정보처리기사 embed 기사, which would otherwise shadow the actual
// grade on the page.
var gradePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:급수|등급|자격등급)\s*[:\s]*([0-9]+급|기사|산업기사|기능사|1급|2급|3급|4급)`),
	regexp.MustCompile(`([0-9]+급)`),
	regexp.MustCompile(`(산업기사|기능사|기사)`),
}

// ExtractGrade matches explicit grade/level labels or bare grade tokens.
func ExtractGrade(text string) string {
	if text == "" {
		return ""
	}
	for _, re := range gradePatterns {
		m := re.FindStringSubmatch(text)
		if len(m) < 2 || m[1] == "" {
			continue
		}
		grade := strings.TrimSpace(m[1])
		if n := utf8.RuneCountInString(grade); n >= 1 && n <= 20 {
			return grade
		}
	}
	return ""
}

var finalPaymentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:최종|결제|합계|총액|청구|최종결제|최종금액)\s*[:\s]*([0-9,]+)\s*원`),
	regexp.MustCompile(`([0-9,]+)\s*원`),
}

// ExtractFinalPaymentAmount collects every amount match from both pattern
// passes and returns the largest one's original comma-preserved text. On
// receipts the final payable total is reliably the largest number on the
// page, so unlike PickFinalAmount this path does fall back to unlabeled
// amounts.
func ExtractFinalPaymentAmount(text string) string {
	if text == "" {
		return ""
	}
	type hit struct {
		value int64
		text  string
	}
	var hits []hit
	for _, re := range finalPaymentPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			n, err := strconv.ParseInt(strings.ReplaceAll(m[1], ",", ""), 10, 64)
			if err != nil || n <= 0 {
				continue
			}
			hits = append(hits, hit{value: n, text: m[1]})
		}
	}
	if len(hits) == 0 {
		return ""
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].value > hits[j].value })
	return hits[0].text
}

// ParseAmount strips grouping separators and parses an extracted amount
// string; 0 when empty or unparseable.
func ParseAmount(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

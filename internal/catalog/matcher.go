package catalog

import (
	"strings"

	"github.com/certhub/docscan/internal/entity"
)

// gradeKeywords are the grade-tier words subject to the symmetry rule: a
// candidate carrying one of these only matches catalog names that also carry
// one, and never a bare base name.
var gradeKeywords = []string{"associate", "professional", "expert", "advanced", "foundation", "practitioner"}

// Normalize lowercases and strips every character outside ASCII letters,
// digits and Hangul syllables, so punctuation and spacing differences do not
// block a match.
func Normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r >= 0xAC00 && r <= 0xD7A3:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Matcher fuzzy-matches extracted name candidates against the catalog.
type Matcher struct {
	names      []string          // deduplicated catalog names, catalog order
	organizers map[string]string // name -> organizer, first entry wins
}

func NewMatcher(entries []Entry) *Matcher {
	m := &Matcher{organizers: make(map[string]string)}
	seen := make(map[string]struct{})
	for _, e := range entries {
		if e.CertificationName == "" {
			continue
		}
		if _, ok := seen[e.CertificationName]; ok {
			continue
		}
		seen[e.CertificationName] = struct{}{}
		m.names = append(m.names, e.CertificationName)
		m.organizers[e.CertificationName] = e.Organizer
	}
	return m
}

// Match returns the deduplicated subset of catalog names matched by at least
// one candidate. Matching is substring containment in either direction after
// normalization, gated by the grade-keyword symmetry rule. Results are
// neither ranked nor limited.
func (m *Matcher) Match(candidates []string) []string {
	var out []string
	matched := make(map[string]struct{})
	seenCand := make(map[string]struct{})

	for _, candidate := range candidates {
		if _, ok := seenCand[candidate]; ok {
			continue
		}
		seenCand[candidate] = struct{}{}

		normCandidate := Normalize(candidate)
		if normCandidate == "" {
			continue
		}
		hasGrade := containsGradeKeyword(normCandidate)

		for _, name := range m.names {
			normName := Normalize(name)
			if hasGrade && !containsGradeKeyword(normName) {
				continue
			}
			if !strings.Contains(normCandidate, normName) && !strings.Contains(normName, normCandidate) {
				continue
			}
			if _, ok := matched[name]; !ok {
				matched[name] = struct{}{}
				out = append(out, name)
			}
			break
		}
	}
	return out
}

// ResolvePage picks the final certificate name and issuer for one page,
// preferring the catalog-resolved name and its catalog organizer over the
// raw OCR-extracted values whenever a matched name lines up with one of the
// page's candidates.
func (m *Matcher) ResolvePage(page entity.PageExtraction, matchedNames []string) (name, issuer string) {
	pageCandidates := make([]string, 0, len(page.CertNameCandidates)+1)
	pageCandidates = append(pageCandidates, page.CertNameCandidates...)
	if page.Certificate.Name != "" {
		pageCandidates = append(pageCandidates, page.Certificate.Name)
	}

	for _, matched := range matchedNames {
		normM := Normalize(matched)
		for _, cand := range pageCandidates {
			normC := Normalize(cand)
			if normC == "" {
				continue
			}
			if normC == normM || strings.Contains(normC, normM) || strings.Contains(normM, normC) {
				issuer = m.organizers[matched]
				if issuer == "" {
					issuer = page.Certificate.Issuer
				}
				return matched, issuer
			}
		}
	}
	return page.Certificate.Name, page.Certificate.Issuer
}

func containsGradeKeyword(norm string) bool {
	for _, g := range gradeKeywords {
		if strings.Contains(norm, g) {
			return true
		}
	}
	return false
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/certhub/docscan/constants"
	"github.com/certhub/docscan/internal/entity"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"AWS Solutions-Architect Associate!", "awssolutionsarchitectassociate"},
		{"정보처리기사", "정보처리기사"},
		{"SQLD (국가공인)", "sqld국가공인"},
		{"  PMP  ", "pmp"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.input), "input %q", tt.input)
	}
}

func TestNewMatcherDeduplicates(t *testing.T) {
	m := NewMatcher([]Entry{
		{CertificationName: "PMP", Organizer: "PMI"},
		{CertificationName: "PMP", Organizer: "someone else"},
		{CertificationName: ""},
		{CertificationName: "SQLD", Organizer: "한국데이터산업진흥원"},
	})
	assert.Equal(t, []string{"PMP", "SQLD"}, m.names)
	// first entry wins
	assert.Equal(t, "PMI", m.organizers["PMP"])
}

func TestMatch(t *testing.T) {
	m := NewMatcher([]Entry{
		{CertificationName: "PMP", Organizer: "PMI"},
		{CertificationName: "PMP Professional", Organizer: "PMI"},
		{CertificationName: "정보처리기사", Organizer: "한국산업인력공단"},
	})

	t.Run("graded candidate only matches graded names", func(t *testing.T) {
		got := m.Match([]string{"PMP Professional"})
		assert.Equal(t, []string{"PMP Professional"}, got)
	})

	t.Run("bare candidate matches the bare name", func(t *testing.T) {
		got := m.Match([]string{"PMP"})
		assert.Equal(t, []string{"PMP"}, got)
	})

	t.Run("containment survives spacing and punctuation", func(t *testing.T) {
		got := m.Match([]string{"자격증명: 정보처리기사 (국가기술자격)"})
		assert.Equal(t, []string{"정보처리기사"}, got)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, m.Match([]string{"운전면허"}))
	})

	t.Run("empty normalization is skipped", func(t *testing.T) {
		assert.Empty(t, m.Match([]string{"!!!", ""}))
	})

	t.Run("duplicate candidates yield one result", func(t *testing.T) {
		got := m.Match([]string{"PMP", "PMP", "pmp"})
		assert.Equal(t, []string{"PMP"}, got)
	})

	t.Run("no candidates", func(t *testing.T) {
		assert.Empty(t, m.Match(nil))
	})
}

func TestResolvePage(t *testing.T) {
	m := NewMatcher([]Entry{
		{CertificationName: "정보처리기사", Organizer: "한국산업인력공단"},
		{CertificationName: "PMP", Organizer: "PMI"},
	})

	page := entity.PageExtraction{
		File:    "cert.jpg",
		Page:    1,
		DocType: constants.PageCertificate,
		Certificate: entity.CertificateFields{
			Name:   "정보처리기사 자격증",
			Issuer: "어딘가",
		},
		CertNameCandidates: []string{"정보처리기사 자격증"},
	}

	t.Run("catalog name and organizer win", func(t *testing.T) {
		name, issuer := m.ResolvePage(page, []string{"정보처리기사"})
		assert.Equal(t, "정보처리기사", name)
		assert.Equal(t, "한국산업인력공단", issuer)
	})

	t.Run("falls back to raw extraction without a match", func(t *testing.T) {
		name, issuer := m.ResolvePage(page, nil)
		assert.Equal(t, "정보처리기사 자격증", name)
		assert.Equal(t, "어딘가", issuer)
	})

	t.Run("matched name unrelated to the page keeps raw values", func(t *testing.T) {
		name, issuer := m.ResolvePage(page, []string{"PMP"})
		assert.Equal(t, "정보처리기사 자격증", name)
		assert.Equal(t, "어딘가", issuer)
	})

	t.Run("empty catalog organizer keeps the page issuer", func(t *testing.T) {
		bare := NewMatcher([]Entry{{CertificationName: "정보처리기사"}})
		name, issuer := bare.ResolvePage(page, []string{"정보처리기사"})
		assert.Equal(t, "정보처리기사", name)
		assert.Equal(t, "어딘가", issuer)
	})
}

func TestMatchGradeSymmetryBothWays(t *testing.T) {
	m := NewMatcher([]Entry{
		{CertificationName: "AWS Solutions Architect Associate"},
		{CertificationName: "AWS"},
	})

	// graded candidate skips the bare "AWS" name even though it is contained
	got := m.Match([]string{"aws solutions architect associate"})
	require.Equal(t, []string{"AWS Solutions Architect Associate"}, got)
}

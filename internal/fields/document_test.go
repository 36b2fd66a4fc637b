package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCertificationName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"well known name", "합격증 정보처리기사 1급", "정보처리기사"},
		{"labeled field", "자격증명: 빅데이터분석기사 합격", "빅데이터분석기사"},
		{"exam name label", "시험명: SQLD", "SQLD"},
		{"english acronym", "AWS Certified Solutions Architect", "AWS"},
		{"no name", "영수증 합계 45,000원", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCertificationName(tt.input))
		})
	}
}

func TestExtractGrade(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"numeric grade beats embedded class token", "합격증 정보처리기사 1급", "1급"},
		{"labeled grade", "등급: 2급", "2급"},
		{"industrial engineer class", "정보처리산업기사 합격", "산업기사"},
		{"bare engineer class", "전자기사 취득", "기사"},
		{"craftsman class", "미용 기능사", "기능사"},
		{"no grade", "영수증 합계 45,000원", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractGrade(tt.input))
		})
	}
}

func TestExtractFinalPaymentAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"labeled total", "합계금액: 150,000원", "150,000"},
		{"largest amount wins", "점심 8,000원 합계: 20,000원", "20,000"},
		{"unlabeled fallback", "450,000원", "450,000"},
		{"comma preserved verbatim", "결제: 1,234,567원", "1,234,567"},
		{"amount without unit marker is ignored", "총점 95000", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractFinalPaymentAmount(tt.input))
		})
	}
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, int64(150000), ParseAmount("150,000"))
	assert.Equal(t, int64(45000), ParseAmount("45000"))
	assert.Equal(t, int64(0), ParseAmount(""))
	assert.Equal(t, int64(0), ParseAmount("abc"))
}

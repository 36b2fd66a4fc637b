package entity

import "github.com/certhub/docscan/constants"

// RawPage is one rasterized page of an uploaded document. Pages are owned by
// the stage currently processing them and are discarded after recognition.
type RawPage struct {
	File string
	Page int // 1-based page number within File
	PNG  []byte
}

// RecognitionResult is the engine output for one page. Immutable once produced.
type RecognitionResult struct {
	Text       string
	Confidence float64 // 0..100
}

// FieldCandidate is an extracted value paired with an optional disambiguating
// label. Label is empty when no labeling context was found near the match.
type FieldCandidate[T any] struct {
	Label string `json:"label"`
	Value T      `json:"value"`
}

// CertificateFields holds the per-page certificate sub-extraction.
type CertificateFields struct {
	Name   string `json:"name"`
	Date   string `json:"date"`
	Issuer string `json:"issuer"`
}

// PageExtraction is the full extraction result for one page. Created once
// after recognition, never mutated, aggregated by reference.
type PageExtraction struct {
	File               string                    `json:"file"`
	Page               int                       `json:"page"`
	DocType            constants.DetailedDocType `json:"doc_type"`
	DateCandidates     []FieldCandidate[string]  `json:"date_candidates"`
	AmountCandidates   []FieldCandidate[int64]   `json:"amount_candidates"`
	Certificate        CertificateFields         `json:"certificate_candidates"`
	CertNameCandidates []string                  `json:"cert_name_candidates"`
	FinalAmount        *int64                    `json:"final_amount"`
	PaymentDate        string                    `json:"payment_date,omitempty"`
}

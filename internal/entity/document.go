package entity

import "github.com/certhub/docscan/constants"

// DocumentResult is the single-document output handed to the review surface.
//
// ExtractedAmount and ExtractedCertName mirror FinalPaymentAmount and
// CertificationName for an older consumer contract and are populated whenever
// the new fields are.
type DocumentResult struct {
	DocumentType       constants.CoarseDocType `json:"documentType"`
	CertificationName  string                  `json:"certificationName,omitempty"`
	Grade              string                  `json:"grade,omitempty"`
	FinalPaymentAmount string                  `json:"finalPaymentAmount,omitempty"`
	Confidence         float64                 `json:"confidence"`
	RawText            string                  `json:"rawText"`
	IsVerified         bool                    `json:"isVerified"`
	NeedsReview        bool                    `json:"needsReview"`

	// Deprecated: kept for backward compatibility.
	ExtractedAmount int64 `json:"extractedAmount,omitempty"`
	// Deprecated: kept for backward compatibility.
	ExtractedCertName string `json:"extractedCertName,omitempty"`
	// Deprecated: kept for backward compatibility.
	ExtractedDate string `json:"extractedDate,omitempty"`
}

// EditableOCRData is the reviewer-facing mutable projection of one document.
// Seeded from a DocumentResult and freely overwritten before confirm.
type EditableOCRData struct {
	RawText           string  `json:"rawText"`
	ExtractedAmount   string  `json:"extractedAmount"`
	ExtractedCertName string  `json:"extractedCertName"`
	ExtractedDate     string  `json:"extractedDate"`
	Confidence        float64 `json:"confidence"`
}

package server

import "github.com/certhub/docscan/internal/entity"

// extractResponse is the multi-file extraction payload: the submission-level
// view plus catalog matches and per-file failures.
type extractResponse struct {
	entity.SubmissionExtraction
	MatchedCertifications []string              `json:"matched_certifications,omitempty"`
	ResolvedCertificates  []resolvedCertificate `json:"resolved_certificates,omitempty"`
	Errors                []fileError           `json:"errors,omitempty"`
}

// resolvedCertificate is a certificate page after catalog resolution: name
// and issuer come from the catalog when a match exists, the acquisition date
// always comes from OCR.
type resolvedCertificate struct {
	File   string `json:"file"`
	Page   int    `json:"page"`
	Name   string `json:"name"`
	Date   string `json:"date"`
	Issuer string `json:"issuer"`
}

type fileError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

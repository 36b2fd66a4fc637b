package entity

// ReceiptPage is the receipts-list projection of a receipt or sales page.
type ReceiptPage struct {
	File        string `json:"file"`
	Page        int    `json:"page"`
	PaymentDate string `json:"paymentDate,omitempty"`
	FinalAmount *int64 `json:"finalAmount"`
}

// CertificatePage is the certificates-list projection of a certificate page.
type CertificatePage struct {
	File   string `json:"file"`
	Page   int    `json:"page"`
	Name   string `json:"name"`
	Date   string `json:"date"`
	Issuer string `json:"issuer"`
}

// SubmissionExtraction is the aggregated view over every page of a multi-file
// run. Built once per run and handed to the caller as-is.
type SubmissionExtraction struct {
	Pages              []PageExtraction  `json:"pages"`
	Receipts           []ReceiptPage     `json:"receipts"`
	Certificates       []CertificatePage `json:"certificates"`
	CertNameCandidates []string          `json:"cert_name_candidates"`
	TotalFinalAmount   int64             `json:"totalFinalAmount"`
}

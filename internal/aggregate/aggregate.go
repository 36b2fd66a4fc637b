// Package aggregate reduces per-page extractions into one submission-level
// view. Deterministic: same pages in, same result out; aggregation never
// reorders pages.
package aggregate

import (
	"github.com/certhub/docscan/constants"
	"github.com/certhub/docscan/internal/entity"
)

// Build merges all PageExtractions of a submission into one
// SubmissionExtraction. Receipt and sales pages feed the receipts projection
// and the total; certificate pages feed the certificates projection; pages
// labeled other contribute only their name candidates.
func Build(pages []entity.PageExtraction) entity.SubmissionExtraction {
	if pages == nil {
		pages = []entity.PageExtraction{}
	}
	out := entity.SubmissionExtraction{
		Pages:              pages,
		Receipts:           []entity.ReceiptPage{},
		Certificates:       []entity.CertificatePage{},
		CertNameCandidates: []string{},
	}

	seen := make(map[string]struct{})
	for _, p := range pages {
		switch {
		case p.DocType.IsReceiptLike():
			out.Receipts = append(out.Receipts, entity.ReceiptPage{
				File:        p.File,
				Page:        p.Page,
				PaymentDate: p.PaymentDate,
				FinalAmount: p.FinalAmount,
			})
			if p.FinalAmount != nil {
				out.TotalFinalAmount += *p.FinalAmount
			}
		case p.DocType == constants.PageCertificate:
			out.Certificates = append(out.Certificates, entity.CertificatePage{
				File:   p.File,
				Page:   p.Page,
				Name:   p.Certificate.Name,
				Date:   p.Certificate.Date,
				Issuer: p.Certificate.Issuer,
			})
		}

		for _, name := range p.CertNameCandidates {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out.CertNameCandidates = append(out.CertNameCandidates, name)
		}
	}
	return out
}

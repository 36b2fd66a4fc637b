package pipeline

import (
	"github.com/certhub/docscan/constants"
	"github.com/certhub/docscan/internal/entity"
	"github.com/certhub/docscan/internal/fields"
)

// SeedEditable builds the reviewer-facing editable projection from one
// document result. Certificate results compose "name (grade)" into the
// editable name; receipt results seed the amount string. The reviewer
// overwrites any of it before confirming.
func SeedEditable(res entity.DocumentResult) entity.EditableOCRData {
	out := entity.EditableOCRData{
		RawText:       res.RawText,
		ExtractedDate: fields.NormalizeDate(res.ExtractedDate),
		Confidence:    res.Confidence,
	}

	switch res.DocumentType {
	case constants.DocTypeCertificate:
		name := res.CertificationName
		if res.Grade != "" {
			if name != "" {
				name = name + " (" + res.Grade + ")"
			} else {
				name = res.Grade
			}
		}
		out.ExtractedCertName = name
	case constants.DocTypeReceipt:
		out.ExtractedAmount = res.FinalPaymentAmount
	}
	return out
}

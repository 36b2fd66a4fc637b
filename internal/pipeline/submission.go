package pipeline

import (
	"context"

	"github.com/certhub/docscan/constants"
	"github.com/certhub/docscan/internal/aggregate"
	"github.com/certhub/docscan/internal/classify"
	"github.com/certhub/docscan/internal/common"
	"github.com/certhub/docscan/internal/entity"
	"github.com/certhub/docscan/internal/fields"
	"github.com/certhub/docscan/internal/recognize"
)

// FileError records a file that contributed nothing to a submission run.
type FileError struct {
	Name string
	Err  error
}

// ProcessSubmission runs the structured multi-file path: every page of every
// upload, in strictly increasing (file, page) order, reduced into one
// SubmissionExtraction. A failed file or page is reported and skipped; it
// never corrupts the aggregate or aborts the remaining pages.
func (p *Pipeline) ProcessSubmission(ctx context.Context, uploads []Upload, obs recognize.Observer) (entity.SubmissionExtraction, []FileError) {
	submissionID := common.SubmissionIDFromContext(ctx)
	ctx = common.WithSubmissionID(ctx, submissionID)
	log := p.logger.With("submission_id", submissionID)

	var pages []entity.PageExtraction
	var failures []FileError

	for _, u := range uploads {
		if err := p.validate(u); err != nil {
			log.Warn("rejecting file", "file", u.Name, "error", err)
			failures = append(failures, FileError{Name: u.Name, Err: err})
			continue
		}

		rawPages, err := p.norm.Pages(ctx, u.Name, u.MediaType, u.Data)
		if err != nil {
			log.Warn("normalization failed", "file", u.Name, "error", err)
			failures = append(failures, FileError{Name: u.Name, Err: err})
			continue
		}
		if len(rawPages) == 0 {
			log.Warn("no pages produced", "file", u.Name)
			failures = append(failures, FileError{Name: u.Name, Err: common.ErrDecode})
			continue
		}

		isPDF := constants.IsPDF(u.MediaType)
		for _, raw := range rawPages {
			// rasterized PDF pages go to recognition as rendered; camera
			// images get the full preprocessing chain
			img := raw.PNG
			if !isPDF {
				img = p.prep.Run(ctx, raw)
			}

			res, err := p.driver.Recognize(ctx, raw, img, obs)
			if err != nil {
				log.Error("page recognition failed", "file", raw.File, "page", raw.Page, "error", err)
				failures = append(failures, FileError{Name: raw.File, Err: err})
				continue
			}
			pages = append(pages, buildPageExtraction(raw.File, raw.Page, res.Text))
		}
	}

	sub := aggregate.Build(pages)
	log.Info("submission processed",
		"files", len(uploads),
		"pages", len(sub.Pages),
		"receipts", len(sub.Receipts),
		"certificates", len(sub.Certificates),
		"total_final_amount", sub.TotalFinalAmount,
		"failures", len(failures),
	)
	return sub, failures
}

// buildPageExtraction runs every detailed-path extractor over one page's
// recognized text. Final amount and payment date are only picked for
// receipt-like pages.
func buildPageExtraction(file string, page int, text string) entity.PageExtraction {
	docType := classify.Detailed(text)
	amounts := fields.ExtractAmounts(text)
	dates := fields.ExtractDates(text)

	out := entity.PageExtraction{
		File:               file,
		Page:               page,
		DocType:            docType,
		DateCandidates:     dates,
		AmountCandidates:   amounts,
		Certificate:        fields.ExtractCertificateFields(text),
		CertNameCandidates: fields.ExtractCertNameCandidates(text),
	}
	if docType.IsReceiptLike() {
		out.FinalAmount = fields.PickFinalAmount(amounts)
		out.PaymentDate = fields.PickPaymentDate(dates)
	}
	return out
}

// Package pipeline drives the document understanding flow: upload
// validation, page normalization, preprocessing, recognition, classification
// and field extraction. Pages are processed strictly sequentially in
// submission order; there is no parallel fan-out.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/certhub/docscan/constants"
	"github.com/certhub/docscan/internal/classify"
	"github.com/certhub/docscan/internal/common"
	"github.com/certhub/docscan/internal/entity"
	"github.com/certhub/docscan/internal/fields"
	"github.com/certhub/docscan/internal/normalize"
	"github.com/certhub/docscan/internal/preprocess"
	"github.com/certhub/docscan/internal/recognize"
)

// ReviewThreshold is the confidence below which a result requires human
// review before acceptance. Exactly 80 is acceptable.
const ReviewThreshold = 80.0

// Upload is one submitted file.
type Upload struct {
	Name      string
	MediaType string
	Data      []byte
}

// Pipeline wires the stages together. All stages run on the caller's
// goroutine; each page's buffer is released before the next page starts.
type Pipeline struct {
	maxUploadBytes int64
	norm           *normalize.Normalizer
	prep           *preprocess.Preprocessor
	driver         *recognize.Driver
	logger         *slog.Logger
}

func New(norm *normalize.Normalizer, prep *preprocess.Preprocessor, driver *recognize.Driver, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		maxUploadBytes: constants.MaxUploadBytes,
		norm:           norm,
		prep:           prep,
		driver:         driver,
		logger:         logger,
	}
}

// validate rejects an upload before any processing starts.
func (p *Pipeline) validate(u Upload) error {
	if len(u.Data) == 0 {
		return common.ErrEmptyFile
	}
	if int64(len(u.Data)) > p.maxUploadBytes {
		return fmt.Errorf("%w: max %dMB, got %.2fMB", common.ErrFileTooLarge,
			p.maxUploadBytes>>20, float64(len(u.Data))/1024/1024)
	}
	if !constants.IsAllowedMediaType(u.MediaType) {
		return fmt.Errorf("%w: %q (supported: %s)", common.ErrUnsupportedFormat,
			u.MediaType, constants.AllowedMediaTypeList())
	}
	return nil
}

// ProcessDocument runs the single-document path: one upload in, one
// classified, field-extracted result out. For PDFs only the first rendered
// page feeds recognition.
func (p *Pipeline) ProcessDocument(ctx context.Context, u Upload, obs recognize.Observer) (entity.DocumentResult, error) {
	if err := p.validate(u); err != nil {
		return entity.DocumentResult{}, err
	}

	var page entity.RawPage
	var img []byte
	if constants.IsPDF(u.MediaType) {
		pages, err := p.norm.Pages(ctx, u.Name, u.MediaType, u.Data)
		if err != nil {
			return entity.DocumentResult{}, err
		}
		if len(pages) == 0 {
			return entity.DocumentResult{}, common.ErrDecode
		}
		page = pages[0]
		img = page.PNG
	} else {
		page = entity.RawPage{File: u.Name, Page: 1, PNG: u.Data}
		img = p.prep.Run(ctx, page)
	}

	res, err := p.driver.Recognize(ctx, page, img, obs)
	if err != nil {
		return entity.DocumentResult{}, err
	}

	out := entity.DocumentResult{
		DocumentType: classify.Coarse(res.Text),
		Confidence:   res.Confidence,
		RawText:      res.Text,
		NeedsReview:  res.Confidence < ReviewThreshold,
	}
	switch out.DocumentType {
	case constants.DocTypeCertificate:
		out.CertificationName = fields.ExtractCertificationName(res.Text)
		out.Grade = fields.ExtractGrade(res.Text)
		out.ExtractedDate = fields.ExtractCertificateFields(res.Text).Date
	case constants.DocTypeReceipt:
		out.FinalPaymentAmount = fields.ExtractFinalPaymentAmount(res.Text)
		out.ExtractedDate = fields.PickPaymentDate(fields.ExtractDates(res.Text))
	}

	// legacy mirror fields
	out.ExtractedAmount = fields.ParseAmount(out.FinalPaymentAmount)
	out.ExtractedCertName = out.CertificationName

	p.logger.Info("document processed",
		"file", u.Name,
		"doc_type", out.DocumentType,
		"confidence", res.Confidence,
		"needs_review", out.NeedsReview,
	)
	return out, nil
}

// DocumentOutcome pairs one batch file with its result or failure.
type DocumentOutcome struct {
	Name   string
	Result entity.DocumentResult
	Err    error
}

// ProcessDocuments runs the single-document path over a batch, strictly
// sequentially. A failing file is recorded and skipped; it never aborts the
// remaining files.
func (p *Pipeline) ProcessDocuments(ctx context.Context, uploads []Upload, obs recognize.Observer) []DocumentOutcome {
	out := make([]DocumentOutcome, 0, len(uploads))
	for _, u := range uploads {
		res, err := p.ProcessDocument(ctx, u, obs)
		if err != nil {
			p.logger.Error("document failed", "file", u.Name, "error", err)
		}
		out = append(out, DocumentOutcome{Name: u.Name, Result: res, Err: err})
	}
	return out
}

package normalize

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/certhub/docscan/constants"
	"github.com/certhub/docscan/internal/common"
	"github.com/certhub/docscan/internal/entity"
)

// Normalizer turns an uploaded file into one ordered sequence of raster page
// images. Raster images pass through as a single page; paginated documents
// are rendered page by page.
type Normalizer struct {
	raster *Rasterizer
	logger *slog.Logger
}

func NewNormalizer(raster *Rasterizer, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{raster: raster, logger: logger}
}

// Pages produces the page sequence for one upload.
//
// A failing paginated decode is recoverable: it yields an empty page list so
// the caller can report "no pages produced" without treating the whole file
// as invalid. Unsupported media types are rejected outright.
func (n *Normalizer) Pages(ctx context.Context, name, mediaType string, data []byte) ([]entity.RawPage, error) {
	switch {
	case constants.IsPDF(mediaType):
		pages, err := n.raster.Pages(ctx, name, data)
		if err != nil {
			n.logger.Warn("pdf decode failed; yielding zero pages", "file", name, "error", err)
			return []entity.RawPage{}, nil
		}
		return pages, nil
	case constants.IsAllowedMediaType(mediaType):
		return []entity.RawPage{{File: name, Page: 1, PNG: data}}, nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)", common.ErrUnsupportedFormat, mediaType, constants.AllowedMediaTypeList())
	}
}

package preprocess

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/disintegration/imaging"

	"github.com/certhub/docscan/internal/entity"
)

const (
	maxDimension      = 2000
	minDimension      = 100
	contrastFactor    = 1.5
	binarizeThreshold = 128
	decodeTimeout     = 10 * time.Second
)

// Preprocessor cleans a raw page image for recognition: downscale, grayscale,
// contrast stretch, binarize, lossless re-encode. Every step is independently
// skippable; a failing step falls back to the best prior result instead of
// aborting, so preprocessing never blocks recognition.
type Preprocessor struct {
	logger *slog.Logger
}

func NewPreprocessor(logger *slog.Logger) *Preprocessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Preprocessor{logger: logger}
}

type step struct {
	name  string
	apply func(*image.NRGBA) (*image.NRGBA, error)
}

// Run returns an encoded image optimized for recognition, or the original
// bytes unchanged if decoding fails, times out, or every step fails.
func (p *Preprocessor) Run(ctx context.Context, page entity.RawPage) []byte {
	img, err := p.decode(ctx, page.PNG)
	if err != nil {
		p.logger.Warn("image decode failed; using original encoding",
			"file", page.File, "page", page.Page, "error", err)
		return page.PNG
	}
	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		p.logger.Warn("image has zero dimensions; using original encoding",
			"file", page.File, "page", page.Page)
		return page.PNG
	}

	steps := []step{
		{"resize", p.resize(page)},
		{"grayscale", func(in *image.NRGBA) (*image.NRGBA, error) {
			return imaging.Grayscale(in), nil
		}},
		{"contrast", func(in *image.NRGBA) (*image.NRGBA, error) {
			return imaging.AdjustFunc(in, stretchContrast), nil
		}},
		{"binarize", func(in *image.NRGBA) (*image.NRGBA, error) {
			return imaging.AdjustFunc(in, binarize), nil
		}},
	}

	current := img
	for _, s := range steps {
		next, err := s.apply(current)
		if err != nil || next == nil {
			// keep the last-known-good image and move on
			p.logger.Warn("preprocessing step failed; keeping prior image",
				"file", page.File, "page", page.Page, "step", s.name, "error", err)
			continue
		}
		current = next
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, current, imaging.PNG); err != nil {
		p.logger.Warn("png encode failed; using original encoding",
			"file", page.File, "page", page.Page, "error", err)
		return page.PNG
	}
	return buf.Bytes()
}

// decode reads pixels from the source bytes, bounded by a wall-time budget.
func (p *Preprocessor) decode(ctx context.Context, data []byte) (*image.NRGBA, error) {
	type outcome struct {
		img image.Image
		err error
	}
	ch := make(chan outcome, 1)
	go func() {
		img, err := imaging.Decode(bytes.NewReader(data))
		ch <- outcome{img, err}
	}()

	timer := time.NewTimer(decodeTimeout)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return nil, fmt.Errorf("image decode exceeded %s", decodeTimeout)
	case o := <-ch:
		if o.err != nil {
			return nil, o.err
		}
		return imaging.Clone(o.img), nil
	}
}

// resize downscales oversized pages preserving aspect ratio so both
// dimensions fit maxDimension. Small images are never upscaled to avoid
// introducing artifacts, but the final canvas is clamped to a 100px floor.
func (p *Preprocessor) resize(page entity.RawPage) func(*image.NRGBA) (*image.NRGBA, error) {
	return func(in *image.NRGBA) (*image.NRGBA, error) {
		w, h := in.Bounds().Dx(), in.Bounds().Dy()
		if w < minDimension || h < minDimension {
			p.logger.Debug("image below minimum dimensions; not upscaling",
				"file", page.File, "page", page.Page, "width", w, "height", h)
		}
		if w > maxDimension || h > maxDimension {
			ratio := min(float64(maxDimension)/float64(w), float64(maxDimension)/float64(h))
			w = int(float64(w) * ratio)
			h = int(float64(h) * ratio)
		}
		w = max(w, minDimension)
		h = max(h, minDimension)
		if w == in.Bounds().Dx() && h == in.Bounds().Dy() {
			return in, nil
		}
		return imaging.Resize(in, w, h, imaging.Lanczos), nil
	}
}

// stretchContrast applies the photographic contrast-correction formula with a
// fixed factor of 1.5 on the (already grayscale) pixel value.
func stretchContrast(c color.NRGBA) color.NRGBA {
	factor := (259 * (contrastFactor*100 + 255)) / (255 * (259 - contrastFactor*100))
	adjust := func(v uint8) uint8 {
		enhanced := factor*(float64(v)-128) + 128
		if enhanced < 0 {
			return 0
		}
		if enhanced > 255 {
			return 255
		}
		return uint8(enhanced)
	}
	return color.NRGBA{R: adjust(c.R), G: adjust(c.G), B: adjust(c.B), A: c.A}
}

// binarize maps every pixel to pure black or white at a fixed threshold.
// Stable under re-application.
func binarize(c color.NRGBA) color.NRGBA {
	v := uint8(0)
	if c.R >= binarizeThreshold {
		v = 255
	}
	return color.NRGBA{R: v, G: v, B: v, A: c.A}
}

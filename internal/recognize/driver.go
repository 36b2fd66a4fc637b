package recognize

import (
	"context"
	"log/slog"
	"time"

	"github.com/certhub/docscan/internal/entity"
)

// LanguageProfile is the fixed two-script recognition hint.
const LanguageProfile = "kor+eng"

// pageTimeout is the hard per-page ceiling on one engine invocation.
const pageTimeout = 5 * time.Minute

// Engine is the external black-box text-recognition service: one page image
// in, recognized text plus a confidence score out. Implementations report
// whatever incremental progress they have through the supplied func.
type Engine interface {
	Recognize(ctx context.Context, image []byte, langs string, progress func(percent int)) (entity.RecognitionResult, error)
}

// Observer receives per-page recognition progress. Progress is monotonic
// within a page and resets to 0 when a new page starts.
type Observer interface {
	PageStarted(file string, page int)
	Progress(percent int)
}

// NopObserver discards all progress events.
type NopObserver struct{}

func (NopObserver) PageStarted(string, int) {}
func (NopObserver) Progress(int)            {}

// Driver invokes the engine per page image, enforcing the page timeout and
// progress monotonicity. It never mutates the input image.
type Driver struct {
	engine Engine
	logger *slog.Logger
}

func NewDriver(engine Engine, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{engine: engine, logger: logger}
}

// Recognize runs the engine on one page. On timeout the engine call's
// eventual result, if any, is discarded.
func (d *Driver) Recognize(ctx context.Context, page entity.RawPage, image []byte, obs Observer) (entity.RecognitionResult, error) {
	if obs == nil {
		obs = NopObserver{}
	}
	obs.PageStarted(page.File, page.Page)

	// monotonic, clamped progress relay
	last := -1
	report := func(pct int) {
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		if pct <= last {
			return
		}
		last = pct
		obs.Progress(pct)
	}
	report(0)

	ctx, cancel := context.WithTimeout(ctx, pageTimeout)
	defer cancel()

	type outcome struct {
		res entity.RecognitionResult
		err error
	}
	ch := make(chan outcome, 1)
	go func() {
		res, err := d.engine.Recognize(ctx, image, LanguageProfile, report)
		ch <- outcome{res, err}
	}()

	start := time.Now()
	select {
	case <-ctx.Done():
		d.logger.Error("recognition aborted", "file", page.File, "page", page.Page,
			"duration_ms", time.Since(start).Milliseconds(), "error", ctx.Err())
		return entity.RecognitionResult{}, classifyEngineError(ctx.Err())
	case o := <-ch:
		if o.err != nil {
			d.logger.Error("recognition failed", "file", page.File, "page", page.Page,
				"duration_ms", time.Since(start).Milliseconds(), "error", o.err)
			return entity.RecognitionResult{}, classifyEngineError(o.err)
		}
		res := o.res
		if res.Confidence < 0 {
			res.Confidence = 0
		}
		if res.Confidence > 100 {
			res.Confidence = 100
		}
		report(100)
		d.logger.Debug("recognition ok", "file", page.File, "page", page.Page,
			"duration_ms", time.Since(start).Milliseconds(),
			"text_bytes", len(res.Text), "confidence", res.Confidence)
		return res, nil
	}
}

package normalize

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/certhub/docscan/internal/entity"
)

// degenerateRenderBytes is the floor below which a rendered page is treated
// as empty and dropped from the page sequence.
const degenerateRenderBytes = 100

// Config holds rasterization settings for paginated documents.
type Config struct {
	Pdftoppm string // binary name or absolute path; if empty -> "pdftoppm"
	DPI      int    // render resolution; default 144 (2x the 72dpi PDF base)
	MaxPages int    // 0 = no limit
}

// Rasterizer renders PDF pages to PNG images. It wraps the external renderer
// binary plus pdfcpu for up-front validation, and is constructed once by the
// composition root and shared across all runs.
type Rasterizer struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

// NewRasterizer builds a Rasterizer. A nil runner falls back to executing
// the real renderer binary.
func NewRasterizer(cfg Config, runner Runner, logger *slog.Logger) *Rasterizer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 144
	}
	if runner == nil {
		runner = newExecRunner(logger)
	}
	return &Rasterizer{cfg: cfg, runner: runner, logger: logger}
}

// Pages renders every page of the document (up to MaxPages) into PNG raw
// pages, in increasing page order. Degenerate renders are skipped.
func (r *Rasterizer) Pages(ctx context.Context, name string, data []byte) ([]entity.RawPage, error) {
	pageCount, err := r.validate(data)
	if err != nil {
		return nil, fmt.Errorf("validate pdf: %w", err)
	}
	if r.cfg.MaxPages > 0 && pageCount > r.cfg.MaxPages {
		pageCount = r.cfg.MaxPages
	}

	tmpDir, err := os.MkdirTemp("", "docscan-pdf-*")
	if err != nil {
		return nil, err
	}
	defer func(path string) {
		if rerr := os.RemoveAll(path); rerr != nil {
			r.logger.Warn("failed to remove temp dir", "path", path, "error", rerr)
		}
	}(tmpDir)

	in := filepath.Join(tmpDir, "in.pdf")
	if err := os.WriteFile(in, data, 0o600); err != nil {
		return nil, err
	}

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png -f 1 -l <n> <in.pdf> <tmp/page>
	args := []string{"-r", fmt.Sprintf("%d", r.cfg.DPI), "-png", "-f", "1", "-l", fmt.Sprintf("%d", pageCount), in, prefix}
	if _, errb, err := r.runner.Run(ctx, r.cfg.Pdftoppm, args...); err != nil {
		return nil, fmt.Errorf("render pdf pages: %w (%s)", err, truncate(string(errb), 512))
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no pages rendered")
	}

	pages := make([]entity.RawPage, 0, len(matches))
	for i, m := range matches {
		png, err := os.ReadFile(m)
		if err != nil {
			r.logger.Warn("skipping unreadable rendered page", "file", name, "page", i+1, "error", err)
			continue
		}
		if len(png) < degenerateRenderBytes {
			r.logger.Warn("skipping degenerate rendered page", "file", name, "page", i+1, "bytes", len(png))
			continue
		}
		pages = append(pages, entity.RawPage{File: name, Page: i + 1, PNG: png})
	}
	return pages, nil
}

// validate checks the document and returns its page count.
func (r *Rasterizer) validate(data []byte) (int, error) {
	conf := model.NewDefaultConfiguration()
	pdfCtx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return 0, err
	}
	return pdfCtx.PageCount, nil
}

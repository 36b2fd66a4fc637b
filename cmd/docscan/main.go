package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/certhub/docscan/constants"
	"github.com/certhub/docscan/internal/catalog"
	"github.com/certhub/docscan/internal/common"
	"github.com/certhub/docscan/internal/entity"
	"github.com/certhub/docscan/internal/normalize"
	"github.com/certhub/docscan/internal/pipeline"
	"github.com/certhub/docscan/internal/preprocess"
	"github.com/certhub/docscan/internal/recognize"
)

type cliResult struct {
	Submission            entity.SubmissionExtraction `json:"submission"`
	MatchedCertifications []string                    `json:"matched_certifications,omitempty"`
}

// docscan runs the structured multi-file extraction over local files and
// prints the submission result as JSON on stdout. Logs go to stderr.
func main() {
	catalogPath := flag.String("catalog", "", "path to a certification catalog JSON file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	paths := flag.Args()
	if len(paths) == 0 {
		logger.Error("usage", "cmd", "docscan [-catalog criteria.json] <file> [file...]")
		os.Exit(2)
	}

	cfg := common.LoadConfig()

	uploads := make([]pipeline.Upload, 0, len(paths))
	for _, path := range paths {
		mediaType := constants.MediaTypeForExt(filepath.Ext(path))
		if mediaType == "" {
			logger.Error("unsupported file extension", "path", path)
			os.Exit(2)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("read file", "path", path, "error", err)
			os.Exit(1)
		}
		uploads = append(uploads, pipeline.Upload{
			Name:      filepath.Base(path),
			MediaType: mediaType,
			Data:      data,
		})
	}

	raster := normalize.NewRasterizer(normalize.Config{
		Pdftoppm: cfg.PDF.Pdftoppm,
		DPI:      cfg.PDF.DPI,
		MaxPages: cfg.PDF.MaxPages,
	}, nil, logger)
	norm := normalize.NewNormalizer(raster, logger)
	prep := preprocess.NewPreprocessor(logger)
	engine := recognize.NewTesseractEngine(cfg.OCR.TessdataDir, logger)
	driver := recognize.NewDriver(engine, logger)
	p := pipeline.New(norm, prep, driver, logger)

	sub, failures := p.ProcessSubmission(context.Background(), uploads, progressLogger{logger})
	for _, f := range failures {
		logger.Warn("file skipped", "file", f.Name, "error", f.Err)
	}

	out := cliResult{Submission: sub}
	if *catalogPath != "" {
		entries, err := catalog.Load(*catalogPath)
		if err != nil {
			logger.Error("load catalog", "path", *catalogPath, "error", err)
			os.Exit(1)
		}
		matcher := catalog.NewMatcher(entries)
		out.MatchedCertifications = matcher.Match(sub.CertNameCandidates)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
	if len(failures) > 0 {
		os.Exit(1)
	}
}

// progressLogger surfaces per-page recognition progress in the logs.
type progressLogger struct {
	logger *slog.Logger
}

func (p progressLogger) PageStarted(file string, page int) {
	p.logger.Info("recognizing page", "file", file, "page", page)
}

func (p progressLogger) Progress(percent int) {
	p.logger.Debug("recognition progress", "percent", percent)
}

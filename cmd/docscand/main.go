package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/certhub/docscan/internal/catalog"
	"github.com/certhub/docscan/internal/common"
	"github.com/certhub/docscan/internal/normalize"
	"github.com/certhub/docscan/internal/pipeline"
	"github.com/certhub/docscan/internal/preprocess"
	"github.com/certhub/docscan/internal/recognize"
	"github.com/certhub/docscan/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()

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

	var matcher *catalog.Matcher
	if cfg.Catalog.Path != "" {
		entries, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			logger.Error("load catalog", "path", cfg.Catalog.Path, "error", err)
			os.Exit(1)
		}
		matcher = catalog.NewMatcher(entries)
		logger.Info("catalog loaded", "path", cfg.Catalog.Path, "entries", len(entries))
	}

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: server.New(p, matcher, logger).Routes(),
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// Package server exposes the extraction pipeline over HTTP. Storage,
// authentication and the review UI are external collaborators; this surface
// only accepts uploads and returns extraction results.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/certhub/docscan/constants"
	"github.com/certhub/docscan/internal/catalog"
	"github.com/certhub/docscan/internal/common"
	"github.com/certhub/docscan/internal/pipeline"
	"github.com/certhub/docscan/internal/recognize"
)

// maxRequestBytes bounds a whole multipart request; individual files are
// additionally capped by the pipeline's own 50 MiB limit.
const maxRequestBytes = 256 << 20

type Server struct {
	pipeline *pipeline.Pipeline
	matcher  *catalog.Matcher // nil when no catalog is configured
	logger   *slog.Logger
}

func New(p *pipeline.Pipeline, matcher *catalog.Matcher, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{pipeline: p, matcher: matcher, logger: logger}
}

// Routes returns the chi router for the extraction API.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	r.Post("/v1/extract", s.handleExtract)
	r.Post("/v1/extract/document", s.handleExtractDocument)
	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleExtractDocument(w http.ResponseWriter, r *http.Request) {
	upload, ok := s.readUpload(w, r, "file")
	if !ok {
		return
	}

	res, err := s.pipeline.ProcessDocument(r.Context(), upload, recognize.NopObserver{})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid multipart request: "+err.Error()))
		return
	}
	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		writeJSON(w, http.StatusBadRequest, errorBody("no files provided"))
		return
	}

	uploads := make([]pipeline.Upload, 0, len(headers))
	for _, fh := range headers {
		u, err := uploadFromHeader(fh)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("read "+fh.Filename+": "+err.Error()))
			return
		}
		uploads = append(uploads, u)
	}

	sub, failures := s.pipeline.ProcessSubmission(r.Context(), uploads, recognize.NopObserver{})

	resp := extractResponse{SubmissionExtraction: sub}
	for _, f := range failures {
		resp.Errors = append(resp.Errors, fileError{File: f.Name, Error: f.Err.Error()})
	}
	if s.matcher != nil {
		resp.MatchedCertifications = s.matcher.Match(sub.CertNameCandidates)
		for _, page := range sub.Pages {
			if page.DocType != constants.PageCertificate {
				continue
			}
			name, issuer := s.matcher.ResolvePage(page, resp.MatchedCertifications)
			resp.ResolvedCertificates = append(resp.ResolvedCertificates, resolvedCertificate{
				File:   page.File,
				Page:   page.Page,
				Name:   name,
				Date:   page.Certificate.Date,
				Issuer: issuer,
			})
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) readUpload(w http.ResponseWriter, r *http.Request, field string) (pipeline.Upload, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid multipart request: "+err.Error()))
		return pipeline.Upload{}, false
	}
	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		writeJSON(w, http.StatusBadRequest, errorBody("no file provided"))
		return pipeline.Upload{}, false
	}
	u, err := uploadFromHeader(headers[0])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("read "+headers[0].Filename+": "+err.Error()))
		return pipeline.Upload{}, false
	}
	return u, true
}

func uploadFromHeader(fh *multipart.FileHeader) (pipeline.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return pipeline.Upload{}, err
	}
	defer func() { _ = f.Close() }()
	data, err := io.ReadAll(f)
	if err != nil {
		return pipeline.Upload{}, err
	}
	return pipeline.Upload{
		Name:      fh.Filename,
		MediaType: fh.Header.Get("Content-Type"),
		Data:      data,
	}, nil
}

// writeError maps pipeline failures onto status codes, keeping each failure
// class's message distinct.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrUnsupportedFormat),
		errors.Is(err, common.ErrFileTooLarge),
		errors.Is(err, common.ErrEmptyFile):
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
	case errors.Is(err, common.ErrDecode):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody(err.Error()))
	case errors.Is(err, recognize.ErrRecognitionTimeout):
		writeJSON(w, http.StatusGatewayTimeout, errorBody(err.Error()))
	case errors.Is(err, recognize.ErrNetworkFailure),
		errors.Is(err, recognize.ErrResourceExhaustion),
		errors.Is(err, recognize.ErrEngineInit),
		errors.Is(err, recognize.ErrRecognitionFailed):
		writeJSON(w, http.StatusBadGateway, errorBody(err.Error()))
	default:
		s.logger.Error("unhandled pipeline error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

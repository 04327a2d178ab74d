// Package handler exposes statement extraction over HTTP.
package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pensionfolio/statement-extractor/internal/domain/statement/service"
)

// ProviderHeader carries the detected provider label as a diagnostic,
// separate from the JSON payload.
const ProviderHeader = "X-Statement-Provider"

// StatementHandler handles extraction requests.
type StatementHandler struct {
	svc          *service.Extractor
	logger       *slog.Logger
	maxBodyBytes int64
}

// NewStatementHandler creates the HTTP handler for statement extraction.
func NewStatementHandler(svc *service.Extractor, logger *slog.Logger, maxBodyBytes int64) *StatementHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = 4 << 20
	}
	return &StatementHandler{svc: svc, logger: logger, maxBodyBytes: maxBodyBytes}
}

// Extract reads the statement text from the request body and responds with
// the normalized record as JSON.
func (h *StatementHandler) Extract(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		h.logger.Warn("failed to read request body", slog.Any("error", err))
		http.Error(w, "request body too large or unreadable", http.StatusRequestEntityTooLarge)
		return
	}

	provider, rec := h.svc.Extract(r.Context(), string(body))

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set(ProviderHeader, string(provider))
	if err := json.NewEncoder(w).Encode(rec); err != nil {
		h.logger.Error("failed to encode record", slog.Any("error", err))
	}
}

// Router assembles the HTTP routes: extraction, health, and metrics.
func Router(h *StatementHandler, gatherer prometheus.Gatherer, limiter func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{ProviderHeader},
	}))
	if limiter != nil {
		r.Use(limiter)
	}
	r.Use(requestLogger(h.logger))

	r.Post("/v1/statements/extract", h.Extract)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}

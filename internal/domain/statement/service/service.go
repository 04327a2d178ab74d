// Package service orchestrates statement extraction: classify the provider,
// dispatch to its strategy, and emit diagnostics.
package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/pensionfolio/statement-extractor/internal/domain/statement"
	"github.com/pensionfolio/statement-extractor/internal/domain/statement/extractor"
	"github.com/pensionfolio/statement-extractor/internal/domain/statement/sniffer"
)

// Metrics holds the extraction counters.
type Metrics struct {
	Extractions *prometheus.CounterVec
}

// NewMetrics registers the extraction metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Extractions: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "statement_extractions_total",
			Help: "Statement extractions by detected provider label.",
		}, []string{"provider"}),
	}
}

// Extractor runs the classify-then-extract pipeline. It holds no per-call
// state: the sniffer engine and strategy registry are immutable, so a single
// Extractor is safe for concurrent use.
type Extractor struct {
	sniffer  *sniffer.Engine
	registry *extractor.Registry
	logger   *slog.Logger
	metrics  *Metrics
	tracer   trace.Tracer
}

// New creates an extraction service. metrics may be nil when no registry is
// wired, e.g. in the CLI.
func New(logger *slog.Logger, metrics *Metrics) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		sniffer:  sniffer.New(),
		registry: extractor.NewRegistry(),
		logger:   logger,
		metrics:  metrics,
		tracer:   otel.Tracer("statement-extractor"),
	}
}

// Extract classifies the document text and runs the matching strategy. The
// detected label is returned alongside the record so callers can surface it on
// their diagnostic channel. Extraction is a pure function of the text: it
// never fails, and identical input always produces an identical record.
func (e *Extractor) Extract(ctx context.Context, text string) (statement.Provider, *statement.Record) {
	ctx, span := e.tracer.Start(ctx, "statement.extract")
	defer span.End()

	provider := e.sniffer.Detect(text)
	span.SetAttributes(attribute.String("statement.provider", string(provider)))

	e.logger.InfoContext(ctx, "provider detected",
		slog.String("extraction_id", uuid.NewString()),
		slog.String("provider", string(provider)),
		slog.Int("text_bytes", len(text)),
	)
	if e.metrics != nil {
		e.metrics.Extractions.WithLabelValues(string(provider)).Inc()
	}

	return provider, e.registry.Lookup(provider).Extract(text)
}

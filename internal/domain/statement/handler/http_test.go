package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pensionfolio/statement-extractor/internal/domain/statement/service"
)

func newTestRouter(t *testing.T, limiter func(http.Handler) http.Handler) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	svc := service.New(logger, service.NewMetrics(reg))
	return Router(NewStatementHandler(svc, logger, 1<<20), reg, limiter)
}

func TestStatementHandler_Extract(t *testing.T) {
	router := newTestRouter(t, nil)

	t.Run("extracts a morningstar statement", func(t *testing.T) {
		body := "Morningstar Portfolio Report\nInvestment held: ISA\nPortfolio Valuation £10,000.00\nPortfolio % Returns 4.0%\n"
		req := httptest.NewRequest(http.MethodPost, "/v1/statements/extract", strings.NewReader(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "MORNINGSTAR", rr.Header().Get(ProviderHeader))

		var payload map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
		assert.JSONEq(t, `"Morningstar"`, string(payload["provider"]))
		assert.JSONEq(t, `10000`, string(payload["totalValue"]))
	})

	t.Run("unknown text still returns a record", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/statements/extract", strings.NewReader("gibberish"))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "UNKNOWN", rr.Header().Get(ProviderHeader))
		assert.Contains(t, rr.Body.String(), "Provider not recognized")
	})

	t.Run("health endpoint", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("metrics endpoint", func(t *testing.T) {
		seed := httptest.NewRequest(http.MethodPost, "/v1/statements/extract", strings.NewReader("aj bell"))
		router.ServeHTTP(httptest.NewRecorder(), seed)

		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "statement_extractions_total")
	})
}

func TestRateLimiter(t *testing.T) {
	router := newTestRouter(t, RateLimiter(1, 1))

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

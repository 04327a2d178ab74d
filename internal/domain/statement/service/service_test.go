package service

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pensionfolio/statement-extractor/internal/domain/statement"
	"github.com/pensionfolio/statement-extractor/internal/domain/statement/extractor"
)

func newTestExtractor(t *testing.T) (*Extractor, *Metrics) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := NewMetrics(prometheus.NewRegistry())
	return New(logger, metrics), metrics
}

func TestExtractor_Extract(t *testing.T) {
	svc, metrics := newTestExtractor(t)
	ctx := context.Background()

	t.Run("dispatches to the detected provider", func(t *testing.T) {
		provider, rec := svc.Extract(ctx, "Morningstar Portfolio Report\nInvestment held: ISA\nPortfolio Valuation £1,000.00\n")

		assert.Equal(t, statement.ProviderMorningstar, provider)
		assert.Equal(t, "Morningstar", rec.Provider)
		require.Len(t, rec.Accounts, 1)
	})

	t.Run("unknown text takes the fallback path", func(t *testing.T) {
		provider, rec := svc.Extract(ctx, "an unrecognizable document")

		assert.Equal(t, statement.ProviderUnknown, provider)
		assert.Equal(t, "Unknown", rec.Provider)
		assert.Equal(t, "Provider not recognized", rec.Error)
		assert.Empty(t, rec.Accounts)
		assert.Nil(t, rec.Performance)
	})

	t.Run("cashflow documents also fall back", func(t *testing.T) {
		provider, rec := svc.Extract(ctx, "Cashflow projection 574611")

		assert.Equal(t, statement.ProviderCashflow, provider)
		assert.Equal(t, "Unknown", rec.Provider)
		assert.Equal(t, "Provider not recognized", rec.Error)
	})

	t.Run("counts extractions per provider", func(t *testing.T) {
		before := testutil.ToFloat64(metrics.Extractions.WithLabelValues("AJ_BELL"))
		svc.Extract(ctx, "aj bell statement")
		after := testutil.ToFloat64(metrics.Extractions.WithLabelValues("AJ_BELL"))
		assert.Equal(t, before+1, after)
	})

	t.Run("nil metrics are tolerated", func(t *testing.T) {
		bare := New(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
		provider, rec := bare.Extract(ctx, "aj bell statement")
		assert.Equal(t, statement.ProviderAJBell, provider)
		assert.NotNil(t, rec)
	})
}

func TestExtractor_Extract_Idempotent(t *testing.T) {
	svc, _ := newTestExtractor(t)
	ctx := context.Background()
	gen := extractor.NewFixtureGenerator(99)

	for _, text := range []string{
		gen.AJBell().Text,
		gen.Morningstar().Text,
		"not a statement at all",
	} {
		_, first := svc.Extract(ctx, text)
		_, second := svc.Extract(ctx, text)

		assert.Equal(t, first, second)

		firstJSON, err := json.Marshal(first)
		require.NoError(t, err)
		secondJSON, err := json.Marshal(second)
		require.NoError(t, err)
		assert.Equal(t, firstJSON, secondJSON, "repeated extraction must be byte-for-byte identical")
	}
}

func TestExtractor_TotalValueInvariant(t *testing.T) {
	svc, _ := newTestExtractor(t)
	ctx := context.Background()
	gen := extractor.NewFixtureGenerator(3)

	for i := 0; i < 25; i++ {
		var text string
		if i%2 == 0 {
			text = gen.AJBell().Text
		} else {
			text = gen.Morningstar().Text
		}

		_, rec := svc.Extract(ctx, text)
		sum := int64(0)
		for _, a := range rec.Accounts {
			sum += a.Value.Minor()
		}
		assert.Equal(t, sum, rec.TotalValue.Minor(), "totalValue must equal the exact sum of account values")
	}
}

package sniffer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pensionfolio/statement-extractor/internal/domain/statement"
)

func TestEngine_Detect(t *testing.T) {
	engine := New()

	tests := []struct {
		name string
		text string
		want statement.Provider
	}{
		{"aj bell marker", "Your AJ Bell Youinvest performance report", statement.ProviderAJBell},
		{"ajbell single token", "visit www.ajbell.co.uk for details", statement.ProviderAJBell},
		{"case insensitive", "prepared by aj bell", statement.ProviderAJBell},
		{"morningstar marker", "Morningstar Portfolio Report", statement.ProviderMorningstar},
		{"cashflow marker", "Cashflow projection for retirement", statement.ProviderCashflow},
		{"scheme reference", "scheme ref 574611 statement", statement.ProviderCashflow},
		{"no marker", "a generic pension document", statement.ProviderUnknown},
		{"empty text", "", statement.ProviderUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.Detect(tt.text))
		})
	}
}

func TestEngine_Detect_Priority(t *testing.T) {
	engine := New()

	t.Run("aj bell beats morningstar", func(t *testing.T) {
		got := engine.Detect("AJ Bell fund with a Morningstar rating")
		assert.Equal(t, statement.ProviderAJBell, got)
	})

	t.Run("aj bell beats morningstar regardless of order", func(t *testing.T) {
		got := engine.Detect("Morningstar rating for an AJ Bell fund")
		assert.Equal(t, statement.ProviderAJBell, got)
	})

	t.Run("morningstar beats cashflow", func(t *testing.T) {
		got := engine.Detect("Morningstar report with cashflow analysis")
		assert.Equal(t, statement.ProviderMorningstar, got)
	})
}

func TestEngine_Detect_IsPure(t *testing.T) {
	engine := New()
	text := "aj bell report"

	first := engine.Detect(text)
	second := engine.Detect(text)
	assert.Equal(t, first, second)
}

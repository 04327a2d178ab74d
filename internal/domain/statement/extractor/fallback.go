package extractor

import (
	"github.com/pensionfolio/statement-extractor/internal/domain/statement"
	"github.com/pensionfolio/statement-extractor/pkg/money"
)

// ErrorProviderNotRecognized is the message carried by fallback records.
const ErrorProviderNotRecognized = "Provider not recognized"

// Fallback absorbs documents from unrecognized providers, and from providers
// that are detected but have no extraction rules yet. It never fails: the
// result is always the fixed "not recognized" record with no performance
// mapping.
type Fallback struct{}

// Extract ignores the text and returns the unrecognized-provider record.
func (Fallback) Extract(string) *statement.Record {
	return &statement.Record{
		Provider:   statement.ProviderUnknown.DisplayName(),
		Accounts:   []statement.Account{},
		TotalValue: money.Zero(),
		Error:      ErrorProviderNotRecognized,
	}
}

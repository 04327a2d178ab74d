// Package extractor implements the per-provider extraction strategies that
// turn raw statement text into a normalized record.
package extractor

import "github.com/pensionfolio/statement-extractor/internal/domain/statement"

// Strategy extracts a normalized record from statement text. Every field
// match is best effort: a miss yields the field's default and never aborts
// the extraction.
type Strategy interface {
	Extract(text string) *statement.Record
}

// Registry maps provider labels to their extraction strategies. Labels
// without a strategy, including Cashflow documents and anything
// unrecognized, route to the shared fallback.
type Registry struct {
	strategies map[statement.Provider]Strategy
	fallback   Strategy
}

// NewRegistry builds the closed set of known strategies.
func NewRegistry() *Registry {
	return &Registry{
		strategies: map[statement.Provider]Strategy{
			statement.ProviderAJBell:      AJBell{},
			statement.ProviderMorningstar: Morningstar{},
		},
		fallback: Fallback{},
	}
}

// Lookup returns the strategy for the given provider, or the fallback when
// none is registered.
func (r *Registry) Lookup(p statement.Provider) Strategy {
	if s, ok := r.strategies[p]; ok {
		return s
	}
	return r.fallback
}

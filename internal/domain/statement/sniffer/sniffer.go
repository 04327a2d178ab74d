// Package sniffer detects which provider produced a statement document from
// keyword heuristics over its linearized text.
package sniffer

import (
	"strings"

	"github.com/cloudflare/ahocorasick"

	"github.com/pensionfolio/statement-extractor/internal/domain/statement"
)

// keywordRule maps a marker substring to a provider. Priority encodes rule
// order: when markers for several providers appear in the same document, the
// highest priority wins, so an AJ Bell report that mentions Morningstar
// ratings still classifies as AJ Bell.
type keywordRule struct {
	keyword  string
	provider statement.Provider
	priority int
}

var rules = []keywordRule{
	{keyword: "AJ BELL", provider: statement.ProviderAJBell, priority: 30},
	{keyword: "AJBELL", provider: statement.ProviderAJBell, priority: 30},
	{keyword: "MORNINGSTAR", provider: statement.ProviderMorningstar, priority: 20},
	{keyword: "CASHFLOW", provider: statement.ProviderCashflow, priority: 10},
	// Scheme reference printed on cashflow projection documents.
	{keyword: "574611", provider: statement.ProviderCashflow, priority: 10},
}

// Engine classifies statement text with a single Aho-Corasick pass over all
// provider markers. It is immutable after construction and safe for
// concurrent use.
type Engine struct {
	matcher *ahocorasick.Matcher
	rules   []keywordRule
}

// New builds the classification engine.
func New() *Engine {
	patterns := make([][]byte, len(rules))
	for i, r := range rules {
		patterns[i] = []byte(r.keyword)
	}
	return &Engine{
		matcher: ahocorasick.NewMatcher(patterns),
		rules:   rules,
	}
}

// Detect returns the provider label for the given document text. Matching is
// case-insensitive and never fails: text with no marker classifies as
// ProviderUnknown.
func (e *Engine) Detect(text string) statement.Provider {
	matches := e.matcher.Match([]byte(strings.ToUpper(text)))

	provider := statement.ProviderUnknown
	best := 0
	for _, idx := range matches {
		if idx < 0 || idx >= len(e.rules) {
			continue
		}
		if r := e.rules[idx]; r.priority > best {
			provider = r.provider
			best = r.priority
		}
	}
	return provider
}

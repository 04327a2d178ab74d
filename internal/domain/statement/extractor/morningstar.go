package extractor

import (
	"regexp"
	"strings"

	"github.com/pensionfolio/statement-extractor/internal/domain/statement"
	"github.com/pensionfolio/statement-extractor/pkg/money"
)

// Patterns for Morningstar portfolio reports. Field matching is confined to
// the "Investment held" span of each wrapper so an ISA value can never be
// attributed to the SIPP.
var (
	msClientNameRe = regexp.MustCompile(`PREPARED FOR\s+((?:Ms\.|Mr\.|Mrs\.)\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)

	msISAHeadingRe  = regexp.MustCompile(`Investment held:\s*ISA`)
	msSIPPHeadingRe = regexp.MustCompile(`Investment held:\s*SIPP`)

	msValuationRe = regexp.MustCompile(`Portfolio Valuation\s*£([\d,]+\.\d{2})`)
	msInOutRe     = regexp.MustCompile(`Total In/Out\s*£([\d,]+\.\d{2})`)
	msReturnRe    = regexp.MustCompile(`Total Return\s*£([\d,]+\.\d{2})`)
	msPerfRe      = regexp.MustCompile(`Portfolio % Returns\s*(\d+(?:\.\d+)?)%`)
)

const msSpanTerminator = "Investment held:"

// Morningstar extracts Morningstar portfolio reports.
type Morningstar struct{}

// Extract pulls the ISA and SIPP wrappers out of a Morningstar report. A
// wrapper is emitted only when its valuation matched; other fields in the
// span default to zero individually.
func (Morningstar) Extract(text string) *statement.Record {
	rec := statement.NewRecord(statement.ProviderMorningstar)

	if m := firstSubmatch(msClientNameRe, text); m != "" {
		name := strings.TrimSpace(m)
		rec.ClientName = &name
	}

	wrappers := []struct {
		kind    string
		heading *regexp.Regexp
	}{
		{statement.AccountTypeISA, msISAHeadingRe},
		{statement.AccountTypeSIPP, msSIPPHeadingRe},
	}

	for _, w := range wrappers {
		span, ok := regexSection(text, w.heading, msSpanTerminator)
		if !ok {
			continue
		}

		// No valuation, no account: a zero-valued wrapper is never emitted.
		valuation := firstSubmatch(msValuationRe, span)
		if valuation == "" {
			continue
		}

		contributions := money.Zero()
		if m := firstSubmatch(msInOutRe, span); m != "" {
			contributions = money.MustParseGBP(m)
		}

		returnAmount := money.Zero()
		if m := firstSubmatch(msReturnRe, span); m != "" {
			returnAmount = money.MustParseGBP(m)
		}

		var performance money.Percent
		if m := firstSubmatch(msPerfRe, span); m != "" {
			performance = money.MustParsePercent(m)
		}

		rec.AppendAccount(statement.Account{
			Type:          w.kind,
			Provider:      rec.Provider,
			Value:         money.MustParseGBP(valuation),
			Contributions: contributions,
			Return:        returnAmount,
			Performance:   performance,
		})
	}

	if len(rec.Accounts) > 0 {
		perfs := make([]money.Percent, len(rec.Accounts))
		for i, a := range rec.Accounts {
			perfs[i] = a.Performance
		}
		rec.Performance[statement.PerformanceOneYearReturn] = money.MeanPercent(perfs)
	}
	return rec
}

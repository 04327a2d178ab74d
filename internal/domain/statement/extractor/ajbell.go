package extractor

import (
	"regexp"
	"strings"

	"github.com/pensionfolio/statement-extractor/internal/domain/statement"
	"github.com/pensionfolio/statement-extractor/pkg/money"
)

// Patterns for AJ Bell performance reports. Amount captures are constrained
// to comma-grouped two-decimal shapes and percentages to plain numbers, so
// every captured group is guaranteed to parse.
var (
	ajClientNameRe = regexp.MustCompile(`(Mr|Mrs|Ms)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`)
	ajAccountNoRe  = regexp.MustCompile(`SCC\d+`)

	// Holdings table "Total" row: cost followed by current value.
	ajHoldingsTotalRe = regexp.MustCompile(`Total\s+-\s+[\d,]+\.\d{2}\s+-\s+([\d,]+\.\d{2})`)
	// Summary line fallback: valuation followed by a percentage.
	ajSummaryValueRe = regexp.MustCompile(`£([\d,]+\.\d{2})\s+\d+(?:\.\d+)?%`)

	ajCashInRe = regexp.MustCompile(`Cash in.*?£([\d,]+\.\d{2})`)

	ajLinePercentRe = regexp.MustCompile(`(?m)(\d+(?:\.\d+)?)%\s*$`)
	ajTwrRe         = regexp.MustCompile(`(?s)Time-weighted return.*?(\d+(?:\.\d+)?)%`)

	ajTotalChangeRe = regexp.MustCompile(`(?s)Total.*?Change.*?([\d,]+\.\d{2})`)
	ajChangeGBPRe   = regexp.MustCompile(`(?s)Change \(£\).*?([\d,]+\.\d{2})`)
)

const (
	ajISAHeading  = "ISA - Performance summary"
	ajSIPPHeading = "SIPP - Performance summary"
)

// AJBell extracts AJ Bell performance reports.
type AJBell struct{}

// Extract pulls the ISA wrapper out of an AJ Bell report. Each step is an
// independent best-effort match; a miss defaults the field and extraction
// carries on.
func (AJBell) Extract(text string) *statement.Record {
	rec := statement.NewRecord(statement.ProviderAJBell)

	if m := ajClientNameRe.FindString(text); m != "" {
		name := strings.TrimSpace(m)
		rec.ClientName = &name
	}

	var accountNumber *string
	if m := ajAccountNoRe.FindString(text); m != "" {
		accountNumber = &m
	}

	if isaText, ok := section(text, ajISAHeading, "ISA - Performance Analysis", "ISA - Holdings"); ok {
		value := money.Zero()
		// The holdings "Total" row is the authoritative valuation; the
		// summary line inside the ISA span is the fallback.
		if m := firstSubmatch(ajHoldingsTotalRe, text); m != "" {
			value = money.MustParseGBP(m)
		} else if m := firstSubmatch(ajSummaryValueRe, isaText); m != "" {
			value = money.MustParseGBP(m)
		}

		contributions := money.Zero()
		if m := firstSubmatch(ajCashInRe, text); m != "" {
			contributions = money.MustParseGBP(m)
		}

		var performance money.Percent
		if m := firstSubmatch(ajLinePercentRe, isaText); m != "" {
			performance = money.MustParsePercent(m)
		} else if m := firstSubmatch(ajTwrRe, text); m != "" {
			performance = money.MustParsePercent(m)
		}

		returnAmount := money.Zero()
		if m := firstSubmatch(ajTotalChangeRe, text); m != "" {
			returnAmount = money.MustParseGBP(m)
		} else if m := firstSubmatch(ajChangeGBPRe, text); m != "" {
			returnAmount = money.MustParseGBP(m)
		}

		rec.AppendAccount(statement.Account{
			Type:          statement.AccountTypeISA,
			Provider:      rec.Provider,
			AccountNumber: accountNumber,
			Value:         value,
			Contributions: contributions,
			Return:        returnAmount,
			Performance:   performance,
		})
	}

	// SIPP summaries are detected but not extracted: none of the source
	// reports seen so far carry a populated SIPP performance block, so a
	// detected section deliberately contributes nothing to the output.
	// TODO: extract SIPP fields once a report with a populated SIPP
	// summary is available to derive the row layout from.
	_, _ = section(text, ajSIPPHeading, "SIPP - Performance Analysis", "SIPP - Holdings")

	if len(rec.Accounts) > 0 {
		rec.Performance[statement.PerformanceOneYearReturn] = rec.Accounts[0].Performance
	}
	return rec
}

// Package statement defines the normalized output model for pension and
// investment statement extraction.
package statement

import (
	"encoding/json"

	"github.com/pensionfolio/statement-extractor/pkg/money"
)

// Provider identifies which platform produced a statement document.
type Provider string

const (
	ProviderAJBell      Provider = "AJ_BELL"
	ProviderMorningstar Provider = "MORNINGSTAR"
	ProviderCashflow    Provider = "CASHFLOW"
	ProviderUnknown     Provider = "UNKNOWN"
)

// DisplayName returns the human-facing provider name used in output records.
func (p Provider) DisplayName() string {
	switch p {
	case ProviderAJBell:
		return "AJ Bell"
	case ProviderMorningstar:
		return "Morningstar"
	case ProviderCashflow:
		return "Cashflow"
	default:
		return "Unknown"
	}
}

// Account wrapper kinds found in UK statements.
const (
	AccountTypeISA  = "ISA"
	AccountTypeSIPP = "SIPP"
)

// PerformanceOneYearReturn is the key of the derived summary statistic in
// Record.Performance.
const PerformanceOneYearReturn = "oneYearReturn"

// Account is a single wrapper (ISA, SIPP) detected within a statement.
// Provider is copied from the parent record so consumers can work with
// flattened account lists. AccountNumber is nil when no identifier matched;
// every numeric field defaults to zero on a pattern miss.
type Account struct {
	Type          string        `json:"type"`
	Provider      string        `json:"provider"`
	AccountNumber *string       `json:"accountNumber"`
	Value         money.Money   `json:"value"`
	Contributions money.Money   `json:"contributions"`
	Return        money.Money   `json:"return"`
	Performance   money.Percent `json:"performance"`
}

// Record is the normalized result of one extraction. It is built once per
// invocation and never mutated after being returned. TotalValue is always the
// exact sum of the account values; there is no independent source of truth.
type Record struct {
	Provider    string                   `json:"provider"`
	ClientName  *string                  `json:"clientName"`
	Accounts    []Account                `json:"accounts"`
	TotalValue  money.Money              `json:"totalValue"`
	Performance map[string]money.Percent `json:"performance,omitempty"`
	Error       string                   `json:"error,omitempty"`
}

// NewRecord returns an empty record for the given provider, ready for
// accounts to be appended.
func NewRecord(p Provider) *Record {
	return &Record{
		Provider:    p.DisplayName(),
		Accounts:    []Account{},
		TotalValue:  money.Zero(),
		Performance: map[string]money.Percent{},
	}
}

// AppendAccount adds an account in detection order and accumulates its value
// into TotalValue.
func (r *Record) AppendAccount(a Account) {
	r.Accounts = append(r.Accounts, a)
	r.TotalValue = r.TotalValue.Add(a.Value)
}

// MarshalJSON drops the performance key entirely when the mapping is nil (the
// unrecognized-provider path) but keeps it, possibly as an empty object, on
// every extractor path.
func (r Record) MarshalJSON() ([]byte, error) {
	out := struct {
		Provider    string      `json:"provider"`
		ClientName  *string     `json:"clientName"`
		Accounts    []Account   `json:"accounts"`
		TotalValue  money.Money `json:"totalValue"`
		Performance any         `json:"performance,omitempty"`
		Error       string      `json:"error,omitempty"`
	}{
		Provider:   r.Provider,
		ClientName: r.ClientName,
		Accounts:   r.Accounts,
		TotalValue: r.TotalValue,
		Error:      r.Error,
	}
	if r.Performance != nil {
		out.Performance = r.Performance
	}
	return json.Marshal(out)
}

// Package money provides currency-safe monetary values for statement
// extraction. Amounts are stored as integer minor units (pence) via go-money,
// with shopspring/decimal used for precise conversions, so sums of extracted
// account values are exact.
package money

import (
	"fmt"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// GBP is the currency every supported provider reports in.
const GBP = "GBP"

// Money is a monetary value in minor units. The zero value is £0.00 and is
// safe to use directly.
type Money struct {
	m *gomoney.Money
}

// Zero returns £0.00.
func Zero() Money {
	return Money{m: gomoney.New(0, GBP)}
}

// FromMinor creates a Money from pence.
func FromMinor(amount int64) Money {
	return Money{m: gomoney.New(amount, GBP)}
}

// FromDecimal creates a Money from a decimal pounds value.
func FromDecimal(d decimal.Decimal) Money {
	currency := gomoney.GetCurrency(GBP)
	multiplier := decimal.New(1, int32(currency.Fraction))
	return FromMinor(d.Mul(multiplier).Round(0).IntPart())
}

// ParseGBP parses an extracted statement amount such as "£1,234.56" or
// "2345.67". Currency symbols, thousands-separator commas, and spaces are
// stripped before decimal parsing.
func ParseGBP(s string) (Money, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "£", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Zero(), fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return FromDecimal(d), nil
}

// MustParseGBP is ParseGBP for callers whose match patterns already guarantee
// a parseable shape. A panic here means a capturing pattern admitted text it
// should not have.
func MustParseGBP(s string) Money {
	m, err := ParseGBP(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Minor returns the amount in pence.
func (m Money) Minor() int64 {
	if m.m == nil {
		return 0
	}
	return m.m.Amount()
}

// Decimal returns the amount in pounds.
func (m Money) Decimal() decimal.Decimal {
	if m.m == nil {
		return decimal.Zero
	}
	currency := m.m.Currency()
	divisor := decimal.New(1, int32(currency.Fraction))
	return decimal.NewFromInt(m.m.Amount()).Div(divisor)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.m == nil || m.m.IsZero()
}

// Add returns m + other. Both sides are GBP so the addition cannot fail.
func (m Money) Add(other Money) Money {
	if m.m == nil {
		return other
	}
	if other.m == nil {
		return m
	}
	sum, err := m.m.Add(other.m)
	if err != nil {
		panic(err)
	}
	return Money{m: sum}
}

// Equal reports whether two amounts are the same.
func (m Money) Equal(other Money) bool {
	return m.Minor() == other.Minor()
}

// String returns the amount as a plain decimal string, e.g. "2345.67".
func (m Money) String() string {
	return m.Decimal().String()
}

// Display returns the amount formatted for humans, e.g. "£2,345.67".
func (m Money) Display() string {
	if m.m == nil {
		return gomoney.New(0, GBP).Display()
	}
	return m.m.Display()
}

// MarshalJSON emits the amount as a JSON number in pounds.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal().String()), nil
}

// UnmarshalJSON accepts a JSON number in pounds.
func (m *Money) UnmarshalJSON(data []byte) error {
	d, err := decimal.NewFromString(strings.Trim(string(data), `"`))
	if err != nil {
		return fmt.Errorf("invalid money value %s: %w", data, err)
	}
	*m = FromDecimal(d)
	return nil
}

// Percent is a plain percentage number: 7.5 means 7.5%, never 0.075. The zero
// value is 0.
type Percent struct {
	d decimal.Decimal
}

// PercentFromDecimal wraps a decimal percentage value.
func PercentFromDecimal(d decimal.Decimal) Percent {
	return Percent{d: d}
}

// ParsePercent parses the numeric part of an extracted percentage, e.g. "7.5".
func ParsePercent(s string) (Percent, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Percent{}, fmt.Errorf("invalid percentage %q: %w", s, err)
	}
	return Percent{d: d}, nil
}

// MustParsePercent is ParsePercent for pattern-guaranteed input.
func MustParsePercent(s string) Percent {
	p, err := ParsePercent(s)
	if err != nil {
		panic(err)
	}
	return p
}

// MeanPercent returns the arithmetic mean of the given percentages. It panics
// on an empty slice; callers guard on at least one element.
func MeanPercent(ps []Percent) Percent {
	if len(ps) == 0 {
		panic("money: mean of no percentages")
	}
	sum := decimal.Zero
	for _, p := range ps {
		sum = sum.Add(p.d)
	}
	return Percent{d: sum.Div(decimal.NewFromInt(int64(len(ps))))}
}

// Decimal returns the underlying decimal value.
func (p Percent) Decimal() decimal.Decimal {
	return p.d
}

// Equal reports whether two percentages are numerically equal.
func (p Percent) Equal(other Percent) bool {
	return p.d.Equal(other.d)
}

// String returns the percentage as a plain number, e.g. "7.5".
func (p Percent) String() string {
	return p.d.String()
}

// MarshalJSON emits the percentage as a JSON number.
func (p Percent) MarshalJSON() ([]byte, error) {
	return []byte(p.d.String()), nil
}

// UnmarshalJSON accepts a JSON number.
func (p *Percent) UnmarshalJSON(data []byte) error {
	d, err := decimal.NewFromString(strings.Trim(string(data), `"`))
	if err != nil {
		return fmt.Errorf("invalid percentage value %s: %w", data, err)
	}
	p.d = d
	return nil
}

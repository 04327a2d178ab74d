package extractor

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"

	"github.com/pensionfolio/statement-extractor/pkg/money"
)

// FixtureGenerator produces synthetic statement texts with known expected
// values, for tests that exercise the extraction rules over varied input.
type FixtureGenerator struct {
	faker *gofakeit.Faker
}

// NewFixtureGenerator creates a generator with a fixed seed so test runs are
// reproducible.
func NewFixtureGenerator(seed int64) *FixtureGenerator {
	return &FixtureGenerator{faker: gofakeit.New(seed)}
}

// AJBellFixture is a synthetic AJ Bell report plus the values its text
// encodes.
type AJBellFixture struct {
	Text          string
	ClientName    string
	AccountNumber string
	Value         money.Money
	Contributions money.Money
	Return        money.Money
	Performance   money.Percent
}

// MorningstarFixture is a synthetic Morningstar report covering both wrapper
// kinds.
type MorningstarFixture struct {
	Text       string
	ClientName string
	ISA        WrapperFixture
	SIPP       WrapperFixture
}

// WrapperFixture holds the expected values of one Morningstar wrapper span.
type WrapperFixture struct {
	Value       money.Money
	InOut       money.Money
	Return      money.Money
	Performance money.Percent
}

// AJBell generates an AJ Bell performance report in the layout the extraction
// rules anticipate: summary span, performance analysis, holdings table with a
// Total row.
func (g *FixtureGenerator) AJBell() AJBellFixture {
	f := AJBellFixture{
		ClientName:    "Mr " + g.name() + " " + g.name(),
		AccountNumber: "SCC" + g.faker.DigitN(8),
		Value:         g.amount(),
		Contributions: g.amount(),
		Return:        g.amount(),
		Performance:   g.percent(),
	}

	cost := g.amount()
	// The lowercase line after the client name keeps the fixture's expected
	// name aligned with the capitalized-words pattern, which would otherwise
	// swallow a following capitalized word.
	f.Text = fmt.Sprintf(`AJ Bell Youinvest
Performance report prepared for %s
for the period 6 April 2024 to 5 April 2025
Account number %s

ISA - Performance summary
Value at start of period £%s
Cash in £%s
Value at end of period %s %s%%
Time-weighted return %s%%

ISA - Performance Analysis
Total growth over period Change (£) %s

ISA - Holdings
Stock - Book cost (£) - Value (£)
Total - %s - %s
`,
		f.ClientName,
		f.AccountNumber,
		grouped(cost),
		grouped(f.Contributions),
		f.Value.Display(), f.Performance,
		f.Performance,
		grouped(f.Return),
		grouped(cost), grouped(f.Value),
	)
	return f
}

// Morningstar generates a Morningstar portfolio report with an ISA span
// followed by a SIPP span.
func (g *FixtureGenerator) Morningstar() MorningstarFixture {
	f := MorningstarFixture{
		ClientName: "Mr. " + g.name() + " " + g.name(),
		ISA:        g.wrapper(),
		SIPP:       g.wrapper(),
	}

	f.Text = fmt.Sprintf(`Morningstar Portfolio Report
PREPARED FOR %s
reporting period ending 5 April 2025

Investment held: ISA
Portfolio Valuation £%s
Total In/Out £%s
Total Return £%s
Portfolio %% Returns %s%%

Investment held: SIPP
Portfolio Valuation £%s
Total In/Out £%s
Total Return £%s
Portfolio %% Returns %s%%
`,
		f.ClientName,
		grouped(f.ISA.Value), grouped(f.ISA.InOut), grouped(f.ISA.Return), f.ISA.Performance,
		grouped(f.SIPP.Value), grouped(f.SIPP.InOut), grouped(f.SIPP.Return), f.SIPP.Performance,
	)
	return f
}

func (g *FixtureGenerator) wrapper() WrapperFixture {
	return WrapperFixture{
		Value:       g.amount(),
		InOut:       g.amount(),
		Return:      g.amount(),
		Performance: g.percent(),
	}
}

// amount returns a value between £100.00 and £999,999.99 so thousands
// grouping is regularly exercised.
func (g *FixtureGenerator) amount() money.Money {
	return money.FromMinor(int64(g.faker.Number(10_000, 99_999_999)))
}

// percent returns a one-decimal percentage between 0.1 and 20.0.
func (g *FixtureGenerator) percent() money.Percent {
	return money.PercentFromDecimal(decimal.New(int64(g.faker.Number(1, 200)), -1))
}

// name returns a capitalized, letters-only name so fixtures always satisfy
// the title-plus-capitalized-words client patterns.
func (g *FixtureGenerator) name() string {
	var b strings.Builder
	for _, r := range g.faker.FirstName() {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	s := b.String()
	if len(s) < 2 {
		s = "smith"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// grouped renders an amount with thousands separators but no currency
// symbol, e.g. "1,234.56".
func grouped(m money.Money) string {
	return strings.TrimPrefix(m.Display(), "£")
}

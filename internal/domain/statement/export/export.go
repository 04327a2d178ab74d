// Package export renders extracted statement records for downstream
// consumers that want flat account lists rather than the nested record.
package export

import (
	"fmt"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"github.com/pensionfolio/statement-extractor/internal/domain/statement"
)

// AccountRow is one flattened account. The provider column is repeated per
// row, which is exactly why the record copies it onto every account.
type AccountRow struct {
	Provider      string `csv:"provider"`
	Type          string `csv:"type"`
	AccountNumber string `csv:"account_number"`
	Value         string `csv:"value"`
	Contributions string `csv:"contributions"`
	Return        string `csv:"return"`
	Performance   string `csv:"performance"`
}

// Rows flattens a record's accounts in detection order.
func Rows(rec *statement.Record) []AccountRow {
	rows := make([]AccountRow, 0, len(rec.Accounts))
	for _, a := range rec.Accounts {
		row := AccountRow{
			Provider:      a.Provider,
			Type:          a.Type,
			Value:         a.Value.String(),
			Contributions: a.Contributions.String(),
			Return:        a.Return.String(),
			Performance:   a.Performance.String(),
		}
		if a.AccountNumber != nil {
			row.AccountNumber = *a.AccountNumber
		}
		rows = append(rows, row)
	}
	return rows
}

// AccountsCSV returns the flattened accounts as CSV bytes with a header row.
func AccountsCSV(rec *statement.Record) ([]byte, error) {
	rows := Rows(rec)
	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("marshal accounts csv: %w", err)
	}
	return out, nil
}

const accountsSheet = "Accounts"

// AccountsXLSX returns an XLSX workbook with one sheet of flattened accounts
// and a closing total row.
func AccountsXLSX(rec *statement.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), accountsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := []any{"Provider", "Type", "Account number", "Value", "Contributions", "Return", "Performance (%)"}
	if err := f.SetSheetRow(accountsSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, row := range Rows(rec) {
		cell := fmt.Sprintf("A%d", i+2)
		values := []any{row.Provider, row.Type, row.AccountNumber, row.Value, row.Contributions, row.Return, row.Performance}
		if err := f.SetSheetRow(accountsSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i, err)
		}
	}

	totalCell := fmt.Sprintf("A%d", len(rec.Accounts)+3)
	totalRow := []any{"Total", "", "", rec.TotalValue.Display()}
	if err := f.SetSheetRow(accountsSheet, totalCell, &totalRow); err != nil {
		return nil, fmt.Errorf("write total row: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

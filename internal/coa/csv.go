package coa

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/myfi-dev/myfi/internal/model"
)

const (
	numFields = 3
	colCode   = 0
	colNumber = 1
	colName   = 2
)

// categoryCodes maps chart CSV category codes to account categories.
var categoryCodes = map[string]model.Category{
	"A": model.CategoryAsset,
	"L": model.CategoryLiability,
	"Q": model.CategoryEquity,
	"R": model.CategoryRevenue,
	"E": model.CategoryExpense,
}

// Row is one chart CSV row: (category code, number, name).
type Row struct {
	Code   string
	Number string
	Name   string
}

// Load builds a Chart from rows. Rows with an unrecognized category code are
// skipped; the count of skipped rows is returned so callers can surface it.
func Load(rows []Row) (*Chart, int, error) {
	chart := New()
	skipped := 0
	for _, r := range rows {
		cat, ok := categoryCodes[r.Code]
		if !ok {
			skipped++
			continue
		}
		acct := model.Account{Number: r.Number, Name: r.Name, Category: cat}
		if err := chart.Add(acct); err != nil {
			return nil, 0, fmt.Errorf("adding account %q: %w", r.Name, err)
		}
	}
	return chart, skipped, nil
}

// ReadRows reads chart rows from an accounts.csv reader.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading chart CSV: %w", err)
	}

	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, Row{Code: rec[colCode], Number: rec[colNumber], Name: rec[colName]})
	}
	return rows, nil
}

// WriteRows writes chart rows as CSV.
func WriteRows(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, r := range rows {
		if err := cw.Write([]string{r.Code, r.Number, r.Name}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	return cw.Error()
}

// LoadFile reads an accounts.csv file and builds a Chart from it.
func LoadFile(path string) (*Chart, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return nil, 0, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return Load(rows)
}

package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/myfi-dev/myfi/internal/statement"
)

const (
	numFields  = 6
	dateFormat = "2006-01-02"
	colPosted  = 0
	colFitID   = 1
	colType    = 2
	colCheckNo = 3
	colAmount  = 4
	colName    = 5
)

// GenericParser reads the neutral export format:
// posted,fitid,type,checkno,amount,name with a header row. Amounts are
// signed; negative is an outflow.
type GenericParser struct{}

// Format returns the registry key.
func (p *GenericParser) Format() string {
	return "generic"
}

// Parse reads all entries from a generic CSV export.
func (p *GenericParser) Parse(r io.Reader) ([]statement.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var entries []statement.Entry
	for i, rec := range records[1:] {
		e, err := unmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func unmarshalEntry(rec []string) (statement.Entry, error) {
	posted, err := time.Parse(dateFormat, rec[colPosted])
	if err != nil {
		return statement.Entry{}, fmt.Errorf("parsing date %q: %w", rec[colPosted], err)
	}

	checkNo := 0
	if rec[colCheckNo] != "" {
		checkNo, err = strconv.Atoi(rec[colCheckNo])
		if err != nil {
			return statement.Entry{}, fmt.Errorf("parsing check number %q: %w", rec[colCheckNo], err)
		}
	}

	amount, err := decimal.NewFromString(rec[colAmount])
	if err != nil {
		return statement.Entry{}, fmt.Errorf("parsing amount %q: %w", rec[colAmount], err)
	}

	return statement.Entry{
		Posted:  posted,
		FitID:   rec[colFitID],
		TrnType: rec[colType],
		CheckNo: checkNo,
		Amount:  amount.Round(2),
		Name:    rec[colName],
	}, nil
}

// Package statement archives imported bank statements and books their
// entries into the ledger through the ordinary enter contract.
package statement

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statement is one imported financial-institution statement.
type Statement struct {
	ID        int64
	RTN       string // routing transit number
	Number    string // institution account number
	AcctType  string
	Start     time.Time
	End       time.Time
	Balance   decimal.Decimal
	Available decimal.Decimal
	Entries   []Entry
}

// Entry is one statement line: a cleared movement on the bank account.
// Negative amounts are outflows.
type Entry struct {
	ID      int64
	Posted  time.Time
	FitID   string // institution transaction id, unique per account
	TrnType string
	CheckNo int
	Amount  decimal.Decimal
	Name    string
	Memo    string
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one leg of a transaction. Entries are immutable value objects and
// never exist outside a Transaction.
type Entry struct {
	Origin  time.Time
	Posted  *time.Time // nil until confirmed by a statement
	Account Account
	Debit   bool
	Amount  decimal.Decimal // non-negative, two decimal places
	Memo    string
}

// DebitEntry builds a debit-side leg posted on its origin date.
func DebitEntry(when time.Time, acct Account, amount decimal.Decimal, memo string) Entry {
	return Entry{Origin: when, Posted: &when, Account: acct, Debit: true, Amount: amount, Memo: memo}
}

// CreditEntry builds a credit-side leg posted on its origin date.
func CreditEntry(when time.Time, acct Account, amount decimal.Decimal, memo string) Entry {
	return Entry{Origin: when, Posted: &when, Account: acct, Debit: false, Amount: amount, Memo: memo}
}

// Transaction is a balanced set of entries. IDs are positive, gapless, and
// strictly increasing within one Ledger. A posted Transaction is never
// edited; corrections are new transactions.
type Transaction struct {
	ID      int
	Date    time.Time
	Memo    string
	Entries []Entry
}

// DebitTotal sums the debit-side entry amounts.
func (t Transaction) DebitTotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range t.Entries {
		if e.Debit {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// CreditTotal sums the credit-side entry amounts.
func (t Transaction) CreditTotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range t.Entries {
		if !e.Debit {
			total = total.Add(e.Amount)
		}
	}
	return total
}

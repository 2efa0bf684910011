package ledger

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/myfi-dev/myfi/internal/coa"
	"github.com/myfi-dev/myfi/internal/model"
)

// ErrNoEntries is returned when Enter is called without entries.
var ErrNoEntries = errors.New("transaction requires at least one entry")

// ImbalancedEntryError reports entries whose debit and credit totals differ.
// The offending transaction is rejected and no state is mutated.
type ImbalancedEntryError struct {
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
}

func (e ImbalancedEntryError) Error() string {
	return fmt.Sprintf("entries do not balance: debits %s != credits %s",
		e.DebitTotal.StringFixed(2), e.CreditTotal.StringFixed(2))
}

// Ledger owns the transaction log and per-account balances for one
// accounting period. It shares (does not own) a chart of accounts, and is
// the sole allocator of transaction ids. It is not safe for concurrent use;
// the scheduler loop driving it is the only writer.
type Ledger struct {
	chart    *coa.Chart
	opening  map[string]decimal.Decimal
	balances map[string]decimal.Decimal // keyed by account number
	log      []model.Transaction
}

// New creates a Ledger over a shared chart, seeded with opening balances
// keyed by account number. The opening map may be nil for a fresh period.
func New(chart *coa.Chart, opening map[string]decimal.Decimal) *Ledger {
	balances := make(map[string]decimal.Decimal, len(opening))
	open := make(map[string]decimal.Decimal, len(opening))
	for number, bal := range opening {
		balances[number] = bal
		open[number] = bal
	}
	return &Ledger{chart: chart, opening: open, balances: balances}
}

// Chart returns the shared chart of accounts.
func (l *Ledger) Chart() *coa.Chart {
	return l.chart
}

// Enter validates and posts one transaction. The debit and credit totals of
// entries must be exactly equal at two decimal places; on any failure
// nothing is recorded and the id counter does not advance. The returned
// transaction carries the next gapless id, starting at 1.
func (l *Ledger) Enter(origin time.Time, memo string, entries ...model.Entry) (model.Transaction, error) {
	if len(entries) == 0 {
		return model.Transaction{}, ErrNoEntries
	}

	dr, cr := decimal.Zero, decimal.Zero
	for _, e := range entries {
		if e.Debit {
			dr = dr.Add(e.Amount)
		} else {
			cr = cr.Add(e.Amount)
		}
	}
	if !dr.Equal(cr) {
		return model.Transaction{}, ImbalancedEntryError{DebitTotal: dr, CreditTotal: cr}
	}

	tran := model.Transaction{
		ID:      len(l.log) + 1,
		Date:    origin,
		Memo:    memo,
		Entries: append([]model.Entry(nil), entries...),
	}
	l.log = append(l.log, tran)

	for _, e := range tran.Entries {
		bal := l.balances[e.Account.Number]
		if e.Debit == e.Account.Category.DebitNormal() {
			bal = bal.Add(e.Amount)
		} else {
			bal = bal.Sub(e.Amount)
		}
		l.balances[e.Account.Number] = bal
	}
	return tran, nil
}

// Balance returns the account's current balance, or the two-decimal zero
// value if the account has never been touched.
func (l *Ledger) Balance(acct model.Account) decimal.Decimal {
	if bal, ok := l.balances[acct.Number]; ok {
		return bal
	}
	return decimal.Zero
}

// Touched reports whether the account appears in the balance map, either
// from an opening balance or a posted entry. A closed-out account stays
// touched at zero.
func (l *Ledger) Touched(acct model.Account) bool {
	_, ok := l.balances[acct.Number]
	return ok
}

// Account resolves a chart account by name or number.
func (l *Ledger) Account(key string) (model.Account, error) {
	return l.chart.Resolve(key)
}

// Balances returns a copy of the current balance map, keyed by account
// number. The copy is detached: later postings do not affect it.
func (l *Ledger) Balances() map[string]decimal.Decimal {
	snapshot := make(map[string]decimal.Decimal, len(l.balances))
	for number, bal := range l.balances {
		snapshot[number] = bal
	}
	return snapshot
}

// TransactionCount returns the number of posted transactions, which is also
// the highest allocated id.
func (l *Ledger) TransactionCount() int {
	return len(l.log)
}

// Transactions yields all posted transactions in id order. The sequence is
// lazy and restartable.
func (l *Ledger) Transactions() iter.Seq[model.Transaction] {
	return func(yield func(model.Transaction) bool) {
		for _, tran := range l.log {
			if !yield(tran) {
				return
			}
		}
	}
}

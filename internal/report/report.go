// Package report renders the transaction journal and balance listings.
// Ordering (transaction id, account number) is the contract; the exact text
// layout is informative only.
package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/myfi-dev/myfi/internal/ledger"
	"github.com/myfi-dev/myfi/internal/model"
)

// WriteJournal writes one block per transaction: a header line (date, id,
// memo) then each leg with the amount in the debit or credit column.
func WriteJournal(w io.Writer, l *ledger.Ledger) error {
	for tran := range l.Transactions() {
		if _, err := fmt.Fprintf(w, "%-10s %4d %s\n",
			tran.Date.Format("2006-01-02"), tran.ID, tran.Memo); err != nil {
			return err
		}
		for _, e := range tran.Entries {
			if err := writeEntry(w, e); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeEntry(w io.Writer, e model.Entry) error {
	amount := e.Amount.StringFixed(2)
	var err error
	if e.Debit {
		_, err = fmt.Fprintf(w, "    %-30s %10s                %s\n", e.Account, amount, e.Memo)
	} else {
		_, err = fmt.Fprintf(w, "           %-30s        %10s  %s\n", e.Account, amount, e.Memo)
	}
	return err
}

// WriteBalances writes a trial balance: every touched account in chart
// order with its current balance. Accounts never posted to are omitted;
// closed-out accounts print at zero.
func WriteBalances(w io.Writer, l *ledger.Ledger) error {
	for _, acct := range l.Chart().Accounts() {
		if !l.Touched(acct) {
			continue
		}
		bal := l.Balance(acct)
		if _, err := fmt.Fprintf(w, "%-30s %10s\n", acct, bal.StringFixed(2)); err != nil {
			return err
		}
	}
	return nil
}

// WriteBalanceSheet writes the post-close snapshot grouped by category, with
// the accounting equation totals underneath.
func WriteBalanceSheet(w io.Writer, l *ledger.Ledger) error {
	groups := []struct {
		title string
		cat   model.Category
	}{
		{"Assets", model.CategoryAsset},
		{"Liabilities", model.CategoryLiability},
		{"Equity", model.CategoryEquity},
	}

	totals := make([]decimal.Decimal, len(groups))
	for i, g := range groups {
		if _, err := fmt.Fprintf(w, "%s\n", g.title); err != nil {
			return err
		}
		total := decimal.Zero
		for _, acct := range l.Chart().ByCategory(g.cat) {
			if !l.Touched(acct) {
				continue
			}
			bal := l.Balance(acct)
			total = total.Add(bal)
			if _, err := fmt.Fprintf(w, "  %-30s %10s\n", acct, bal.StringFixed(2)); err != nil {
				return err
			}
		}
		totals[i] = total
		if _, err := fmt.Fprintf(w, "  %-30s %10s\n", "total", total.StringFixed(2)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "assets %s = liabilities %s + equity %s\n",
		totals[0].StringFixed(2), totals[1].StringFixed(2), totals[2].StringFixed(2))
	return err
}

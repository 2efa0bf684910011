package budget

import (
	"fmt"
	"time"

	"github.com/myfi-dev/myfi/internal/coa"
	"github.com/myfi-dev/myfi/internal/ledger"
	"github.com/myfi-dev/myfi/internal/model"
	"github.com/myfi-dev/myfi/internal/recur"
	"github.com/myfi-dev/myfi/internal/taxform"
)

// EmptyEnvelopes returns the period-boundary hook that disburses the giving
// and living envelopes to their destination expense accounts. Postings are
// dated the day before the trigger so they land inside the closing period.
func EmptyEnvelopes() recur.Func {
	return func(l *ledger.Ledger, when time.Time) (recur.Outcome, error) {
		yesterday := when.AddDate(0, 0, -1)
		var trans []model.Transaction

		pairs := []struct {
			envelope, dest, memo string
		}{
			{coa.AllocatedGiving, coa.TemplePatron, "empty giving envelope"},
			{coa.AllocatedLiving, coa.MiscExpenses, "empty living envelope"},
		}
		for _, p := range pairs {
			envelope, err := l.Account(p.envelope)
			if err != nil {
				return recur.Outcome{}, err
			}
			dest, err := l.Account(p.dest)
			if err != nil {
				return recur.Outcome{}, err
			}
			amount := l.Balance(envelope)
			if !amount.IsPositive() {
				continue
			}
			tran, err := l.Enter(yesterday, p.memo,
				model.DebitEntry(yesterday, dest, amount, ""),
				model.CreditEntry(yesterday, envelope, amount, ""),
			)
			if err != nil {
				return recur.Outcome{}, fmt.Errorf("%s: %w", p.memo, err)
			}
			trans = append(trans, tran)
		}
		return recur.Outcome{Transactions: trans}, nil
	}
}

// YearEnd returns the year-boundary hook: it snapshots pre-close balances,
// closes the period as of the day before the trigger, then files the
// simplified federal return against the snapshot and posts any refund one
// month after the trigger.
func YearEnd() recur.Func {
	return func(l *ledger.Ledger, when time.Time) (recur.Outcome, error) {
		yesterday := when.AddDate(0, 0, -1)
		snapshot := l.Balances()

		closed, err := l.Close(yesterday, coa.IncomeSummary)
		if err != nil {
			return recur.Outcome{}, fmt.Errorf("year-end close: %w", err)
		}

		filed, err := taxform.File(l, snapshot, when.AddDate(0, 1, 0), taxform.Single, 0)
		if err != nil {
			return recur.Outcome{}, fmt.Errorf("filing return: %w", err)
		}

		trans := append([]model.Transaction(nil), closed.Transactions...)
		if filed.Posted != nil {
			trans = append(trans, *filed.Posted)
		}
		note := fmt.Sprintf("year end %s: net income %s, refund %s",
			yesterday.Format("2006-01-02"),
			closed.NetIncome.StringFixed(2),
			filed.Refund.StringFixed(2))
		return recur.Outcome{Transactions: trans, Amount: closed.NetIncome, Note: note}, nil
	}
}

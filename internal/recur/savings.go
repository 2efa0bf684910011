package recur

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/myfi-dev/myfi/internal/ledger"
	"github.com/myfi-dev/myfi/internal/model"
)

// Savings accrues periodic interest on a destination account. The accrual is
// deliberately one period behind: each trigger applies the rate to the
// balance snapshotted at the previous trigger, posts the interest if
// positive, then snapshots the new balance as the next period's basis. No
// mid-period compounding.
type Savings struct {
	schedule
	sourceKey string // interest income account credited
	destKey   string // account the interest lands in
	rate      decimal.Decimal
	basis     decimal.Decimal // previous-period ending balance
}

// NewSavings creates an interest-accrual source. rate is the per-period
// rate, e.g. an annual rate divided by 12 for a monthly schedule.
func NewSavings(seq DateSeq, sourceKey, destKey string, rate decimal.Decimal) *Savings {
	return &Savings{schedule: schedule{seq: seq}, sourceKey: sourceKey, destKey: destKey, rate: rate}
}

// Service posts the lagged interest accrual. The outcome amount is the
// interest posted, zero on the first trigger or an empty account.
func (s *Savings) Service(l *ledger.Ledger, when time.Time) (Outcome, error) {
	source, err := l.Account(s.sourceKey)
	if err != nil {
		return Outcome{}, err
	}
	dest, err := l.Account(s.destKey)
	if err != nil {
		return Outcome{}, err
	}

	interest := s.rate.Mul(s.basis).Round(2)

	out := Outcome{Amount: interest}
	if interest.IsPositive() {
		tran, err := l.Enter(when, fmt.Sprintf("interest on %s", dest.Name),
			model.DebitEntry(when, dest, interest, ""),
			model.CreditEntry(when, source, interest, ""),
		)
		if err != nil {
			return Outcome{}, fmt.Errorf("posting interest: %w", err)
		}
		out.Transactions = []model.Transaction{tran}
	}

	s.basis = l.Balance(dest)
	return out, nil
}

package recur

import (
	"fmt"
	"time"

	"github.com/myfi-dev/myfi/internal/coa"
	"github.com/myfi-dev/myfi/internal/ledger"
	"github.com/myfi-dev/myfi/internal/model"
)

// Tithing disburses the allocated-tithing envelope. When the envelope holds
// a positive balance, the full amount moves to the tithing expense account;
// an empty envelope produces no action, which is not an error.
type Tithing struct {
	schedule
}

// NewTithing creates a tithing source on the given schedule.
func NewTithing(seq DateSeq) *Tithing {
	return &Tithing{schedule: schedule{seq: seq}}
}

// Service pays out the reserved tithe, if any. The outcome amount is the
// amount paid.
func (t *Tithing) Service(l *ledger.Ledger, when time.Time) (Outcome, error) {
	envelope, err := l.Account(coa.AllocatedTithing)
	if err != nil {
		return Outcome{}, err
	}
	expense, err := l.Account(coa.Tithing)
	if err != nil {
		return Outcome{}, err
	}

	amount := l.Balance(envelope)
	if !amount.IsPositive() {
		return Outcome{Note: "no tithing reserved"}, nil
	}

	tran, err := l.Enter(when, "pay tithing",
		model.DebitEntry(when, expense, amount, ""),
		model.CreditEntry(when, envelope, amount, ""),
	)
	if err != nil {
		return Outcome{}, fmt.Errorf("paying tithing: %w", err)
	}
	return Outcome{Transactions: []model.Transaction{tran}, Amount: amount}, nil
}

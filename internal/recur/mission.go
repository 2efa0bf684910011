package recur

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/myfi-dev/myfi/internal/ledger"
	"github.com/myfi-dev/myfi/internal/model"
)

// Mission posts a fixed pledge from a savings-like source account to a
// missionary expense account on each trigger date.
type Mission struct {
	schedule
	amount  decimal.Decimal
	fromKey string
	toKey   string
}

// NewMission creates a mission-payment source moving amount from the fromKey
// account to the toKey expense account.
func NewMission(seq DateSeq, amount decimal.Decimal, fromKey, toKey string) *Mission {
	return &Mission{schedule: schedule{seq: seq}, amount: amount, fromKey: fromKey, toKey: toKey}
}

// Service posts the pledge payment.
func (m *Mission) Service(l *ledger.Ledger, when time.Time) (Outcome, error) {
	from, err := l.Account(m.fromKey)
	if err != nil {
		return Outcome{}, err
	}
	to, err := l.Account(m.toKey)
	if err != nil {
		return Outcome{}, err
	}

	tran, err := l.Enter(when, "mission payment",
		model.DebitEntry(when, to, m.amount, ""),
		model.CreditEntry(when, from, m.amount, ""),
	)
	if err != nil {
		return Outcome{}, fmt.Errorf("posting mission payment: %w", err)
	}
	return Outcome{Transactions: []model.Transaction{tran}, Amount: m.amount}, nil
}

package statement

import (
	"fmt"

	"github.com/myfi-dev/myfi/internal/ledger"
	"github.com/myfi-dev/myfi/internal/model"
)

// PostKeys names the ledger accounts statement entries are booked against.
type PostKeys struct {
	Bank    string // asset account mirroring the institution account
	Income  string // credited for inflows
	Expense string // debited for outflows
}

// Post books every statement entry into the ledger as a balanced two-leg
// transaction: inflows debit the bank account against the income account,
// outflows debit the expense account against the bank account. Booking goes
// through Enter so the balance invariant is enforced, never around it.
func Post(l *ledger.Ledger, st Statement, keys PostKeys) ([]model.Transaction, error) {
	bank, err := l.Account(keys.Bank)
	if err != nil {
		return nil, err
	}
	income, err := l.Account(keys.Income)
	if err != nil {
		return nil, err
	}
	expense, err := l.Account(keys.Expense)
	if err != nil {
		return nil, err
	}

	var trans []model.Transaction
	for _, e := range st.Entries {
		if e.Amount.IsZero() {
			continue
		}
		memo := fmt.Sprintf("%s %s", e.TrnType, e.Name)
		amount := e.Amount.Abs()

		var debit, credit model.Entry
		if e.Amount.IsPositive() {
			debit = model.DebitEntry(e.Posted, bank, amount, e.Memo)
			credit = model.CreditEntry(e.Posted, income, amount, e.Memo)
		} else {
			debit = model.DebitEntry(e.Posted, expense, amount, e.Memo)
			credit = model.CreditEntry(e.Posted, bank, amount, e.Memo)
		}

		tran, err := l.Enter(e.Posted, memo, debit, credit)
		if err != nil {
			return trans, fmt.Errorf("booking %s: %w", e.FitID, err)
		}
		trans = append(trans, tran)
	}
	return trans, nil
}

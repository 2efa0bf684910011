// Package taxform computes the simplified federal return (form 1040EZ) as a
// pure function over a ledger balance snapshot, and posts the resulting
// refund through the ordinary enter contract.
package taxform

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/myfi-dev/myfi/internal/coa"
	"github.com/myfi-dev/myfi/internal/ledger"
	"github.com/myfi-dev/myfi/internal/model"
)

// FilingStatus selects the standard deduction table.
type FilingStatus int

const (
	Single FilingStatus = iota
	MarriedJoint
)

// 2015 form constants.
var (
	dependentCredit  = decimal.New(4000, 0)
	wagesFloor       = decimal.New(350, 0)
	minimumDeduction = decimal.New(1050, 0)
	deductionSingle  = decimal.New(6300, 0)
	deductionJoint   = decimal.New(12600, 0)
	flatTaxRate      = decimal.New(1, -1)
)

// Result is the completed return.
type Result struct {
	Wages             decimal.Decimal
	Interest          decimal.Decimal
	AGI               decimal.Decimal
	StandardDeduction decimal.Decimal
	TaxableIncome     decimal.Decimal
	Tax               decimal.Decimal
	Withheld          decimal.Decimal
	Refund            decimal.Decimal
	Posted            *model.Transaction // refund deposit, nil when nothing is due back
}

// Compute fills the return from a balance snapshot keyed by account number,
// as taken before the period close zeroed the revenue and expense accounts.
func Compute(chart *coa.Chart, balances map[string]decimal.Decimal, status FilingStatus, dependents int) (Result, error) {
	wages, err := lookup(chart, balances, coa.W2Income)
	if err != nil {
		return Result{}, err
	}
	interest, err := lookup(chart, balances, coa.InterestEarned)
	if err != nil {
		return Result{}, err
	}
	withheld, err := lookup(chart, balances, coa.FederalIncomeTax)
	if err != nil {
		return Result{}, err
	}

	// Non-taxable interest stays out of AGI; there is no unemployment
	// compensation account in the household chart.
	agi := wages.Add(interest)

	// Line 5 worksheet.
	earned := decimal.Max(wages.Add(wagesFloor), minimumDeduction)
	cap := deductionSingle
	if status == MarriedJoint {
		cap = deductionJoint
	}
	deduction := decimal.Min(earned, cap).
		Add(dependentCredit.Mul(decimal.New(int64(dependents), 0)))

	taxable := decimal.Max(decimal.Zero, agi.Sub(deduction))
	tax := taxable.Mul(flatTaxRate).Round(2)
	refund := decimal.Max(decimal.Zero, withheld.Sub(tax))

	return Result{
		Wages:             wages,
		Interest:          interest,
		AGI:               agi,
		StandardDeduction: deduction,
		TaxableIncome:     taxable,
		Tax:               tax,
		Withheld:          withheld,
		Refund:            refund,
	}, nil
}

// File computes the return and deposits any refund into cash on the given
// date, crediting back the withholding account.
func File(l *ledger.Ledger, balances map[string]decimal.Decimal, when time.Time, status FilingStatus, dependents int) (Result, error) {
	result, err := Compute(l.Chart(), balances, status, dependents)
	if err != nil {
		return Result{}, err
	}
	if !result.Refund.IsPositive() {
		return result, nil
	}

	cash, err := l.Account(coa.Cash)
	if err != nil {
		return Result{}, err
	}
	withholding, err := l.Account(coa.FederalIncomeTax)
	if err != nil {
		return Result{}, err
	}

	tran, err := l.Enter(when, fmt.Sprintf("federal income tax refund for %d", when.Year()-1),
		model.DebitEntry(when, cash, result.Refund, ""),
		model.CreditEntry(when, withholding, result.Refund, ""),
	)
	if err != nil {
		return Result{}, fmt.Errorf("depositing refund: %w", err)
	}
	result.Posted = &tran
	return result, nil
}

func lookup(chart *coa.Chart, balances map[string]decimal.Decimal, key string) (decimal.Decimal, error) {
	acct, err := chart.Resolve(key)
	if err != nil {
		return decimal.Zero, err
	}
	return balances[acct.Number], nil
}

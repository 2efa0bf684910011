package recur

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/myfi-dev/myfi/internal/coa"
	"github.com/myfi-dev/myfi/internal/ledger"
	"github.com/myfi-dev/myfi/internal/model"
)

// PayRates holds the simplified flat withholding rates applied to gross pay,
// plus the share of gross reserved for tithing.
type PayRates struct {
	Federal  decimal.Decimal
	FICA     decimal.Decimal
	Medicare decimal.Decimal
	Tithe    decimal.Decimal
}

// DefaultPayRates returns the standard household rates: 10% federal, 6.2%
// FICA, 1.45% Medicare, 10% tithe.
func DefaultPayRates() PayRates {
	return PayRates{
		Federal:  decimal.New(1, -1),
		FICA:     decimal.New(62, -3),
		Medicare: decimal.New(145, -4),
		Tithe:    decimal.New(1, -1),
	}
}

// Paycheck deposits a recurring wage. Each trigger posts one five-leg
// transaction (net cash, federal withholding, FICA, Medicare, gross income)
// balancing exactly to gross, then a second transaction reserving the tithe
// from cash into the allocated-tithing envelope.
type Paycheck struct {
	schedule
	source string
	hours  decimal.Decimal
	rate   decimal.Decimal
	rates  PayRates
}

// NewPaycheck creates a paycheck source. The source label names the
// employer in transaction memos.
func NewPaycheck(seq DateSeq, source string, hours, rate decimal.Decimal, rates PayRates) *Paycheck {
	return &Paycheck{schedule: schedule{seq: seq}, source: source, hours: hours, rate: rate, rates: rates}
}

// Service posts the paycheck and the tithe reservation. The outcome amount
// is gross pay.
func (p *Paycheck) Service(l *ledger.Ledger, when time.Time) (Outcome, error) {
	gross := p.hours.Mul(p.rate).Round(2)
	federal := gross.Mul(p.rates.Federal).Round(2)
	fica := gross.Mul(p.rates.FICA).Round(2)
	medicare := gross.Mul(p.rates.Medicare).Round(2)
	net := gross.Sub(federal).Sub(fica).Sub(medicare)
	tithe := gross.Mul(p.rates.Tithe).Round(2)

	cash, err := l.Account(coa.Cash)
	if err != nil {
		return Outcome{}, err
	}
	income, err := l.Account(coa.W2Income)
	if err != nil {
		return Outcome{}, err
	}
	fedAcct, err := l.Account(coa.FederalIncomeTax)
	if err != nil {
		return Outcome{}, err
	}
	ficaAcct, err := l.Account(coa.FICA)
	if err != nil {
		return Outcome{}, err
	}
	mediAcct, err := l.Account(coa.Medicare)
	if err != nil {
		return Outcome{}, err
	}
	envelope, err := l.Account(coa.AllocatedTithing)
	if err != nil {
		return Outcome{}, err
	}

	pay, err := l.Enter(when, fmt.Sprintf("paycheck from %s", p.source),
		model.DebitEntry(when, cash, net, "net deposit"),
		model.DebitEntry(when, fedAcct, federal, "federal income tax withheld"),
		model.DebitEntry(when, ficaAcct, fica, "FICA payroll tax deducted"),
		model.DebitEntry(when, mediAcct, medicare, "Medicare payroll tax deducted"),
		model.CreditEntry(when, income, gross,
			fmt.Sprintf("gross pay: %s hours @ $%s", p.hours, p.rate)),
	)
	if err != nil {
		return Outcome{}, fmt.Errorf("posting paycheck: %w", err)
	}

	reserve, err := l.Enter(when, "reserve tithing",
		model.DebitEntry(when, envelope, tithe, ""),
		model.CreditEntry(when, cash, tithe, ""),
	)
	if err != nil {
		return Outcome{}, fmt.Errorf("reserving tithe: %w", err)
	}

	return Outcome{Transactions: []model.Transaction{pay, reserve}, Amount: gross}, nil
}

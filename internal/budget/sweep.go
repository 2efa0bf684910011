// Package budget holds the household cash-allocation policies scheduled as
// recurring sources.
package budget

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/myfi-dev/myfi/internal/coa"
	"github.com/myfi-dev/myfi/internal/ledger"
	"github.com/myfi-dev/myfi/internal/model"
	"github.com/myfi-dev/myfi/internal/recur"
)

// SweepConfig parameterizes the weekly cash sweep.
type SweepConfig struct {
	// EmergencyTarget is the balance the emergency fund is topped up to
	// before anything else is allocated.
	EmergencyTarget decimal.Decimal
	// GivingRate and LivingRate are the shares of remaining cash moved into
	// the giving and living envelopes.
	GivingRate decimal.Decimal
	LivingRate decimal.Decimal
}

// DefaultSweepConfig returns the standard household sweep: $1000 emergency
// reserve, 10% giving, 30% living.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		EmergencyTarget: decimal.New(1000, 0),
		GivingRate:      decimal.New(1, -1),
		LivingRate:      decimal.New(3, -1),
	}
}

// Sweep returns the cash-allocation policy. Each trigger runs a short
// deterministic decision sequence:
//
//  1. top the emergency fund up to the target, preferring cash and tapping
//     the midterm fund for any shortfall cash cannot cover;
//  2. move the configured shares of remaining cash into the giving and
//     living envelopes;
//  3. sweep the cash remainder into the midterm fund;
//  4. sweep any allocated-saving balance into the retirement account.
//
// Each step that moves money becomes one balanced leg pair, and all steps
// post as a single compound transaction. Available balances are decremented
// locally between steps so later steps see earlier ones' effects.
func Sweep(cfg SweepConfig) recur.Func {
	return func(l *ledger.Ledger, when time.Time) (recur.Outcome, error) {
		accts, err := resolveAll(l,
			coa.Cash, coa.EmergencyFund, coa.MidtermFund,
			coa.AllocatedGiving, coa.AllocatedLiving,
			coa.AllocatedSaving, coa.RothIRA)
		if err != nil {
			return recur.Outcome{}, err
		}
		cashAcct, emergency, midterm := accts[0], accts[1], accts[2]
		giving, living, saving, roth := accts[3], accts[4], accts[5], accts[6]

		var entries []model.Entry
		move := func(from, to model.Account, amount decimal.Decimal, memo string) {
			entries = append(entries,
				model.DebitEntry(when, to, amount, memo),
				model.CreditEntry(when, from, amount, memo),
			)
		}

		cash := l.Balance(cashAcct)
		mid := l.Balance(midterm)

		// Emergency reserve first: from cash, then from midterm savings,
		// split across both if neither alone covers the shortfall.
		short := cfg.EmergencyTarget.Sub(l.Balance(emergency))
		if short.IsPositive() {
			if fromCash := decimal.Min(short, cash); fromCash.IsPositive() {
				move(cashAcct, emergency, fromCash, "fund emergency reserve")
				cash = cash.Sub(fromCash)
				short = short.Sub(fromCash)
			}
			if short.IsPositive() {
				if fromMid := decimal.Min(short, mid); fromMid.IsPositive() {
					move(midterm, emergency, fromMid, "fund emergency reserve from savings")
					mid = mid.Sub(fromMid)
				}
			}
		}

		// Envelope shares of whatever cash is left, both rates against the
		// same base, then the remainder out of checking entirely.
		if cash.IsPositive() {
			base := cash
			if give := base.Mul(cfg.GivingRate).Round(2); give.IsPositive() {
				move(cashAcct, giving, give, "giving envelope")
				cash = cash.Sub(give)
			}
			if live := base.Mul(cfg.LivingRate).Round(2); live.IsPositive() {
				move(cashAcct, living, live, "living envelope")
				cash = cash.Sub(live)
			}
			if cash.IsPositive() {
				move(cashAcct, midterm, cash, "sweep to midterm fund")
			}
		}

		// Accumulated allocated saving retires into the Roth.
		if saved := l.Balance(saving); saved.IsPositive() {
			move(saving, roth, saved, "retirement sweep")
		}

		if len(entries) == 0 {
			return recur.Outcome{Note: "nothing to allocate"}, nil
		}
		tran, err := l.Enter(when, "budget sweep", entries...)
		if err != nil {
			return recur.Outcome{}, fmt.Errorf("posting sweep: %w", err)
		}
		return recur.Outcome{Transactions: []model.Transaction{tran}}, nil
	}
}

func resolveAll(l *ledger.Ledger, keys ...string) ([]model.Account, error) {
	accts := make([]model.Account, len(keys))
	for i, key := range keys {
		a, err := l.Account(key)
		if err != nil {
			return nil, err
		}
		accts[i] = a
	}
	return accts, nil
}

package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/myfi-dev/myfi/internal/model"
)

// CloseResult reports the outcome of a period close: the closing
// transactions, the totals moved through the income summary, and a
// balance-sheet snapshot for checking the accounting equation.
type CloseResult struct {
	Transactions []model.Transaction
	RevenueTotal decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetIncome    decimal.Decimal
	Assets       decimal.Decimal
	Liabilities  decimal.Decimal
	Equity       decimal.Decimal
}

// Close zeroes every Revenue and Expense balance into the named income
// summary equity account, one compound transaction per side. Net income
// stays in the summary account. The summary must resolve to an Equity
// account.
func (l *Ledger) Close(when time.Time, summaryKey string) (CloseResult, error) {
	summary, err := l.chart.Resolve(summaryKey)
	if err != nil {
		return CloseResult{}, fmt.Errorf("income summary: %w", err)
	}
	if summary.Category != model.CategoryEquity {
		return CloseResult{}, fmt.Errorf("income summary account %q is %s, want equity", summary.Name, summary.Category)
	}

	var result CloseResult

	revenue, total := l.closingEntries(when, model.CategoryRevenue, summary)
	if len(revenue) > 0 {
		tran, err := l.Enter(when, "close revenue accounts", revenue...)
		if err != nil {
			return CloseResult{}, fmt.Errorf("closing revenue: %w", err)
		}
		result.Transactions = append(result.Transactions, tran)
	}
	result.RevenueTotal = total

	expense, total := l.closingEntries(when, model.CategoryExpense, summary)
	if len(expense) > 0 {
		tran, err := l.Enter(when, "close expense accounts", expense...)
		if err != nil {
			return CloseResult{}, fmt.Errorf("closing expenses: %w", err)
		}
		result.Transactions = append(result.Transactions, tran)
	}
	result.ExpenseTotal = total

	result.NetIncome = result.RevenueTotal.Sub(result.ExpenseTotal)

	for _, acct := range l.chart.Accounts() {
		bal := l.Balance(acct)
		switch acct.Category {
		case model.CategoryAsset:
			result.Assets = result.Assets.Add(bal)
		case model.CategoryLiability:
			result.Liabilities = result.Liabilities.Add(bal)
		case model.CategoryEquity:
			result.Equity = result.Equity.Add(bal)
		}
	}
	return result, nil
}

// closingEntries builds the legs that zero every non-zero account of cat
// into summary, plus the single balancing summary leg. The returned total is
// the signed amount moved (positive in the category's normal direction).
func (l *Ledger) closingEntries(when time.Time, cat model.Category, summary model.Account) ([]model.Entry, decimal.Decimal) {
	var entries []model.Entry
	total := decimal.Zero

	// Zeroing a normal balance takes the opposite side of the account's
	// normal side; a contra (negative) balance takes the normal side.
	for _, acct := range l.chart.ByCategory(cat) {
		bal := l.Balance(acct)
		if bal.IsZero() {
			continue
		}
		debit := acct.Category.DebitNormal() != bal.IsPositive()
		entries = append(entries, model.Entry{
			Origin: when, Posted: &when, Account: acct,
			Debit: debit, Amount: bal.Abs(),
			Memo: "closing entry",
		})
		total = total.Add(bal)
	}
	if len(entries) == 0 {
		return nil, total
	}

	// Balance the compound with one summary leg. Revenue closes as a credit
	// to summary, expenses close as a debit.
	debit := cat == model.CategoryExpense
	if total.IsNegative() {
		debit = !debit
	}
	entries = append(entries, model.Entry{
		Origin: when, Posted: &when, Account: summary,
		Debit: debit, Amount: total.Abs(),
		Memo: "closing entry",
	})
	return entries, total
}

// CarryForward returns an opening-balance map for the next period holding
// every account with a non-zero balance. After a Close, only Asset,
// Liability, and Equity accounts survive.
func (l *Ledger) CarryForward() map[string]decimal.Decimal {
	forward := make(map[string]decimal.Decimal)
	for number, bal := range l.balances {
		if !bal.IsZero() {
			forward[number] = bal
		}
	}
	return forward
}

package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myfi-dev/myfi/internal/coa"
	"github.com/myfi-dev/myfi/internal/model"
)

// postYear books a small year of activity: 500 wages into cash, 120 of
// tithing expense paid from cash.
func postYear(t *testing.T, l *Ledger) {
	t.Helper()
	cash := testAccount(t, l, coa.Cash)
	income := testAccount(t, l, coa.W2Income)
	tithing := testAccount(t, l, coa.Tithing)
	when := date(2015, 6, 1)

	_, err := l.Enter(when, "wages",
		model.DebitEntry(when, cash, dec("500.00"), ""),
		model.CreditEntry(when, income, dec("500.00"), ""),
	)
	require.NoError(t, err)

	_, err = l.Enter(when, "tithing",
		model.DebitEntry(when, tithing, dec("120.00"), ""),
		model.CreditEntry(when, cash, dec("120.00"), ""),
	)
	require.NoError(t, err)
}

func TestClose_ZeroesTemporaryAccounts(t *testing.T) {
	l := New(coa.DefaultChart(), nil)
	postYear(t, l)

	result, err := l.Close(date(2015, 12, 31), coa.IncomeSummary)
	require.NoError(t, err)

	require.Len(t, result.Transactions, 2)
	assert.True(t, result.RevenueTotal.Equal(dec("500.00")))
	assert.True(t, result.ExpenseTotal.Equal(dec("120.00")))
	assert.True(t, result.NetIncome.Equal(dec("380.00")))

	for _, cat := range []model.Category{model.CategoryRevenue, model.CategoryExpense} {
		for _, acct := range l.Chart().ByCategory(cat) {
			assert.True(t, l.Balance(acct).IsZero(), acct.Name)
		}
	}

	summary := testAccount(t, l, coa.IncomeSummary)
	assert.True(t, l.Balance(summary).Equal(dec("380.00")))
}

func TestClose_AccountingEquationHolds(t *testing.T) {
	l := New(coa.DefaultChart(), nil)
	postYear(t, l)

	result, err := l.Close(date(2015, 12, 31), coa.IncomeSummary)
	require.NoError(t, err)

	assert.True(t, result.Assets.Equal(result.Liabilities.Add(result.Equity)),
		"assets %s != liabilities %s + equity %s",
		result.Assets, result.Liabilities, result.Equity)
}

func TestClose_RequiresEquitySummary(t *testing.T) {
	l := New(coa.DefaultChart(), nil)

	_, err := l.Close(date(2015, 12, 31), coa.Cash)
	require.Error(t, err)

	_, err = l.Close(date(2015, 12, 31), "no such account")
	require.Error(t, err)
}

func TestClose_NothingToClose(t *testing.T) {
	l := New(coa.DefaultChart(), nil)

	result, err := l.Close(date(2015, 12, 31), coa.IncomeSummary)
	require.NoError(t, err)
	assert.Empty(t, result.Transactions)
	assert.True(t, result.NetIncome.IsZero())
}

func TestCarryForward_SeedsNextPeriod(t *testing.T) {
	chart := coa.DefaultChart()
	l := New(chart, nil)
	postYear(t, l)

	_, err := l.Close(date(2015, 12, 31), coa.IncomeSummary)
	require.NoError(t, err)

	forward := l.CarryForward()
	next := New(chart, forward)

	// Asset/liability/equity balances reproduce; revenue/expense are gone.
	for _, acct := range chart.Accounts() {
		switch acct.Category {
		case model.CategoryRevenue, model.CategoryExpense:
			_, ok := forward[acct.Number]
			assert.False(t, ok, acct.Name)
		default:
			assert.True(t, next.Balance(acct).Equal(l.Balance(acct)), acct.Name)
		}
	}
	assert.Equal(t, 0, next.TransactionCount())
}

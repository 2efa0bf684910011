package recur

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myfi-dev/myfi/internal/coa"
	"github.com/myfi-dev/myfi/internal/ledger"
)

func openingFor(t *testing.T, chart *coa.Chart, key, amount string) map[string]decimal.Decimal {
	t.Helper()
	acct, err := chart.Resolve(key)
	require.NoError(t, err)
	return map[string]decimal.Decimal{acct.Number: dec(amount)}
}

func TestTithing_PaysReservedBalance(t *testing.T) {
	chart := coa.DefaultChart()
	l := ledger.New(chart, openingFor(t, chart, coa.AllocatedTithing, "34.80"))
	when := date(2015, 2, 1)

	src := NewTithing(FixedDates(when))
	out, err := src.Service(l, when)
	require.NoError(t, err)

	require.Len(t, out.Transactions, 1)
	assert.True(t, out.Amount.Equal(dec("34.80")))
	assert.True(t, balance(t, l, coa.AllocatedTithing).IsZero())
	assert.True(t, balance(t, l, coa.Tithing).Equal(dec("34.80")))
}

func TestTithing_NothingReservedIsNoOp(t *testing.T) {
	l := ledger.New(coa.DefaultChart(), nil)
	when := date(2015, 2, 1)

	src := NewTithing(FixedDates(when))
	out, err := src.Service(l, when)
	require.NoError(t, err)

	assert.Empty(t, out.Transactions)
	assert.Equal(t, 0, l.TransactionCount())
}

func TestMission_PostsPledge(t *testing.T) {
	chart := coa.DefaultChart()
	l := ledger.New(chart, openingFor(t, chart, coa.MidtermFund, "2000.00"))
	when := date(2015, 9, 1)

	src := NewMission(FixedDates(when), dec("450.00"), coa.MidtermFund, coa.Missionary)
	out, err := src.Service(l, when)
	require.NoError(t, err)

	require.Len(t, out.Transactions, 1)
	assert.True(t, balance(t, l, coa.MidtermFund).Equal(dec("1550.00")))
	assert.True(t, balance(t, l, coa.Missionary).Equal(dec("450.00")))
}

func TestSavings_LaggedAccrual(t *testing.T) {
	chart := coa.DefaultChart()
	l := ledger.New(chart, openingFor(t, chart, coa.EmergencyFund, "1000.00"))

	rate := dec("0.0065").Div(decimal.NewFromInt(12))
	src := NewSavings(FixedDates(date(2015, 1, 1), date(2015, 2, 1)), coa.InterestEarned, coa.EmergencyFund, rate)

	// First trigger: no prior snapshot, so nothing accrues; the current
	// balance becomes the next period's basis.
	out, err := src.Service(l, date(2015, 1, 1))
	require.NoError(t, err)
	assert.Empty(t, out.Transactions)
	assert.True(t, out.Amount.IsZero())

	// Second trigger: round(1000.00 * 0.0065/12, 2) = 0.54.
	out, err = src.Service(l, date(2015, 2, 1))
	require.NoError(t, err)
	require.Len(t, out.Transactions, 1)
	assert.True(t, out.Amount.Equal(dec("0.54")))
	assert.True(t, balance(t, l, coa.EmergencyFund).Equal(dec("1000.54")))
	assert.True(t, balance(t, l, coa.InterestEarned).Equal(dec("0.54")))
}

func TestSavings_EmptyAccountNeverPosts(t *testing.T) {
	l := ledger.New(coa.DefaultChart(), nil)

	rate := dec("0.0065").Div(decimal.NewFromInt(12))
	src := NewSavings(FixedDates(date(2015, 1, 1), date(2015, 2, 1)), coa.InterestEarned, coa.EmergencyFund, rate)

	for _, month := range []time.Month{time.January, time.February} {
		out, err := src.Service(l, date(2015, month, 1))
		require.NoError(t, err)
		assert.Empty(t, out.Transactions)
	}
}

func TestPolicy_WrapsInjectedFunc(t *testing.T) {
	l := ledger.New(coa.DefaultChart(), nil)
	when := date(2015, 1, 1)

	called := 0
	probe := NewPolicy(FixedDates(when), "probe", func(inner *ledger.Ledger, at time.Time) (Outcome, error) {
		called++
		assert.Same(t, l, inner)
		assert.True(t, at.Equal(when))
		return Outcome{Note: "ran"}, nil
	})

	out, err := probe.Service(l, when)
	require.NoError(t, err)
	assert.Equal(t, 1, called)
	assert.Equal(t, "ran", out.Note)
	assert.Equal(t, "probe", probe.Name())
}

func TestEcho_ObservesWithoutMutating(t *testing.T) {
	l := ledger.New(coa.DefaultChart(), nil)
	when := date(2015, 3, 15)

	src := NewEcho(FixedDates(when), "tick")
	out, err := src.Service(l, when)
	require.NoError(t, err)

	assert.Equal(t, "tick 2015-03-15", out.Note)
	assert.Equal(t, 0, l.TransactionCount())
}

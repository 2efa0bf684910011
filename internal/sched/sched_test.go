package sched

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myfi-dev/myfi/internal/coa"
	"github.com/myfi-dev/myfi/internal/ledger"
	"github.com/myfi-dev/myfi/internal/recur"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newLedger() *ledger.Ledger {
	return ledger.New(coa.DefaultChart(), nil)
}

func collect(s *Scheduler, l *ledger.Ledger, horizon time.Time) []Tick {
	var ticks []Tick
	for tick := range s.Run(l, horizon) {
		ticks = append(ticks, tick)
	}
	return ticks
}

func labels(ticks []Tick) []string {
	out := make([]string, len(ticks))
	for i, tick := range ticks {
		out[i] = tick.Outcome.Note
	}
	return out
}

func TestRun_DateOrderAcrossSources(t *testing.T) {
	s := New(FailAbort)
	s.Add(
		recur.NewEcho(recur.FixedDates(date(2015, 1, 5), date(2015, 1, 20)), "a"),
		recur.NewEcho(recur.FixedDates(date(2015, 1, 1), date(2015, 1, 10)), "b"),
	)

	ticks := collect(s, newLedger(), date(2015, 12, 31))
	assert.Equal(t, []string{
		"b 2015-01-01", "a 2015-01-05", "b 2015-01-10", "a 2015-01-20",
	}, labels(ticks))
}

func TestRun_SameDateUsesRegistrationOrder(t *testing.T) {
	when := date(2015, 1, 1)

	// Repeated runs with identical inputs must visit same-date sources in
	// the order they were added.
	for i := 0; i < 5; i++ {
		s := New(FailAbort)
		s.Add(
			recur.NewEcho(recur.FixedDates(when), "first"),
			recur.NewEcho(recur.FixedDates(when), "second"),
			recur.NewEcho(recur.FixedDates(when), "third"),
		)

		ticks := collect(s, newLedger(), when)
		assert.Equal(t, []string{
			"first 2015-01-01", "second 2015-01-01", "third 2015-01-01",
		}, labels(ticks))
	}
}

func TestRun_HorizonLeavesSourceUnconsumed(t *testing.T) {
	s := New(FailAbort)
	s.Add(recur.NewEcho(recur.FixedDates(date(2015, 1, 1), date(2015, 6, 1)), "a"))

	ticks := collect(s, newLedger(), date(2015, 3, 1))
	assert.Equal(t, []string{"a 2015-01-01"}, labels(ticks))

	// The June occurrence is still pending, not consumed.
	_, next, ok := s.Earliest()
	require.True(t, ok)
	assert.True(t, next.Equal(date(2015, 6, 1)))
}

func TestRun_ExhaustedSourceLeavesPool(t *testing.T) {
	s := New(FailAbort)
	s.Add(recur.NewEcho(recur.FixedDates(date(2015, 1, 1)), "a"))

	ticks := collect(s, newLedger(), date(2015, 12, 31))
	assert.Len(t, ticks, 1)
	assert.Equal(t, 0, s.Len())
}

func TestAdd_DiscardsExhaustedSources(t *testing.T) {
	s := New(FailAbort)
	s.Add(recur.NewEcho(recur.FixedDates(), "empty"))
	assert.Equal(t, 0, s.Len())
}

func TestEarliestBefore(t *testing.T) {
	s := New(FailAbort)
	s.Add(recur.NewEcho(recur.FixedDates(date(2015, 6, 1)), "a"))

	_, _, ok := s.EarliestBefore(date(2015, 3, 1))
	assert.False(t, ok)

	_, got, ok := s.EarliestBefore(date(2015, 12, 31))
	require.True(t, ok)
	assert.True(t, got.Equal(date(2015, 6, 1)))
}

func failing(dates ...time.Time) recur.Source {
	return recur.NewPolicy(recur.FixedDates(dates...), "boom",
		func(*ledger.Ledger, time.Time) (recur.Outcome, error) {
			return recur.Outcome{}, errors.New("service failed")
		})
}

func TestRun_FailAbortStopsAfterYieldingError(t *testing.T) {
	s := New(FailAbort)
	s.Add(
		failing(date(2015, 1, 1), date(2015, 2, 1)),
		recur.NewEcho(recur.FixedDates(date(2015, 3, 1)), "later"),
	)

	ticks := collect(s, newLedger(), date(2015, 12, 31))
	require.Len(t, ticks, 1)
	require.Error(t, ticks[0].Err)
}

func TestRun_FailDropRemovesSource(t *testing.T) {
	s := New(FailDrop)
	s.Add(
		failing(date(2015, 1, 1), date(2015, 2, 1)),
		recur.NewEcho(recur.FixedDates(date(2015, 3, 1)), "later"),
	)

	ticks := collect(s, newLedger(), date(2015, 12, 31))
	require.Len(t, ticks, 2)
	assert.Error(t, ticks[0].Err)
	assert.Equal(t, "later 2015-03-01", ticks[1].Outcome.Note)
}

func TestRun_FailAdvanceRetriesNextDate(t *testing.T) {
	s := New(FailAdvance)
	s.Add(failing(date(2015, 1, 1), date(2015, 2, 1)))

	ticks := collect(s, newLedger(), date(2015, 12, 31))
	require.Len(t, ticks, 2)
	assert.Error(t, ticks[0].Err)
	assert.Error(t, ticks[1].Err)
	assert.Equal(t, 0, s.Len())
}

func TestRun_StoppingEarlyIsSafe(t *testing.T) {
	s := New(FailAbort)
	s.Add(recur.NewEcho(recur.FixedDates(date(2015, 1, 1), date(2015, 2, 1), date(2015, 3, 1)), "a"))

	seen := 0
	for range s.Run(newLedger(), date(2015, 12, 31)) {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestRun_TithingSeesSameDayPaycheck(t *testing.T) {
	l := newLedger()
	payday := date(2015, 1, 1)

	s := New(FailAbort)
	s.Add(
		recur.NewPaycheck(recur.FixedDates(payday), "IFA",
			dec("16.00"), dec("7.25"), recur.DefaultPayRates()),
		recur.NewTithing(recur.FixedDates(payday)),
	)

	ticks := collect(s, l, payday)
	require.Len(t, ticks, 2)
	for _, tick := range ticks {
		require.NoError(t, tick.Err)
	}

	// The tithe reserved by the paycheck was disbursed the same day.
	envelope, err := l.Account(coa.AllocatedTithing)
	require.NoError(t, err)
	assert.True(t, l.Balance(envelope).IsZero())

	expense, err := l.Account(coa.Tithing)
	require.NoError(t, err)
	assert.True(t, l.Balance(expense).Equal(dec("11.60")))
}

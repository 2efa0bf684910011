package recur

import (
	"sort"
	"time"

	"github.com/teambition/rrule-go"
)

// DateSeq produces an ascending, possibly empty, possibly unbounded sequence
// of candidate dates. Next advances the sequence; ok == false signals
// exhaustion. Calendar-rule construction (weekly/monthly/yearly anchors) is
// delegated to the rule engine; the core only needs this contract.
type DateSeq interface {
	Next() (time.Time, bool)
}

type sliceSeq struct {
	dates []time.Time
	pos   int
}

func (s *sliceSeq) Next() (time.Time, bool) {
	if s.pos >= len(s.dates) {
		return time.Time{}, false
	}
	d := s.dates[s.pos]
	s.pos++
	return d, true
}

// FixedDates returns a DateSeq over an explicit date list, sorted ascending.
func FixedDates(dates ...time.Time) DateSeq {
	sorted := append([]time.Time(nil), dates...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })
	return &sliceSeq{dates: sorted}
}

type ruleSeq struct {
	next rrule.Next
}

func (s *ruleSeq) Next() (time.Time, bool) {
	return s.next()
}

// RuleDates adapts a recurrence rule to a DateSeq.
func RuleDates(r *rrule.RRule) DateSeq {
	return &ruleSeq{next: r.Iterator()}
}

// RuleSetDates adapts a recurrence rule set to a DateSeq.
func RuleSetDates(s *rrule.Set) DateSeq {
	return &ruleSeq{next: s.Iterator()}
}

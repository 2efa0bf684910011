// Package sched merges many recurring sources into one globally time-ordered
// execution: a small discrete-event loop over the shared ledger.
package sched

import (
	"container/heap"
	"fmt"
	"iter"
	"time"

	"github.com/rs/zerolog"

	"github.com/myfi-dev/myfi/internal/ledger"
	"github.com/myfi-dev/myfi/internal/recur"
)

// FailurePolicy decides what happens to a source whose Service call fails.
// The failing tick itself is always yielded to the caller with its error.
type FailurePolicy int

const (
	// FailAbort stops the run after yielding the failing tick.
	FailAbort FailurePolicy = iota
	// FailDrop removes the failing source from the pool and continues.
	FailDrop
	// FailAdvance re-queues the failing source at its next date and continues.
	FailAdvance
)

// Tick is one scheduler step: the source serviced, the trigger date, and
// either its outcome or its error.
type Tick struct {
	Source  recur.Source
	Date    time.Time
	Outcome recur.Outcome
	Err     error
}

type entry struct {
	date time.Time
	seq  int // registration order, breaks same-date ties
	src  recur.Source
}

type pool []entry

func (p pool) Len() int { return len(p) }

func (p pool) Less(i, j int) bool {
	if !p[i].date.Equal(p[j].date) {
		return p[i].date.Before(p[j].date)
	}
	return p[i].seq < p[j].seq
}

func (p pool) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

func (p *pool) Push(x any) { *p = append(*p, x.(entry)) }

func (p *pool) Pop() any {
	old := *p
	n := len(old)
	e := old[n-1]
	*p = old[:n-1]
	return e
}

// Scheduler orders a pool of recurring sources by (next trigger date,
// registration order) and drives them against a ledger one event at a time.
// The ordering is a strict total order: same-date sources run in the order
// they were added, which matters when a later source (Tithing) consumes what
// an earlier one (Paycheck) posted that day.
type Scheduler struct {
	pool    pool
	nextSeq int
	policy  FailurePolicy
	log     zerolog.Logger
}

// New creates an empty scheduler with the given failure policy.
func New(policy FailurePolicy) *Scheduler {
	return &Scheduler{policy: policy, log: zerolog.Nop()}
}

// SetLogger enables tick tracing.
func (s *Scheduler) SetLogger(log zerolog.Logger) {
	s.log = log
}

// Add registers a source, pulling its first trigger date. A source that is
// already exhausted is discarded; it still consumes a registration sequence
// number.
func (s *Scheduler) Add(sources ...recur.Source) {
	for _, src := range sources {
		seq := s.nextSeq
		s.nextSeq++
		date, ok := src.NextDate()
		if !ok {
			continue
		}
		heap.Push(&s.pool, entry{date: date, seq: seq, src: src})
	}
}

// Len returns the number of active sources in the pool.
func (s *Scheduler) Len() int {
	return len(s.pool)
}

// Earliest peeks at the next source due, without consuming it.
func (s *Scheduler) Earliest() (recur.Source, time.Time, bool) {
	if len(s.pool) == 0 {
		return nil, time.Time{}, false
	}
	e := s.pool[0]
	return e.src, e.date, true
}

// EarliestBefore peeks at the next source due, but only if it is due on or
// before horizon.
func (s *Scheduler) EarliestBefore(horizon time.Time) (recur.Source, time.Time, bool) {
	src, date, ok := s.Earliest()
	if !ok || date.After(horizon) {
		return nil, time.Time{}, false
	}
	return src, date, true
}

// Run drives the pool against the ledger up to and including horizon,
// yielding one Tick per serviced event. The sequence is lazy and single-pass:
// control returns to the caller after every event, and stopping early leaves
// no buffered side effects. The run ends when the pool empties, the earliest
// date passes the horizon (that source is left unconsumed), or a failure
// occurs under FailAbort.
func (s *Scheduler) Run(l *ledger.Ledger, horizon time.Time) iter.Seq[Tick] {
	return func(yield func(Tick) bool) {
		for len(s.pool) > 0 {
			if s.pool[0].date.After(horizon) {
				return
			}
			e := heap.Pop(&s.pool).(entry)

			out, err := e.src.Service(l, e.date)
			s.trace(e, out, err)
			if !yield(Tick{Source: e.src, Date: e.date, Outcome: out, Err: err}) {
				return
			}

			if err != nil {
				switch s.policy {
				case FailAbort:
					return
				case FailDrop:
					continue
				case FailAdvance:
					// fall through to re-queue
				}
			}
			if next, ok := e.src.NextDate(); ok {
				heap.Push(&s.pool, entry{date: next, seq: e.seq, src: e.src})
			}
		}
	}
}

func (s *Scheduler) trace(e entry, out recur.Outcome, err error) {
	ev := s.log.Debug().
		Str("date", e.date.Format("2006-01-02")).
		Int("seq", e.seq).
		Str("source", sourceName(e.src))
	if err != nil {
		ev = ev.Err(err)
	}
	if out.Note != "" {
		ev = ev.Str("note", out.Note)
	}
	ev.Int("transactions", len(out.Transactions)).Msg("tick")
}

func sourceName(src recur.Source) string {
	if named, ok := src.(interface{ Name() string }); ok {
		return named.Name()
	}
	return fmt.Sprintf("%T", src)
}

package recur

import (
	"fmt"
	"time"

	"github.com/myfi-dev/myfi/internal/ledger"
)

// Func is an arbitrary ledger-mutating action run on a schedule.
type Func func(l *ledger.Ledger, when time.Time) (Outcome, error)

// Policy wraps an injected Func as a Source. Multi-step cash-allocation
// rules and period-boundary hooks are expressed this way; the source
// interface stays open so any function can be scheduled.
type Policy struct {
	schedule
	name string
	fn   Func
}

// NewPolicy creates a policy source. The name appears in diagnostics only.
func NewPolicy(seq DateSeq, name string, fn Func) *Policy {
	return &Policy{schedule: schedule{seq: seq}, name: name, fn: fn}
}

// Name returns the policy's diagnostic name.
func (p *Policy) Name() string {
	return p.name
}

// Service runs the wrapped function.
func (p *Policy) Service(l *ledger.Ledger, when time.Time) (Outcome, error) {
	out, err := p.fn(l, when)
	if err != nil {
		return Outcome{}, fmt.Errorf("policy %s: %w", p.name, err)
	}
	return out, nil
}

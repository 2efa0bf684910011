package recur

import (
	"fmt"
	"time"

	"github.com/myfi-dev/myfi/internal/ledger"
)

// Echo is a diagnostic source: it observes its own trigger dates and never
// touches the ledger. Useful for tracing schedule interleaving.
type Echo struct {
	schedule
	label string
}

// NewEcho creates an echo source.
func NewEcho(seq DateSeq, label string) *Echo {
	return &Echo{schedule: schedule{seq: seq}, label: label}
}

// Service reports the trigger without mutating anything.
func (e *Echo) Service(_ *ledger.Ledger, when time.Time) (Outcome, error) {
	return Outcome{Note: fmt.Sprintf("%s %s", e.label, when.Format("2006-01-02"))}, nil
}

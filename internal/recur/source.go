// Package recur defines recurring ledger policies: objects that expose an
// ascending sequence of trigger dates and an action to perform at each.
package recur

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/myfi-dev/myfi/internal/ledger"
	"github.com/myfi-dev/myfi/internal/model"
)

// Outcome is what a Source produced at one trigger date.
type Outcome struct {
	Transactions []model.Transaction // postings made, possibly none
	Amount       decimal.Decimal     // headline amount: gross pay, tithe paid, interest accrued
	Note         string              // diagnostic text, if any
}

// Source is a recurring ledger policy. NextDate advances and returns the
// next trigger date; exhaustion (ok == false) is terminal and not an error.
// Service performs the policy's action against the ledger at the given date.
// A source owns its private state and must not depend on another source's
// internals — only on ledger balances visible at service time.
type Source interface {
	NextDate() (time.Time, bool)
	Service(l *ledger.Ledger, when time.Time) (Outcome, error)
}

// schedule satisfies the NextDate half of Source from a DateSeq.
type schedule struct {
	seq DateSeq
}

func (s *schedule) NextDate() (time.Time, bool) {
	return s.seq.Next()
}

package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/teambition/rrule-go"

	"github.com/myfi-dev/myfi/internal/budget"
	"github.com/myfi-dev/myfi/internal/config"
	"github.com/myfi-dev/myfi/internal/recur"
	"github.com/myfi-dev/myfi/internal/sched"
)

const dateFormat = "2006-01-02"

var weekdays = map[string]rrule.Weekday{
	"MO": rrule.MO, "TU": rrule.TU, "WE": rrule.WE, "TH": rrule.TH,
	"FR": rrule.FR, "SA": rrule.SA, "SU": rrule.SU,
}

// buildScheduler assembles the recurring sources described by cfg into a
// scheduler. Registration order fixes same-date execution: paychecks land
// before the sweep, the sweep before tithing disbursement, and the year-end
// hooks last.
func buildScheduler(cfg *config.Config, from, horizon time.Time) (*sched.Scheduler, error) {
	s := sched.New(sched.FailAbort)

	rates, err := cfg.Rates.PayRates()
	if err != nil {
		return nil, err
	}
	sweepCfg, err := cfg.Budget.SweepConfig()
	if err != nil {
		return nil, err
	}

	for _, pc := range cfg.Paychecks {
		seq, err := paycheckDates(pc, from, horizon)
		if err != nil {
			return nil, fmt.Errorf("paycheck %s: %w", pc.Source, err)
		}
		hours, err := parseAmount("hours", pc.Hours)
		if err != nil {
			return nil, fmt.Errorf("paycheck %s: %w", pc.Source, err)
		}
		rate, err := parseAmount("rate", pc.Rate)
		if err != nil {
			return nil, fmt.Errorf("paycheck %s: %w", pc.Source, err)
		}
		s.Add(recur.NewPaycheck(seq, pc.Source, hours, rate, rates))
	}

	// The weekly sweep shares the first paycheck's weekday so it runs the
	// same day, after the deposit.
	sweepDay := rrule.FR
	if len(cfg.Paychecks) > 0 {
		if wd, ok := weekdays[cfg.Paychecks[0].Weekday]; ok {
			sweepDay = wd
		}
	}
	weekly, err := rrule.NewRRule(rrule.ROption{
		Freq: rrule.WEEKLY, Dtstart: from, Until: horizon,
		Byweekday: []rrule.Weekday{sweepDay},
	})
	if err != nil {
		return nil, fmt.Errorf("sweep schedule: %w", err)
	}
	s.Add(recur.NewPolicy(recur.RuleDates(weekly), "budget sweep", budget.Sweep(sweepCfg)))

	monthly, err := rrule.NewRRule(rrule.ROption{
		Freq: rrule.MONTHLY, Dtstart: from, Until: horizon,
		Bymonthday: []int{1},
	})
	if err != nil {
		return nil, fmt.Errorf("tithing schedule: %w", err)
	}
	s.Add(recur.NewTithing(recur.RuleDates(monthly)))

	for _, mc := range cfg.Missions {
		start, err := time.Parse(dateFormat, mc.Start)
		if err != nil {
			return nil, fmt.Errorf("mission start %q: %w", mc.Start, err)
		}
		rule, err := rrule.NewRRule(rrule.ROption{
			Freq: rrule.MONTHLY, Dtstart: start, Count: mc.Months,
		})
		if err != nil {
			return nil, fmt.Errorf("mission schedule: %w", err)
		}
		amount, err := parseAmount("amount", mc.Amount)
		if err != nil {
			return nil, fmt.Errorf("mission: %w", err)
		}
		s.Add(recur.NewMission(recur.RuleDates(rule), amount, mc.From, mc.To))
	}

	for _, sc := range cfg.Savings {
		rule, err := rrule.NewRRule(rrule.ROption{
			Freq: rrule.MONTHLY, Dtstart: from, Until: horizon,
			Bymonthday: []int{1},
		})
		if err != nil {
			return nil, fmt.Errorf("savings schedule: %w", err)
		}
		annual, err := parseAmount("annual_rate", sc.AnnualRate)
		if err != nil {
			return nil, fmt.Errorf("savings %s: %w", sc.Dest, err)
		}
		monthlyRate := annual.Div(monthsPerYear)
		s.Add(recur.NewSavings(recur.RuleDates(rule), sc.Source, sc.Dest, monthlyRate))
	}

	// Year boundaries: empty the envelopes, then close the books and file.
	yearStart, err := firstFiscalStart(cfg.Fiscal.YearStart, from)
	if err != nil {
		return nil, err
	}
	yearly, err := rrule.NewRRule(rrule.ROption{
		Freq: rrule.YEARLY, Dtstart: yearStart, Until: horizon,
	})
	if err != nil {
		return nil, fmt.Errorf("year-end schedule: %w", err)
	}
	yearly2, err := rrule.NewRRule(rrule.ROption{
		Freq: rrule.YEARLY, Dtstart: yearStart, Until: horizon,
	})
	if err != nil {
		return nil, fmt.Errorf("year-end schedule: %w", err)
	}
	s.Add(recur.NewPolicy(recur.RuleDates(yearly), "empty envelopes", budget.EmptyEnvelopes()))
	s.Add(recur.NewPolicy(recur.RuleDates(yearly2), "year end", budget.YearEnd()))

	return s, nil
}

var monthsPerYear = decimal.NewFromInt(12)

func parseAmount(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %s %q: %w", field, value, err)
	}
	return d, nil
}

// firstFiscalStart returns the first "MM-DD" fiscal boundary strictly after
// from.
func firstFiscalStart(yearStart string, from time.Time) (time.Time, error) {
	boundary, err := time.Parse("01-02", yearStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing fiscal year_start %q: %w", yearStart, err)
	}
	candidate := time.Date(from.Year(), boundary.Month(), boundary.Day(), 0, 0, 0, 0, time.UTC)
	if !candidate.After(from) {
		candidate = candidate.AddDate(1, 0, 0)
	}
	return candidate, nil
}

func paycheckDates(pc config.PaycheckConfig, from, horizon time.Time) (recur.DateSeq, error) {
	wd, ok := weekdays[pc.Weekday]
	if !ok {
		return nil, fmt.Errorf("unknown weekday %q", pc.Weekday)
	}

	start := from
	if pc.Start != "" {
		var err error
		if start, err = time.Parse(dateFormat, pc.Start); err != nil {
			return nil, fmt.Errorf("parsing start %q: %w", pc.Start, err)
		}
	}
	until := horizon
	if pc.Until != "" {
		var err error
		if until, err = time.Parse(dateFormat, pc.Until); err != nil {
			return nil, fmt.Errorf("parsing until %q: %w", pc.Until, err)
		}
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq: rrule.WEEKLY, Dtstart: start, Until: until,
		Byweekday: []rrule.Weekday{wd},
	})
	if err != nil {
		return nil, err
	}
	return recur.RuleDates(rule), nil
}

// Package schedule derives work and break periods from an alternating
// login/logout instant sequence and projects the logout time that
// completes a target amount of active work.
//
// Every function here is pure: callers snapshot "now" once and pass it
// in, so repeated invocations with identical inputs give identical
// results.
package schedule

import (
	"math"
	"time"
)

type PeriodKind string

const (
	KindWork  PeriodKind = "work"
	KindBreak PeriodKind = "break"
)

// Period is a single stretch of either work or break. Ongoing is set
// only on a trailing break whose end is "now" rather than a logged
// instant.
type Period struct {
	Kind    PeriodKind
	Start   time.Time
	End     time.Time
	Minutes float64
	Ongoing bool
}

// Derivation holds the periods and minute totals derived from one
// instant sequence. Per-period minutes stay real-valued; only the two
// sums are rounded, to the nearest whole minute (math.Round).
type Derivation struct {
	WorkPeriods       []Period
	Breaks            []Period
	ActiveMinutes     int
	TotalBreakMinutes int
}

// DeriveAlternating interprets instants as strictly alternating events
// starting with a login: index 0 is IN, index 1 is OUT (break start),
// index 2 is IN (break end), and so on.
//
// The four structural cases are handled explicitly: an empty or
// single-instant sequence yields nothing; an odd count ends with work
// still running (the last logged event is a break end), so the final
// work period runs to now; an even count ends with an unmatched OUT,
// so a trailing ongoing break runs to now.
func DeriveAlternating(instants []time.Time, now time.Time) Derivation {
	d := Derivation{
		WorkPeriods: []Period{},
		Breaks:      []Period{},
	}

	if len(instants) < 2 {
		return d
	}

	d.WorkPeriods = append(d.WorkPeriods, newPeriod(KindWork, instants[0], instants[1], false))

	for i := 1; i+1 < len(instants); i += 2 {
		d.Breaks = append(d.Breaks, newPeriod(KindBreak, instants[i], instants[i+1], false))

		if i+2 < len(instants) {
			d.WorkPeriods = append(d.WorkPeriods, newPeriod(KindWork, instants[i+1], instants[i+2], false))
		} else {
			// The break end is the last logged event: work is still
			// running, count it up to now.
			d.WorkPeriods = append(d.WorkPeriods, newPeriod(KindWork, instants[i+1], now, false))
		}
	}

	if len(instants)%2 == 0 {
		// Unmatched OUT at the tail: currently on a break.
		last := instants[len(instants)-1]
		d.Breaks = append(d.Breaks, newPeriod(KindBreak, last, now, true))
	}

	d.ActiveMinutes = roundedSum(d.WorkPeriods)
	d.TotalBreakMinutes = roundedSum(d.Breaks)
	return d
}

func newPeriod(kind PeriodKind, start, end time.Time, ongoing bool) Period {
	minutes := end.Sub(start).Minutes()
	if minutes < 0 {
		// Out-of-order upstream data must not produce negative
		// durations.
		minutes = 0
	}

	return Period{
		Kind:    kind,
		Start:   start,
		End:     end,
		Minutes: minutes,
		Ongoing: ongoing,
	}
}

func roundedSum(periods []Period) int {
	sum := 0.0
	for _, p := range periods {
		sum += p.Minutes
	}
	return int(math.Round(sum))
}

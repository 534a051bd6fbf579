package schedule

import (
	"math"
	"testing"
	"time"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, time.March, 1, hour, minute, 0, 0, time.Local)
}

func TestDeriveTooFewInstants(t *testing.T) {
	now := at(12, 0)

	for _, instants := range [][]time.Time{nil, {}, {at(9, 0)}} {
		d := DeriveAlternating(instants, now)
		if len(d.WorkPeriods) != 0 || len(d.Breaks) != 0 {
			t.Errorf("expected no periods for %d instants", len(instants))
		}
		if d.ActiveMinutes != 0 || d.TotalBreakMinutes != 0 {
			t.Errorf("expected zero totals for %d instants", len(instants))
		}
	}
}

func TestDeriveSinglePair(t *testing.T) {
	// Scenario: 09:00 in, 12:30 out. The trailing OUT opens an ongoing
	// break that runs to now.
	now := at(13, 0)
	d := DeriveAlternating([]time.Time{at(9, 0), at(12, 30)}, now)

	if len(d.WorkPeriods) != 1 {
		t.Fatalf("expected 1 work period, got %d", len(d.WorkPeriods))
	}
	if d.WorkPeriods[0].Minutes != 210 {
		t.Errorf("expected 210 work minutes, got %f", d.WorkPeriods[0].Minutes)
	}
	if d.ActiveMinutes != 210 {
		t.Errorf("expected ActiveMinutes 210, got %d", d.ActiveMinutes)
	}

	if len(d.Breaks) != 1 {
		t.Fatalf("expected 1 trailing break, got %d", len(d.Breaks))
	}
	if !d.Breaks[0].Ongoing {
		t.Error("expected the trailing break to be flagged ongoing")
	}
	if !d.Breaks[0].End.Equal(now) {
		t.Errorf("expected the ongoing break to end at now, got %s", d.Breaks[0].End)
	}
	if d.TotalBreakMinutes != 30 {
		t.Errorf("expected TotalBreakMinutes 30, got %d", d.TotalBreakMinutes)
	}
}

func TestDeriveOddCountEndsWithOngoingWork(t *testing.T) {
	// in 09:00, out 12:00, back in 12:30. Work continues to now.
	now := at(14, 0)
	d := DeriveAlternating([]time.Time{at(9, 0), at(12, 0), at(12, 30)}, now)

	if len(d.WorkPeriods) != 2 {
		t.Fatalf("expected 2 work periods, got %d", len(d.WorkPeriods))
	}
	if !d.WorkPeriods[1].End.Equal(now) {
		t.Errorf("expected the second work period to run to now, got %s", d.WorkPeriods[1].End)
	}

	if len(d.Breaks) != 1 {
		t.Fatalf("expected 1 break, got %d", len(d.Breaks))
	}
	if d.Breaks[0].Ongoing {
		t.Error("no break should be ongoing for an odd instant count")
	}

	if d.ActiveMinutes != 180+90 {
		t.Errorf("expected ActiveMinutes 270, got %d", d.ActiveMinutes)
	}
	if d.TotalBreakMinutes != 30 {
		t.Errorf("expected TotalBreakMinutes 30, got %d", d.TotalBreakMinutes)
	}
}

func TestDeriveEvenCountEndsWithOngoingBreak(t *testing.T) {
	// in 09:00, out 12:00, in 12:30, out 16:00, now 16:20.
	now := at(16, 20)
	d := DeriveAlternating([]time.Time{at(9, 0), at(12, 0), at(12, 30), at(16, 0)}, now)

	if len(d.WorkPeriods) != 2 {
		t.Fatalf("expected 2 work periods, got %d", len(d.WorkPeriods))
	}
	if len(d.Breaks) != 2 {
		t.Fatalf("expected 2 breaks (one logged, one ongoing), got %d", len(d.Breaks))
	}

	if d.Breaks[0].Ongoing {
		t.Error("the logged break must not be flagged ongoing")
	}
	if !d.Breaks[1].Ongoing {
		t.Error("the trailing break must be flagged ongoing")
	}

	if d.ActiveMinutes != 180+210 {
		t.Errorf("expected ActiveMinutes 390, got %d", d.ActiveMinutes)
	}
	if d.TotalBreakMinutes != 30+20 {
		t.Errorf("expected TotalBreakMinutes 50, got %d", d.TotalBreakMinutes)
	}
}

func TestDeriveClampsOutOfOrderDurations(t *testing.T) {
	// Upstream data is sorted defensively, but derive must still never
	// produce a negative duration.
	now := at(8, 0)
	d := DeriveAlternating([]time.Time{at(12, 0), at(9, 0)}, now)

	if d.WorkPeriods[0].Minutes != 0 {
		t.Errorf("expected clamped work duration 0, got %f", d.WorkPeriods[0].Minutes)
	}
	if d.Breaks[0].Minutes != 0 {
		t.Errorf("expected clamped ongoing break duration 0, got %f", d.Breaks[0].Minutes)
	}
}

func TestDeriveTotalsMatchPeriodSums(t *testing.T) {
	now := at(18, 3)
	instants := []time.Time{
		at(8, 58), at(10, 31), at(10, 47), at(12, 2), at(12, 33), at(17, 1), at(17, 12),
	}

	d := DeriveAlternating(instants, now)

	workSum := 0.0
	for _, p := range d.WorkPeriods {
		workSum += p.Minutes
	}
	breakSum := 0.0
	for _, p := range d.Breaks {
		breakSum += p.Minutes
	}

	if d.ActiveMinutes != int(math.Round(workSum)) {
		t.Errorf("ActiveMinutes %d does not match rounded period sum %f", d.ActiveMinutes, workSum)
	}
	if d.TotalBreakMinutes != int(math.Round(breakSum)) {
		t.Errorf("TotalBreakMinutes %d does not match rounded period sum %f", d.TotalBreakMinutes, breakSum)
	}
}

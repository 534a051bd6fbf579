package schedule

import (
	"reflect"
	"testing"
	"time"
)

func TestProjectRemaining(t *testing.T) {
	login := at(9, 0)
	now := at(14, 30)
	d := Derivation{ActiveMinutes: 300}

	p := Project(d, login, now, 6)

	if p.RemainingActiveMinutes != 60 {
		t.Errorf("expected 60 remaining minutes, got %d", p.RemainingActiveMinutes)
	}
	if !p.ProjectedLogout.Equal(now.Add(60 * time.Minute)) {
		t.Errorf("expected logout at %s, got %s", now.Add(60*time.Minute), p.ProjectedLogout)
	}
	if p.Complete {
		t.Error("expected Complete to be false")
	}
	if p.TotalOfficeMinutes != 330 {
		t.Errorf("expected 330 office minutes, got %d", p.TotalOfficeMinutes)
	}

	wantProgress := 300.0 / 360.0 * 100
	if p.ProgressPercent < wantProgress-0.01 || p.ProgressPercent > wantProgress+0.01 {
		t.Errorf("expected progress %.2f, got %.2f", wantProgress, p.ProgressPercent)
	}
}

func TestProjectExactTargetBoundary(t *testing.T) {
	p := Project(Derivation{ActiveMinutes: 360}, at(9, 0), at(15, 0), 6)

	if p.RemainingActiveMinutes != 0 {
		t.Errorf("expected 0 remaining minutes, got %d", p.RemainingActiveMinutes)
	}
	if !p.Complete {
		t.Error("expected Complete at the exact target")
	}
	if p.ProgressPercent != 100 {
		t.Errorf("expected progress 100, got %f", p.ProgressPercent)
	}
	if !p.ProjectedLogout.Equal(at(15, 0)) {
		t.Errorf("expected logout now, got %s", p.ProjectedLogout)
	}
}

func TestProjectClampsProgress(t *testing.T) {
	p := Project(Derivation{ActiveMinutes: 500}, at(9, 0), at(18, 0), 6)

	if p.ProgressPercent != 100 {
		t.Errorf("expected clamped progress 100, got %f", p.ProgressPercent)
	}
	if p.RemainingActiveMinutes != 0 {
		t.Errorf("expected 0 remaining, got %d", p.RemainingActiveMinutes)
	}
}

func TestProjectDefaultsWorkHours(t *testing.T) {
	p := Project(Derivation{ActiveMinutes: 180}, at(9, 0), at(12, 0), 0)

	// fallback target is 6h = 360m
	if p.RemainingActiveMinutes != 180 {
		t.Errorf("expected 180 remaining against the 6h default, got %d", p.RemainingActiveMinutes)
	}
}

func TestManualWithholdsWithoutLogin(t *testing.T) {
	now := at(12, 0)

	for _, login := range []string{"", "   ", "not a time", "9 am"} {
		_, ok := Manual(ManualInput{LoginClock: login, WorkHours: 6}, now)
		if ok {
			t.Errorf("expected the computation to be withheld for login %q", login)
		}
	}
}

func TestManual(t *testing.T) {
	now := at(12, 0)

	res, ok := Manual(ManualInput{LoginClock: "09:00", WorkHours: 6, BreakMinutes: 30}, now)
	if !ok {
		t.Fatal("expected a result")
	}

	wantLogout := at(15, 30) // 09:00 + 6h + 30m
	if !res.ProjectedLogout.Equal(wantLogout) {
		t.Errorf("expected logout %s, got %s", wantLogout, res.ProjectedLogout)
	}
	if res.RemainingActiveMinutes != 210 {
		t.Errorf("expected 210 remaining minutes, got %d", res.RemainingActiveMinutes)
	}
	if res.ActiveMinutes != 150 { // 3h elapsed minus 30m break
		t.Errorf("expected 150 active minutes, got %d", res.ActiveMinutes)
	}
	if res.TotalBreakMinutes != 30 {
		t.Errorf("expected 30 break minutes, got %d", res.TotalBreakMinutes)
	}
	if res.Complete {
		t.Error("expected Complete to be false")
	}

	wantProgress := 150.0 / 360.0 * 100
	if res.ProgressPercent < wantProgress-0.01 || res.ProgressPercent > wantProgress+0.01 {
		t.Errorf("expected progress %.2f, got %.2f", wantProgress, res.ProgressPercent)
	}
}

func TestManualComplete(t *testing.T) {
	now := at(16, 0)

	res, ok := Manual(ManualInput{LoginClock: "09:00", WorkHours: 6, BreakMinutes: 30}, now)
	if !ok {
		t.Fatal("expected a result")
	}

	if !res.Complete {
		t.Error("expected Complete after the projected logout has passed")
	}
	if res.RemainingActiveMinutes != 0 {
		t.Errorf("expected 0 remaining minutes, got %d", res.RemainingActiveMinutes)
	}
	if res.ProgressPercent != 100 {
		t.Errorf("expected clamped progress 100, got %f", res.ProgressPercent)
	}
}

func TestManualDefaults(t *testing.T) {
	now := at(12, 0)

	res, ok := Manual(ManualInput{LoginClock: "09:00", WorkHours: 0, BreakMinutes: -15}, now)
	if !ok {
		t.Fatal("expected a result")
	}

	if res.WorkHours != DefaultWorkHours {
		t.Errorf("expected the 6h default, got %f", res.WorkHours)
	}
	if res.TotalBreakMinutes != DefaultBreakMinutes {
		t.Errorf("expected the 0m break default, got %d", res.TotalBreakMinutes)
	}
	if !res.ProjectedLogout.Equal(at(15, 0)) {
		t.Errorf("expected logout 15:00, got %s", res.ProjectedLogout)
	}
}

func TestManualIdempotent(t *testing.T) {
	now := at(13, 37)
	in := ManualInput{LoginClock: "08:45", WorkHours: 7.5, BreakMinutes: 45}

	first, ok1 := Manual(in, now)
	second, ok2 := Manual(in, now)

	if !ok1 || !ok2 {
		t.Fatal("expected results from both invocations")
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs and now produced different results:\n%#v\n%#v", first, second)
	}
}

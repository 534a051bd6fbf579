package schedule

import (
	"math"
	"strings"
	"time"

	"github.com/sporadisk/punchout/format"
)

const (
	// DefaultWorkHours applies when the required-work-hours field is
	// unset or invalid.
	DefaultWorkHours = 6.0
	// DefaultBreakMinutes applies when the fixed break allowance is
	// unset or invalid.
	DefaultBreakMinutes = 0
)

// Projection estimates when the target amount of active work will be
// reached, measured against a single "now" snapshot.
type Projection struct {
	ProjectedLogout        time.Time
	RemainingActiveMinutes int
	ProgressPercent        float64
	TotalOfficeMinutes     int
	Complete               bool
}

// Result is the full outcome of one schedule computation, ready for a
// caller to render or persist.
type Result struct {
	Derivation
	Projection
	Login     time.Time
	Now       time.Time
	WorkHours float64
}

// Project extends a derivation with the projected logout instant.
// A non-positive workHours falls back to DefaultWorkHours.
func Project(d Derivation, login, now time.Time, workHours float64) Projection {
	if workHours <= 0 {
		workHours = DefaultWorkHours
	}

	targetMinutes := workHours * 60
	remaining := targetMinutes - float64(d.ActiveMinutes)
	if remaining < 0 {
		remaining = 0
	}
	remainingMinutes := int(math.Round(remaining))

	office := now.Sub(login).Minutes()
	if office < 0 {
		office = 0
	}

	return Projection{
		ProjectedLogout:        now.Add(time.Duration(remainingMinutes) * time.Minute),
		RemainingActiveMinutes: remainingMinutes,
		ProgressPercent:        progress(float64(d.ActiveMinutes), targetMinutes),
		TotalOfficeMinutes:     int(math.Round(office)),
		Complete:               remaining <= 0,
	}
}

// ManualInput is the direct-entry alternative to a timestamp log: a
// login clock value plus fixed parameters.
type ManualInput struct {
	LoginClock   string  // "HH:MM"; empty withholds the computation
	WorkHours    float64 // non-positive falls back to DefaultWorkHours
	BreakMinutes int     // negative falls back to DefaultBreakMinutes
}

// Manual computes a schedule from a login time of day and fixed
// parameters, anchored to now's calendar date. A missing or unparseable
// login clock returns ok=false: the caller is not ready to compute,
// which is not a failure.
func Manual(in ManualInput, now time.Time) (Result, bool) {
	if strings.TrimSpace(in.LoginClock) == "" {
		return Result{}, false
	}

	clock, err := format.ParseClock(in.LoginClock)
	if err != nil {
		return Result{}, false
	}

	workHours := in.WorkHours
	if workHours <= 0 {
		workHours = DefaultWorkHours
	}
	breakMinutes := in.BreakMinutes
	if breakMinutes < 0 {
		breakMinutes = DefaultBreakMinutes
	}

	login := time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, now.Location())
	workMinutes := workHours * 60
	logout := login.
		Add(time.Duration(workMinutes * float64(time.Minute))).
		Add(time.Duration(breakMinutes) * time.Minute)

	untilLogout := logout.Sub(now)
	remainingMinutes := 0
	if untilLogout > 0 {
		remainingMinutes = int(math.Floor(untilLogout.Minutes()))
	}

	elapsed := now.Sub(login).Minutes()
	if elapsed < 0 {
		elapsed = 0
	}
	active := elapsed - float64(breakMinutes)
	if active < 0 {
		active = 0
	}

	return Result{
		Derivation: Derivation{
			WorkPeriods:       []Period{},
			Breaks:            []Period{},
			ActiveMinutes:     int(math.Round(active)),
			TotalBreakMinutes: breakMinutes,
		},
		Projection: Projection{
			ProjectedLogout:        logout,
			RemainingActiveMinutes: remainingMinutes,
			ProgressPercent:        progress(active, workMinutes),
			TotalOfficeMinutes:     int(math.Round(elapsed)),
			Complete:               untilLogout <= 0,
		},
		Login:     login,
		Now:       now,
		WorkHours: workHours,
	}, true
}

func progress(activeMinutes, targetMinutes float64) float64 {
	if targetMinutes <= 0 {
		return 0
	}

	pct := activeMinutes / targetMinutes * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

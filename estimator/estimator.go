// Package estimator wires a timestamp source to the schedule engine
// and pushes every computed result to the configured output.
package estimator

import (
	"context"
	"fmt"
	"time"

	"github.com/sporadisk/punchout/config"
	"github.com/sporadisk/punchout/history"
	"github.com/sporadisk/punchout/schedule"
	"github.com/sporadisk/punchout/timelog"
)

// Output renders computed schedules for the user.
type Output interface {
	OutputResult(res schedule.Result, warnings []string) error
	OutputNoTimestamps(warnings []string) error
}

// Exporter ships saved entries to an external system.
type Exporter interface {
	Push(ctx context.Context, entries []history.Entry) error
}

type Estimator struct {
	Conf          *config.Config
	Subscriber    timelog.Subscriber
	SummaryOutput Output
	History       *history.Store
	WorkHours     float64
}

// Prepare resolves configuration into a ready-to-run estimator:
// default work hours, the summary output and, when auto-save is on,
// the history store.
func (e *Estimator) Prepare() error {
	e.WorkHours = e.Conf.DefaultWorkHours
	if e.WorkHours <= 0 {
		e.WorkHours = schedule.DefaultWorkHours
	}

	if e.SummaryOutput == nil {
		err := e.LoadSummaryOutput()
		if err != nil {
			return fmt.Errorf("LoadSummaryOutput: %w", err)
		}
	}

	if e.autoSave() && e.History == nil {
		store, err := openHistory(e.Conf)
		if err != nil {
			return fmt.Errorf("opening history store: %w", err)
		}
		e.History = store
	}

	return nil
}

func (e *Estimator) Start() error {
	err := e.Prepare()
	if err != nil {
		return err
	}

	err = e.Subscriber.Subscribe(e)
	if err != nil {
		return fmt.Errorf("Subscriber.Subscribe: %w", err)
	}
	return nil
}

// Receive computes and renders a schedule for one batch of instants.
// An empty batch surfaces the "nothing to show" notice but keeps the
// subscription alive.
func (e *Estimator) Receive(instants []time.Time, warnings []string) error {
	now := time.Now()

	res, ok := Compute(instants, now, e.WorkHours)
	if !ok {
		// not fatal: the next file write may bring valid timestamps
		_ = e.SummaryOutput.OutputNoTimestamps(warnings)
		return nil
	}

	err := e.SummaryOutput.OutputResult(res, warnings)
	if err != nil {
		return fmt.Errorf("SummaryOutput.OutputResult: %w", err)
	}

	if e.autoSave() && e.History != nil {
		_, err = e.History.Save(context.Background(), history.FromResult(res))
		if err != nil {
			return fmt.Errorf("History.Save: %w", err)
		}
	}

	return nil
}

// Compute is the full timestamp-driven pipeline as a pure function of
// its inputs and a single now snapshot. ok is false when there is
// nothing to compute from.
func Compute(instants []time.Time, now time.Time, workHours float64) (schedule.Result, bool) {
	if len(instants) == 0 {
		return schedule.Result{}, false
	}

	if workHours <= 0 {
		workHours = schedule.DefaultWorkHours
	}

	derivation := schedule.DeriveAlternating(instants, now)
	login := instants[0]
	projection := schedule.Project(derivation, login, now, workHours)

	return schedule.Result{
		Derivation: derivation,
		Projection: projection,
		Login:      login,
		Now:        now,
		WorkHours:  workHours,
	}, true
}

func (e *Estimator) autoSave() bool {
	return e.Conf.History != nil && e.Conf.History.AutoSave
}

func openHistory(conf *config.Config) (*history.Store, error) {
	baseDir := ""
	if conf.History != nil {
		baseDir = conf.History.Path
	}

	if baseDir == "" {
		var err error
		baseDir, err = history.DefaultBaseDir()
		if err != nil {
			return nil, err
		}
	}

	return history.Open(baseDir)
}

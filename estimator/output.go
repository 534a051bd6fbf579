package estimator

import (
	"fmt"

	"github.com/sporadisk/punchout/client/terminal"
	"github.com/sporadisk/punchout/format"
	"github.com/sporadisk/punchout/parameter"
)

func (e *Estimator) LoadSummaryOutput() error {
	// Currently only terminal output is supported
	return e.LoadTerminalOutput()
}

func (e *Estimator) LoadTerminalOutput() error {
	timeFormat := format.TimeHM
	showPeriods := false

	if e.Conf.Output != nil && e.Conf.Output.Params != nil {
		tf, ok := e.Conf.Output.Params["timeFormat"]
		if ok {
			validated, err := parameter.Validate(tf, []string{format.TimeM, format.TimeHM, format.TimeHMS})
			if err != nil {
				return fmt.Errorf("validation failure for timeFormat: %w", err)
			}
			timeFormat = validated
		}

		sp, ok := e.Conf.Output.Params["showPeriods"]
		if ok {
			validated, err := parameter.Validate(sp, []string{"true", "false"})
			if err != nil {
				return fmt.Errorf("validation failure for showPeriods: %w", err)
			}
			showPeriods = validated == "true"
		}
	}

	termClient := &terminal.Client{
		TimeFormat:  timeFormat,
		ShowPeriods: showPeriods,
	}
	err := termClient.Init()
	if err != nil {
		return fmt.Errorf("terminal.Client.Init: %w", err)
	}

	e.SummaryOutput = termClient
	return nil
}

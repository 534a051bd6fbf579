package terminal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sporadisk/punchout/format"
	"github.com/sporadisk/punchout/schedule"
)

// ErrNoTimestamps signals that extraction found nothing to compute
// with. Callers surface this as a notice rather than rendering zeros.
var ErrNoTimestamps = errors.New("no valid timestamps found")

func (c *Client) OutputResult(res schedule.Result, warnings []string) error {
	outStr, err := c.Render(res, warnings)
	if err != nil {
		return err
	}

	fmt.Print(outStr)
	return nil
}

// OutputNoTimestamps prints the empty-extraction notice and returns
// ErrNoTimestamps so callers can tell this apart from a rendered result.
func (c *Client) OutputNoTimestamps(warnings []string) error {
	var sb strings.Builder
	sb.WriteString("No valid timestamps found in the input.\n")
	writeWarnings(&sb, warnings)
	fmt.Print(sb.String())
	return ErrNoTimestamps
}

func (c *Client) Render(res schedule.Result, warnings []string) (string, error) {
	var sb strings.Builder

	sb.WriteString("\n- Schedule / " + format.Clock(res.Now) + " -\n")

	if c.ShowPeriods {
		writePeriods(&sb, "Work:", res.WorkPeriods, c.TimeFormat)
		writePeriods(&sb, "Breaks:", res.Breaks, c.TimeFormat)
	}

	sb.WriteString("Active: " + c.formatMinutes(res.ActiveMinutes) + "\n")
	sb.WriteString("Breaks: " + c.formatMinutes(res.TotalBreakMinutes) + "\n")
	sb.WriteString(fmt.Sprintf("Progress: %.0f%% of %s\n", res.ProgressPercent, format.DurationHM(workTarget(res.WorkHours))))

	if res.Complete {
		sb.WriteString("Target reached. Logout at: " + format.Clock(res.ProjectedLogout) + "\n")
	} else {
		sb.WriteString("Remaining: " + c.formatMinutes(res.RemainingActiveMinutes) + "\n")
		sb.WriteString("Logout at: " + format.Clock(res.ProjectedLogout) + "\n")
	}

	writeWarnings(&sb, warnings)

	return sb.String(), nil
}

func writePeriods(sb *strings.Builder, header string, periods []schedule.Period, timeFormat string) {
	if len(periods) == 0 {
		return
	}

	sb.WriteString(header + "\n")
	for _, p := range periods {
		line := fmt.Sprintf(" - %s - %s (%s)",
			format.Clock(p.Start),
			format.Clock(p.End),
			format.Duration(time.Duration(p.Minutes*float64(time.Minute)), timeFormat))
		if p.Ongoing {
			line += " (ongoing)"
		}
		sb.WriteString(line + "\n")
	}
}

func writeWarnings(sb *strings.Builder, warnings []string) {
	if len(warnings) == 0 {
		return
	}

	sb.WriteString("\nWarnings:\n")
	for i, w := range warnings {
		sb.WriteString(fmt.Sprintf(" %d - %s\n", i+1, w))
	}
}

func (c *Client) formatMinutes(minutes int) string {
	return format.Duration(time.Duration(minutes)*time.Minute, c.TimeFormat)
}

func workTarget(workHours float64) time.Duration {
	return time.Duration(workHours * float64(time.Hour))
}

package format

import (
	"fmt"
	"strings"
	"time"
)

const (
	// duration formats
	TimeHMS = "hms" // hours, minutes and seconds
	TimeHM  = "hm"  // hours and minutes (default)
	TimeM   = "m"   // minutes
)

const clockLayout = "15:04"

// Clock renders a timestamp as HH:MM wall-clock time.
func Clock(ts time.Time) string {
	return ts.Format(clockLayout)
}

// Duration renders d in the named format, falling back to hours and
// minutes for unknown format names.
func Duration(d time.Duration, timeFormat string) string {
	switch timeFormat {
	case TimeM:
		return DurationM(d)
	case TimeHMS:
		return DurationHMS(d)
	default:
		return DurationHM(d)
	}
}

func DurationM(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%dm", int(d.Minutes()))
}

func DurationHM(d time.Duration) string {
	h, m, _ := splitHMS(d)
	return joinParts(part(h, "h"), part(m, "m"))
}

func DurationHMS(d time.Duration) string {
	h, m, s := splitHMS(d)
	return joinParts(part(h, "h"), part(m, "m"), part(s, "s"))
}

// Minutes renders a whole-minute count as "Xh Ym" (or "Ym" under an hour).
func Minutes(minutes int) string {
	return DurationHM(time.Duration(minutes) * time.Minute)
}

func splitHMS(d time.Duration) (h, m, s int) {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return total / 3600, (total % 3600) / 60, total % 60
}

func part(n int, unit string) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%d%s", n, unit)
}

func joinParts(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return "0m"
	}
	return strings.Join(kept, " ")
}

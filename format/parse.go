package format

import (
	"strconv"
	"strings"
	"time"
)

// ParseClock parses an HH:MM wall-clock value. The result carries only
// the time of day; callers anchor it to a calendar date themselves.
func ParseClock(s string) (time.Time, error) {
	return time.Parse(clockLayout, strings.TrimSpace(s))
}

// ParseHours parses a required-work-hours field. Empty, malformed or
// non-positive values fall back to fallback rather than failing, since
// these arrive from free-text form fields.
func ParseHours(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// ParseBreakMinutes parses a fixed break allowance in minutes. Empty,
// malformed or negative values fall back to fallback.
func ParseBreakMinutes(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

// CleanParam normalizes a config parameter value for comparison.
func CleanParam(param string) string {
	return strings.ToLower(strings.TrimSpace(param))
}

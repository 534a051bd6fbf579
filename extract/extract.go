// Package extract pulls clock-in/clock-out instants out of loosely
// structured attendance text. Lines carrying a time of day are paired
// with a date line immediately below them, or with the most recently
// seen date when no date line follows.
package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	timePatternRegex = `(?i)^(\d{1,2}):(\d{2}):(\d{2})(?:\s*(am|pm))?$`
	datePatternRegex = `^(\d{1,2})\s+([A-Za-z]+)\s+(\d{4})$`
)

// TimeToken is a matched time of day, hour already normalized to 24h form.
type TimeToken struct {
	Hour   int
	Minute int
	Second int
}

// DateToken is a matched calendar date. The day is not validated
// against the length of the month.
type DateToken struct {
	Day   int
	Month time.Month
	Year  int
}

type Extractor struct {
	timePattern *regexp.Regexp
	datePattern *regexp.Regexp
	warnings    []string
}

func (e *Extractor) Init() error {
	timePattern, err := regexp.Compile(timePatternRegex)
	if err != nil {
		return fmt.Errorf("failed to compile time pattern: %w", err)
	}
	e.timePattern = timePattern

	datePattern, err := regexp.Compile(datePatternRegex)
	if err != nil {
		return fmt.Errorf("failed to compile date pattern: %w", err)
	}
	e.datePattern = datePattern

	e.warnings = []string{}
	return nil
}

// Extract scans text top to bottom and returns every instant it can
// resolve, sorted ascending. Lines that match neither pattern are
// ignored: the format allows free-form labels between timestamp pairs.
// Empty input yields an empty slice, never an error.
func (e *Extractor) Extract(text string) []time.Time {
	lines := splitLines(text)
	instants := []time.Time{}

	// Running date context. Carried forward from the last matched date
	// line so trailing bare times can reuse it.
	var context *DateToken

	for i, line := range lines {
		tok, ok := e.matchTime(line)
		if !ok {
			continue
		}

		// A date line directly below the time wins over any context.
		if i+1 < len(lines) {
			if dm := e.datePattern.FindStringSubmatch(lines[i+1]); dm != nil {
				date, ok := e.matchDate(dm)
				if !ok {
					// The date line is malformed (unknown month):
					// reject this time entirely rather than guessing.
					continue
				}
				context = &date
				instants = append(instants, combine(date, tok))
				continue
			}
		}

		if context != nil {
			instants = append(instants, combine(*context, tok))
			continue
		}

		e.addWarningf("dropped time %q: no date line follows and no prior date is known", line)
	}

	// Extraction order is expected to be ascending already, but the
	// input is user-pasted text, so sort defensively.
	sort.Slice(instants, func(a, b int) bool {
		return instants[a].Before(instants[b])
	})

	return instants
}

// Warnings returns human-readable notes about lines that were dropped.
func (e *Extractor) Warnings() []string {
	return e.warnings
}

func (e *Extractor) matchTime(line string) (TimeToken, bool) {
	m := e.timePattern.FindStringSubmatch(line)
	if m == nil {
		return TimeToken{}, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	second, _ := strconv.Atoi(m[3])

	switch strings.ToLower(m[4]) {
	case "pm":
		if hour < 12 {
			hour += 12
		}
		// An hour above 12 with a pm marker is malformed input such as
		// "13:45 pm". The hour is kept as-is, treated as already-24h.
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	return TimeToken{Hour: hour, Minute: minute, Second: second}, true
}

func (e *Extractor) matchDate(m []string) (DateToken, bool) {
	day, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[3])

	month, ok := lookupMonth(m[2])
	if !ok {
		e.addWarningf("unrecognized month name %q: dropping the timestamp above it", m[2])
		return DateToken{}, false
	}

	return DateToken{Day: day, Month: month, Year: year}, true
}

func (e *Extractor) addWarningf(format string, v ...any) {
	e.warnings = append(e.warnings, fmt.Sprintf(format, v...))
}

func combine(date DateToken, tok TimeToken) time.Time {
	return time.Date(date.Year, date.Month, date.Day, tok.Hour, tok.Minute, tok.Second, 0, time.Local)
}

func splitLines(text string) []string {
	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

package format

import (
	"testing"
	"time"
)

func TestDurationHM(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0m"},
		{45 * time.Minute, "45m"},
		{3*time.Hour + 30*time.Minute, "3h 30m"},
		{2 * time.Hour, "2h"},
		{-10 * time.Minute, "0m"},
	}

	for _, c := range cases {
		got := DurationHM(c.d)
		if got != c.want {
			t.Errorf("DurationHM(%s): expected %q, got %q", c.d, c.want, got)
		}
	}
}

func TestDurationHMS(t *testing.T) {
	got := DurationHMS(1*time.Hour + 2*time.Minute + 3*time.Second)
	if got != "1h 2m 3s" {
		t.Errorf("expected %q, got %q", "1h 2m 3s", got)
	}
}

func TestDurationM(t *testing.T) {
	got := DurationM(3*time.Hour + 30*time.Minute)
	if got != "210m" {
		t.Errorf("expected %q, got %q", "210m", got)
	}
}

func TestMinutes(t *testing.T) {
	got := Minutes(210)
	if got != "3h 30m" {
		t.Errorf("expected %q, got %q", "3h 30m", got)
	}
}

func TestParseClock(t *testing.T) {
	ts, err := ParseClock(" 09:30 ")
	if err != nil {
		t.Fatalf("ParseClock: %s", err.Error())
	}
	if ts.Hour() != 9 || ts.Minute() != 30 {
		t.Errorf("expected 09:30, got %02d:%02d", ts.Hour(), ts.Minute())
	}

	_, err = ParseClock("half past nine")
	if err == nil {
		t.Error("expected an error for an unparseable clock value")
	}
}

func TestParseHoursFallsBack(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"7.5", 7.5},
		{"6", 6},
		{"", 6},
		{"abc", 6},
		{"-2", 6},
		{"0", 6},
	}

	for _, c := range cases {
		got := ParseHours(c.in, 6)
		if got != c.want {
			t.Errorf("ParseHours(%q): expected %f, got %f", c.in, c.want, got)
		}
	}
}

func TestParseBreakMinutesFallsBack(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"30", 30},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"-5", 0},
	}

	for _, c := range cases {
		got := ParseBreakMinutes(c.in, 0)
		if got != c.want {
			t.Errorf("ParseBreakMinutes(%q): expected %d, got %d", c.in, c.want, got)
		}
	}
}

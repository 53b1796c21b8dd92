package tracker

import (
	"testing"
	"time"
)

func TestDateComparable(t *testing.T) {
	// Dates anchor at midnight UTC, so two values for the same day must be
	// equal both as Date and as time.Time.
	a, b := NewDate(2025, time.July, 31), NewDate(2025, time.July, 31)
	if a != b {
		t.Errorf("same day compares unequal: %v != %v", a, b)
	}
	if a.time() != b.time() {
		t.Errorf("same day anchors to two different times")
	}
}

func TestParseDate(t *testing.T) {
	today := Today()
	year, month := today.Year(), today.Month()

	tests := []struct {
		name  string
		input string
		want  Date
		bad   bool
	}{
		{name: "iso", input: "2025-01-15", want: NewDate(2025, time.January, 15)},
		{name: "iso loose", input: "2025-7-1", want: NewDate(2025, time.July, 1)},
		{name: "iso padded", input: " 2025-01-15 ", want: NewDate(2025, time.January, 15)},
		{name: "garbage", input: "someday", bad: true},

		{name: "today", input: "0d", want: today},
		{name: "yesterday", input: "-1d", want: today.Add(-1)},
		{name: "tomorrow", input: "+1d", want: today.Add(1)},
		{name: "sign required", input: "1d", bad: true},
		{name: "signed zero", input: "-0d", want: today},
		{name: "two weeks back", input: "-2w", want: today.Add(-14)},
		{name: "next month", input: "+1m", want: NewDate(year, month+1, today.Day())},
		{name: "three quarters back", input: "-3q", want: NewDate(year, month-9, today.Day())},
		{name: "next year", input: "+1y", want: NewDate(year+1, month, today.Day())},
		{name: "last year", input: "-1y", want: NewDate(year-1, month, today.Day())},

		{name: "day of month", input: "27", want: NewDate(year, month, 27)},
		{name: "month and day", input: "1-15", want: NewDate(year, time.January, 15)},
		{name: "previous month end", input: "0", want: NewDate(year, month, 0)},
		{name: "december last year", input: "0-15", want: NewDate(year-1, time.December, 15)},
		{name: "last new years eve", input: "1-0", want: NewDate(year-1, time.December, 31)},
		{name: "november last year end", input: "0-0", want: NewDate(year-1, time.November, 30)},
		// Out-of-range values roll over like time.Date.
		{name: "month thirteen", input: "13-5", want: NewDate(year+1, time.January, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.bad {
				t.Fatalf("ParseDate(%q) error = %v, want error %v", tt.input, err, tt.bad)
			}
			if !tt.bad && got != tt.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestStartEndOf(t *testing.T) {
	tests := []struct {
		name       string
		on         string
		period     Period
		start, end string
	}{
		{name: "daily", on: "2025-03-12", period: Daily, start: "2025-03-12", end: "2025-03-12"},
		{name: "midweek", on: "2025-03-12", period: Weekly, start: "2025-03-10", end: "2025-03-16"},
		{name: "monday", on: "2025-03-10", period: Weekly, start: "2025-03-10", end: "2025-03-16"},
		{name: "sunday", on: "2025-03-16", period: Weekly, start: "2025-03-10", end: "2025-03-16"},
		{name: "short month", on: "2025-02-10", period: Monthly, start: "2025-02-01", end: "2025-02-28"},
		{name: "first quarter", on: "2025-03-12", period: Quarterly, start: "2025-01-01", end: "2025-03-31"},
		{name: "last quarter", on: "2025-11-05", period: Quarterly, start: "2025-10-01", end: "2025-12-31"},
		{name: "yearly", on: "2025-03-12", period: Yearly, start: "2025-01-01", end: "2025-12-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			on := MustParse(tt.on)
			if got := on.StartOf(tt.period); got != MustParse(tt.start) {
				t.Errorf("%s.StartOf(%s) = %s, want %s", on, tt.period, got, tt.start)
			}
			if got := on.EndOf(tt.period); got != MustParse(tt.end) {
				t.Errorf("%s.EndOf(%s) = %s, want %s", on, tt.period, got, tt.end)
			}
		})
	}
}

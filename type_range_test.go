package tracker

import (
	"testing"
	"time"
)

func TestNewRange_SwapsReversedBounds(t *testing.T) {
	from := NewDate(2025, time.March, 31)
	to := NewDate(2025, time.March, 1)
	r := NewRange(from, to)
	if r.From != to || r.To != from {
		t.Errorf("NewRange() = %v..%v, want the bounds swapped", r.From, r.To)
	}
}

func TestRange_Contains(t *testing.T) {
	r := NewRange(NewDate(2025, time.March, 1), NewDate(2025, time.March, 31))
	tests := []struct {
		date string
		want bool
	}{
		{"2025-03-01", true},  // first day in
		{"2025-03-31", true},  // last day in
		{"2025-03-15", true},
		{"2025-02-28", false},
		{"2025-04-01", false},
	}
	for _, tt := range tests {
		if got := r.Contains(MustParse(tt.date)); got != tt.want {
			t.Errorf("Contains(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestPeriod_Range(t *testing.T) {
	on := MustParse("2025-03-12") // a Wednesday
	tests := []struct {
		period   Period
		from, to string
	}{
		{Daily, "2025-03-12", "2025-03-12"},
		{Weekly, "2025-03-10", "2025-03-16"},
		{Monthly, "2025-03-01", "2025-03-31"},
		{Quarterly, "2025-01-01", "2025-03-31"},
		{Yearly, "2025-01-01", "2025-12-31"},
	}
	for _, tt := range tests {
		got := tt.period.Range(on)
		if got.From != MustParse(tt.from) || got.To != MustParse(tt.to) {
			t.Errorf("%s.Range(%s) = %v..%v, want %s..%s", tt.period, on, got.From, got.To, tt.from, tt.to)
		}
		// a period window must identify as its own period
		if p, ok := got.Period(); !ok || p != tt.period {
			t.Errorf("%v.Period() = %v %v, want %v true", got, p, ok, tt.period)
		}
	}
}

func TestRange_Identifier(t *testing.T) {
	tests := []struct {
		r    Range
		want string
	}{
		{Monthly.Range(MustParse("2025-03-12")), "2025-March"},
		{Weekly.Range(MustParse("2025-03-12")), "2025-W11"},
		{Quarterly.Range(MustParse("2025-03-12")), "2025-Q1"},
		{Yearly.Range(MustParse("2025-03-12")), "2025"},
		{Daily.Range(MustParse("2025-03-12")), "2025-03-12"},
		{NewRange(MustParse("2025-03-03"), MustParse("2025-03-20")), "2025-03-03_2025-03-20"},
	}
	for _, tt := range tests {
		if got := tt.r.Identifier(); got != tt.want {
			t.Errorf("Identifier(%v..%v) = %q, want %q", tt.r.From, tt.r.To, got, tt.want)
		}
	}
}

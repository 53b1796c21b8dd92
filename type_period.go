package tracker

import (
	"fmt"
	"strings"
)

// Period is a recurring window of time: budgets reset on it, reports group
// by it.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

var periodNames = [...]struct{ adjective, noun string }{
	Daily:     {"daily", "day"},
	Weekly:    {"weekly", "week"},
	Monthly:   {"monthly", "month"},
	Quarterly: {"quarterly", "quarter"},
	Yearly:    {"yearly", "year"},
}

// String returns the period's adjective form, "monthly".
func (p Period) String() string {
	if p < Daily || p > Yearly {
		return "periodic"
	}
	return periodNames[p].adjective
}

// Name returns the period's noun form, "month".
func (p Period) Name() string {
	if p < Daily || p > Yearly {
		return "period"
	}
	return periodNames[p].noun
}

// Range returns the period's window containing d.
func (p Period) Range(d Date) Range {
	return Range{From: d.StartOf(p), To: d.EndOf(p)}
}

// ParsePeriod reads a period from either name form, "monthly" or "month",
// case insensitive.
func ParsePeriod(s string) (Period, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, names := range periodNames {
		if s == names.adjective || s == names.noun {
			return Period(p), nil
		}
	}
	return Daily, fmt.Errorf("unknown period %q", s)
}

// MarshalText persists the period under its adjective name.
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText reads a period back from either name form.
func (p *Period) UnmarshalText(text []byte) error {
	parsed, err := ParsePeriod(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

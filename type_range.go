package tracker

import "fmt"

// Range is an inclusive range of days.
type Range struct {
	From, To Date
}

// NewRange returns the range from..to, swapping the bounds when given
// backwards.
func NewRange(from, to Date) Range {
	if to.Before(from) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains reports whether date falls inside the range, boundaries included.
func (r Range) Contains(date Date) bool {
	return !date.Before(r.From) && !date.After(r.To)
}

// Period reports which standard period the range spans exactly, if any: a
// single day, a Monday-to-Sunday week, a calendar month, quarter or year.
func (r Range) Period() (Period, bool) {
	for _, p := range []Period{Daily, Weekly, Monthly, Quarterly, Yearly} {
		if r.From.StartOf(p) == r.From && r.From.EndOf(p) == r.To {
			return p, true
		}
	}
	return Daily, false
}

// Identifier names the range for headings: the bare date for a day, then
// "2025-W07", "2025-March", "2025-Q1" or "2025" for the standard periods,
// and from_to for anything else.
func (r Range) Identifier() string {
	p, ok := r.Period()
	if !ok {
		return fmt.Sprintf("%s_%s", r.From, r.To)
	}
	switch p {
	case Weekly:
		_, week := r.From.ISOWeek()
		return fmt.Sprintf("%d-W%02d", r.From.Year(), week)
	case Monthly:
		return r.From.Format("2006-January")
	case Quarterly:
		q := (r.From.Month()-1)/3 + 1
		return fmt.Sprintf("%d-Q%d", r.From.Year(), q)
	case Yearly:
		return r.From.Format("2006")
	default:
		return r.From.String()
	}
}

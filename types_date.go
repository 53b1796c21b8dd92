package tracker

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Layouts for the ISO form: the loose one reads user input like "2025-7-1",
// the strict one is what the snapshot and every display carry.
const (
	dateLayout      = "2006-01-02"
	looseDateLayout = "2006-1-2"
)

// Date is a civil day, without time or timezone. Transactions are dated, not
// timestamped: the engine never needs to order two entries within a day.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns the date for year/month/day, normalized the way time.Date
// normalizes: out-of-range values roll over, so day 0 is the last day of the
// previous month.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns today's date.
func Today() Date { return NewDate(time.Now().Date()) }

// time anchors the day at midnight UTC. Every anchored time of a given day is
// identical, which keeps Date values comparable with ==.
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }

// String formats the date in the ISO form, "2006-01-02".
func (d Date) String() string { return d.time().Format(dateLayout) }

// Format formats the date with an arbitrary time layout.
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// IsZero reports whether d is the zero value, which no parsed or constructed
// date ever is.
func (d Date) IsZero() bool { return d == Date{} }

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// ISOWeek returns the ISO 8601 year and week number containing d.
func (d Date) ISOWeek() (year, week int) { return d.time().ISOWeek() }

// Before reports whether d is an earlier day than x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether d is a later day than x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns the date i days later, i may be negative.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// StartOf returns the first day of the period containing d. Weeks start on
// Monday.
func (d Date) StartOf(p Period) Date {
	switch p {
	case Daily:
		return d
	case Weekly:
		back := (int(d.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
		return d.Add(-back)
	case Monthly:
		return NewDate(d.y, d.Month(), 1)
	case Quarterly:
		first := (d.Month()-1)/3*3 + 1
		return NewDate(d.y, first, 1)
	case Yearly:
		return NewDate(d.y, time.January, 1)
	default:
		panic("period out of range: " + p.String())
	}
}

// EndOf returns the last day of the period containing d.
func (d Date) EndOf(p Period) Date {
	switch p {
	case Daily:
		return d
	case Weekly:
		return d.StartOf(Weekly).Add(6)
	case Monthly:
		return NewDate(d.y, d.Month()+1, 0) // day 0 of next month
	case Quarterly:
		return NewDate(d.y, d.StartOf(Quarterly).Month()+3, 0)
	case Yearly:
		return NewDate(d.y+1, time.January, 0)
	default:
		panic("period out of range: " + p.String())
	}
}

// The two short input grammars: a signed count of units from today, and a
// day-of-month with an optional month.
var (
	relativeDateRE = regexp.MustCompile(`^([+-])(\d+)([dwmqy])$`)
	monthDayDateRE = regexp.MustCompile(`^(?:(\d+)-)?(\d+)$`)
)

// ParseDate reads a date the way a human types one on the command line:
//
//   - "0d" for today, and signed relative forms like "-1d", "+2w", "-3m",
//     "+1q", "-1y" counted from today,
//   - "[MM-]DD" resolved against the current year, where a 0 month means
//     december last year and a 0 day the last day of the previous month,
//   - the ISO form, tolerating single-digit month and day.
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	if str == "0d" {
		// The one unsigned relative form, the idiom for "today".
		return Today(), nil
	}
	if m := relativeDateRE.FindStringSubmatch(str); m != nil {
		return parseRelative(m[1], m[2], m[3])
	}
	if m := monthDayDateRE.FindStringSubmatch(str); m != nil {
		return parseMonthDay(m[1], m[2])
	}
	on, err := time.Parse(looseDateLayout, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want format %q: %w", str, looseDateLayout, err)
	}
	return NewDate(on.Date()), nil
}

// parseRelative counts sign×count units away from today. Month, quarter and
// year steps keep the day of the month, rolling over when the target month is
// shorter.
func parseRelative(sign, count, unit string) (Date, error) {
	n, err := strconv.Atoi(count)
	if err != nil {
		return Date{}, fmt.Errorf("invalid relative date count %q: %w", count, err)
	}
	if sign == "-" {
		n = -n
	}
	today := Today()
	switch unit {
	case "d":
		return today.Add(n), nil
	case "w":
		return today.Add(7 * n), nil
	case "m":
		return NewDate(today.Year(), today.Month()+time.Month(n), today.Day()), nil
	case "q":
		return NewDate(today.Year(), today.Month()+time.Month(3*n), today.Day()), nil
	case "y":
		return NewDate(today.Year()+n, today.Month(), today.Day()), nil
	}
	return Date{}, fmt.Errorf("invalid relative date unit %q", unit)
}

// parseMonthDay resolves the short "[MM-]DD" form against the current year.
// Zero picks the previous one: month 0 is december last year, day 0 the last
// day of the month before, so "0" names the most recent month end.
func parseMonthDay(monthStr, dayStr string) (Date, error) {
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return Date{}, fmt.Errorf("invalid day in date: %w", err)
	}
	today := Today()
	year, month := today.Year(), today.Month()
	if monthStr != "" {
		m, err := strconv.Atoi(monthStr)
		if err != nil {
			return Date{}, fmt.Errorf("invalid month in date: %w", err)
		}
		if m == 0 {
			year, month = year-1, time.December
		} else {
			month = time.Month(m)
		}
	}
	return NewDate(year, month, day), nil
}

// MustParse is ParseDate for fixtures and literals, panicking on error.
func MustParse(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// MarshalJSON writes the date as an ISO string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON reads an ISO date string. Snapshot data gets none of the
// command-line shorthands: a relative date would drift on every load.
func (d *Date) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	on, err := time.Parse(looseDateLayout, str)
	if err != nil {
		return fmt.Errorf("invalid date %q in snapshot, want format %q: %w", str, dateLayout, err)
	}
	*d = NewDate(on.Date())
	return nil
}

var _ json.Marshaler = Date{}
var _ json.Unmarshaler = (*Date)(nil)

package tracker

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal converts any supported numeric type to a decimal.
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt32(int32(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic(fmt.Sprintf("%T cannot be converted to decimal", v))
	}
}

// Money is a monetary amount.
//
// The amount is exact: all ledger arithmetic is performed on decimals, never
// on floats, so that fund balances reconcile to the cent. The currency is
// weak: a Money decoded from a snapshot has no currency until it meets a
// typed one.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ParseMoney parses an amount typed as a decimal number, like "1000" or
// "33.33". The value is read exactly, no float conversion in between.
func ParseMoney(str, currency string) (Money, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(str))
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", str, err)
	}
	return Money{value: v, cur: currency}, nil
}

// currency looks up the ISO entry for the money's code. money.GetCurrency
// returns nil for codes it does not know, so the lookup goes through the
// constructor, which always yields a usable entry.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// fraction returns the number of decimal digits of the money's smallest unit.
// A currency-less money defaults to cents.
func (m Money) fraction() int32 {
	if m.cur == "" {
		return 2
	}
	return int32(m.currency().Fraction)
}

// String renders the value for display: currency-aware formatting when the
// code is known, plain two-decimal fixed point otherwise.
func (m Money) String() string {
	if m.cur == "" {
		return m.value.StringFixed(2)
	}
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Comparisons and predicates delegate to the decimal value; the currency
// plays no part in them.

func (m Money) Currency() string                { return m.cur }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }

// Arithmetic; the result currency is merged by cur.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// MulPercent returns the given percentage of the money value, exact, without rounding.
func (m Money) MulPercent(p Percent) Money {
	ratio := decimal.NewFromFloat(float64(p)).Shift(-2)
	return Money{value: m.value.Mul(ratio), cur: m.cur}
}

// Round returns the money rounded to its currency's smallest unit, half away
// from zero.
func (m Money) Round() Money {
	return Money{value: m.value.Round(m.fraction()), cur: m.cur}
}

// cur merges two operands' currencies. A weak (empty) code defers to the
// other side; two typed codes must agree.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch: " + a.cur + " != " + b.cur)
	}
	return a.cur
}

// SignedString prefixes positive values with "+" and renders zero as a bare
// "-", the form the summary tables use.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// MarshalJSON persists the value as a bare number with all its digits.
// The decimal package quotes numbers by default, and rounding here would break
// the balance == inflow - outflow invariant on reload, so the value goes out
// verbatim and display rounding stays in String.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

// UnmarshalJSON reads a bare number. The currency is left weak and resolves on
// first contact with a typed Money.
func (m *Money) UnmarshalJSON(data []byte) error {
	var v decimal.Decimal
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	m.value = v
	m.cur = ""
	return nil
}

var _ json.Marshaler = Money{}
var _ json.Unmarshaler = (*Money)(nil)

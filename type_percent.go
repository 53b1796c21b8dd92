package tracker

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Percent float64

// Equal reports whether p and q are within 1e-4 of each other.
func (p Percent) Equal(q Percent) bool {
	return math.Abs(float64(p-q)) < 1e-4
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	s := fmt.Sprintf("%+.2f%%", float64(p))
	if s == "+0.00%" {
		return "-"
	}
	return s
}

// ParsePercent parses a percentage from a string, with or without the trailing
// '%' sign.
func ParsePercent(str string) (Percent, error) {
	str = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(str), "%"))
	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percentage %q: %w", str, err)
	}
	return Percent(v), nil
}

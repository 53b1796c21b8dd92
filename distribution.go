package tracker

import (
	"fmt"
	"slices"
)

// A Share assigns a percentage of every profit to a fund.
type Share struct {
	FundID  string  `json:"fundId"`
	Percent Percent `json:"percentage"`
}

// A Distribution is the ordered list of shares splitting each profit across
// the funds. Order matters: the last share absorbs the rounding remainder so
// that the allocations always sum back to the exact profit.
type Distribution []Share

func (d Distribution) clone() Distribution { return slices.Clone(d) }

// Sum returns the total of all shares.
func (d Distribution) Sum() Percent {
	var total Percent
	for _, s := range d {
		total += s.Percent
	}
	return total
}

// Has reports whether the fund holds a share of the distribution.
func (d Distribution) Has(fundID string) bool {
	return slices.ContainsFunc(d, func(s Share) bool { return s.FundID == fundID })
}

// Check verifies the distribution is usable: every share in range, no fund
// listed twice, and the shares summing to 100.
//
// The sum runs through the Percent comparison precision: the float dust left
// by rescaling passes, a share typed a cent short does not.
func (d Distribution) Check() error {
	seen := make(map[string]bool, len(d))
	for _, s := range d {
		if s.Percent < 0 || s.Percent > 100 {
			return fmt.Errorf("%w: fund %q holds %s", ErrShareOutOfRange, s.FundID, s.Percent)
		}
		if seen[s.FundID] {
			return fmt.Errorf("%w: fund %q", ErrDuplicateShare, s.FundID)
		}
		seen[s.FundID] = true
	}
	if !d.Sum().Equal(100) {
		return fmt.Errorf("%w: shares sum to %s", ErrBadDistributionSum, d.Sum())
	}
	return nil
}

// Allocate splits a profit across the funds following the distribution.
//
// Every share but the last receives its percentage of the profit rounded to
// the smallest currency unit; the last share receives whatever remains, so
// the allocations conserve the profit to the cent. The distribution is
// checked first and no allocation happens on a bad one.
func (d Distribution) Allocate(profit Money) (map[string]Money, error) {
	if err := d.Check(); err != nil {
		return nil, err
	}
	allocs := make(map[string]Money, len(d))
	remainder := profit
	for i, s := range d {
		if i == len(d)-1 {
			allocs[s.FundID] = remainder
			break
		}
		alloc := profit.MulPercent(s.Percent).Round()
		remainder = remainder.Sub(alloc)
		allocs[s.FundID] = alloc
	}
	return allocs, nil
}

package tracker

import "fmt"

// TaxPercent is the share of every profit reserved for taxes when the tax
// toggle is on.
const TaxPercent Percent = 5

// withTax rescales the shares to leave room for the tax share and appends it
// last, where it absorbs the allocation rounding remainder. The tax fund must
// not already hold a share: its share belongs to the toggle, not the user.
func (d Distribution) withTax(taxFundID string) (Distribution, error) {
	if d.Has(taxFundID) {
		return nil, fmt.Errorf("fund %q already holds a share, its share is managed by the tax toggle", taxFundID)
	}
	total := d.Sum()
	if total == 0 {
		return nil, fmt.Errorf("%w: cannot rescale an empty distribution", ErrDegenerateDistribution)
	}
	out := make(Distribution, 0, len(d)+1)
	for _, s := range d {
		out = append(out, Share{FundID: s.FundID, Percent: s.Percent * (100 - TaxPercent) / total})
	}
	out = append(out, Share{FundID: taxFundID, Percent: TaxPercent})
	return out, nil
}

// withoutTax removes the tax share and rescales what remains back to 100.
func (d Distribution) withoutTax(taxFundID string) (Distribution, error) {
	out := make(Distribution, 0, len(d))
	for _, s := range d {
		if s.FundID != taxFundID {
			out = append(out, s)
		}
	}
	total := out.Sum()
	if total == 0 {
		return nil, fmt.Errorf("%w: nothing left to rescale once the tax share is removed", ErrDegenerateDistribution)
	}
	for i := range out {
		out[i].Percent = out[i].Percent * 100 / total
	}
	return out, nil
}

package tracker

import (
	"encoding/json"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
	"time"
)

// Fund is a named bucket of money fed by profit distribution and drained by
// expenses. Its balance is fully determined by its lifetime flows:
//
//	currentBalance == lifetimeInflow - lifetimeOutflow
//
// Funds are value types; mutations return a modified copy.
type Fund struct {
	ID          string
	Name        string
	Description string
	Balance     Money  // current balance
	Inflow      Money  // lifetime inflow, never decreases
	Outflow     Money  // lifetime outflow, never decreases
	Color       string // optional display tag
	TaxFund     bool   // marks the fund that receives the tax share
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Check verifies the fund's balance invariant.
func (f Fund) Check() error {
	if !f.Balance.Equal(f.Inflow.Sub(f.Outflow)) {
		return fmt.Errorf("fund %q balance %s does not match inflow %s - outflow %s",
			f.Name, f.Balance, f.Inflow, f.Outflow)
	}
	return nil
}

// credit applies an allocation: balance and lifetime inflow grow by the same
// amount, keeping the invariant by construction.
func (f Fund) credit(amount Money, now time.Time) Fund {
	f.Balance = f.Balance.Add(amount)
	f.Inflow = f.Inflow.Add(amount)
	f.UpdatedAt = now
	return f
}

// debit applies an expense: balance shrinks, lifetime outflow grows.
func (f Fund) debit(amount Money, now time.Time) Fund {
	f.Balance = f.Balance.Sub(amount)
	f.Outflow = f.Outflow.Add(amount)
	f.UpdatedAt = now
	return f
}

// MarshalJSON implements the json.Marshaler interface for Fund.
func (f Fund) MarshalJSON() ([]byte, error) {
	var w objectWriter
	w.Append("id", f.ID)
	w.Append("name", f.Name)
	w.Optional("description", f.Description)
	w.Append("currentBalance", f.Balance)
	w.Append("lifetimeInflow", f.Inflow)
	w.Append("lifetimeOutflow", f.Outflow)
	w.Optional("color", f.Color)
	w.Optional("taxFund", f.TaxFund)
	w.Append("createdAt", f.CreatedAt)
	w.Append("updatedAt", f.UpdatedAt)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Fund.
func (f *Fund) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		Balance     Money     `json:"currentBalance"`
		Inflow      Money     `json:"lifetimeInflow"`
		Outflow     Money     `json:"lifetimeOutflow"`
		Color       string    `json:"color"`
		TaxFund     bool      `json:"taxFund"`
		CreatedAt   time.Time `json:"createdAt"`
		UpdatedAt   time.Time `json:"updatedAt"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*f = Fund(temp)
	return nil
}

// Funds indexes funds by their id.
type Funds map[string]Fund

// clone returns a shallow copy. Fund is a value type, so a shallow copy is
// enough to keep the original collection untouched.
func (f Funds) clone() Funds {
	return maps.Clone(f)
}

// All iterates over the funds in a stable order: by name, then by id for
// identically named funds.
func (f Funds) All() iter.Seq[Fund] {
	return func(yield func(Fund) bool) {
		ids := slices.Collect(maps.Keys(f))
		slices.SortFunc(ids, func(a, b string) int {
			if c := strings.Compare(f[a].Name, f[b].Name); c != 0 {
				return c
			}
			return strings.Compare(a, b)
		})
		for _, id := range ids {
			if !yield(f[id]) {
				return
			}
		}
	}
}

// Find resolves a fund reference: an exact id first, then an exact name.
func (f Funds) Find(ref string) (Fund, bool) {
	if fund, ok := f[ref]; ok {
		return fund, true
	}
	for _, fund := range f {
		if fund.Name == ref {
			return fund, true
		}
	}
	return Fund{}, false
}

// TaxFund returns the single fund flagged as the tax fund. It returns an error
// when none or several are flagged, as the tax toggle would be ambiguous.
func (f Funds) TaxFund() (Fund, error) {
	var found []Fund
	for fund := range f.All() {
		if fund.TaxFund {
			found = append(found, fund)
		}
	}
	if len(found) != 1 {
		return Fund{}, fmt.Errorf("%w: found %d", ErrTaxFundMissing, len(found))
	}
	return found[0], nil
}

// Check verifies the balance invariant of every fund.
func (f Funds) Check() error {
	for fund := range f.All() {
		if err := fund.Check(); err != nil {
			return err
		}
	}
	return nil
}

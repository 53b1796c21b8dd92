package tracker

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/google/uuid"
)

// State is the whole financial picture at a point in time: the funds, the
// transactions that built them, the active profit distribution and the tax
// toggle.
//
// A State never changes once built. Every mutating operation validates its
// input, then returns a fresh State, leaving the receiver untouched; on any
// error the receiver is still the current truth. This makes mutation
// all-or-nothing by construction.
type State struct {
	funds        Funds
	transactions []Transaction
	distribution Distribution
	taxEnabled   bool
	lastUpdated  time.Time
}

// NewState creates an empty state: no funds, no transactions, no
// distribution.
func NewState() *State {
	return &State{funds: Funds{}}
}

// DefaultState returns the state a fresh ledger starts from: three funds
// splitting profits 50/30/20, and a tax fund ready for the tax toggle.
func DefaultState() *State {
	now := time.Now().UTC()
	fund := func(id, name, description string, taxFund bool) Fund {
		return Fund{ID: id, Name: name, Description: description, TaxFund: taxFund, CreatedAt: now, UpdatedAt: now}
	}
	return &State{
		funds: Funds{
			"operating": fund("operating", "Operating", "day to day running costs", false),
			"owner-pay": fund("owner-pay", "Owner Pay", "the owner's compensation", false),
			"savings":   fund("savings", "Savings", "long term reserves", false),
			"taxes":     fund("taxes", "Taxes", "fed by the tax toggle", true),
		},
		distribution: Distribution{
			{FundID: "operating", Percent: 50},
			{FundID: "owner-pay", Percent: 30},
			{FundID: "savings", Percent: 20},
		},
		lastUpdated: now,
	}
}

func (s *State) clone() *State {
	return &State{
		funds:        s.funds.clone(),
		transactions: slices.Clone(s.transactions),
		distribution: s.distribution.clone(),
		taxEnabled:   s.taxEnabled,
		lastUpdated:  s.lastUpdated,
	}
}

// Fund returns the fund with this id.
func (s *State) Fund(id string) (Fund, bool) {
	f, ok := s.funds[id]
	return f, ok
}

// FindFund resolves a fund reference, an exact id first, then an exact name.
func (s *State) FindFund(ref string) (Fund, bool) { return s.funds.Find(ref) }

// AllFunds iterates over the funds sorted by name.
func (s *State) AllFunds() iter.Seq[Fund] { return s.funds.All() }

// FundsByID returns a copy of the funds keyed by id.
func (s *State) FundsByID() Funds { return s.funds.clone() }

// Distribution returns a copy of the active profit distribution.
func (s *State) Distribution() Distribution { return s.distribution.clone() }

// TaxEnabled reports whether the tax toggle is on.
func (s *State) TaxEnabled() bool { return s.taxEnabled }

// LastUpdated returns the time of the last successful mutation.
func (s *State) LastUpdated() time.Time { return s.lastUpdated }

// Transactions returns an iterator that yields each transaction in insertion
// order. A transaction is yielded when at least one filter accepts it.
func (s *State) Transactions(filters ...Filter) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range s.transactions {
			accept := false
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// OldestTransactionDate returns the date of the earliest transaction, or the
// zero date when there is none.
func (s *State) OldestTransactionDate() Date {
	var oldest Date
	for _, tx := range s.transactions {
		if oldest.IsZero() || tx.When().Before(oldest) {
			oldest = tx.When()
		}
	}
	return oldest
}

// NewestTransactionDate returns the date of the latest transaction, or the
// zero date when there is none.
func (s *State) NewestTransactionDate() Date {
	var newest Date
	for _, tx := range s.transactions {
		if tx.When().After(newest) {
			newest = tx.When()
		}
	}
	return newest
}

// Check verifies the state is coherent: every fund balance matches its
// lifetime flows, and the distribution is usable and only names existing
// funds.
func (s *State) Check() error {
	if err := s.funds.Check(); err != nil {
		return err
	}
	for _, share := range s.distribution {
		if _, ok := s.funds[share.FundID]; !ok {
			return fmt.Errorf("%w: %q holds a share of the distribution", ErrFundNotFound, share.FundID)
		}
	}
	if len(s.distribution) > 0 {
		return s.distribution.Check()
	}
	return nil
}

// Submit validates a transaction, applies it to the funds and records it.
// It returns the new state and the recorded transaction. On error the
// receiver is unchanged and remains the current state.
func (s *State) Submit(tx Transaction) (*State, Transaction, error) {
	tx, err := Validate(s.funds, tx)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid %s transaction on %s: %w", tx.What(), tx.When(), err)
	}
	now := time.Now().UTC()
	funds, err := Apply(s.funds, tx, s.distribution, now)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot record %s transaction on %s: %w", tx.What(), tx.When(), err)
	}
	next := s.clone()
	next.funds = funds
	next.transactions = append(next.transactions, tx)
	next.lastUpdated = now
	return next, tx, nil
}

// Apply computes the funds after recording tx, without touching the input.
//
// An income only distributes its derived profit: each allocated share grows
// the receiving fund's balance and lifetime inflow. An expense shrinks the
// source fund's balance and grows its lifetime outflow. On error no fund has
// been modified.
func Apply(funds Funds, tx Transaction, dist Distribution, now time.Time) (Funds, error) {
	out := funds.clone()
	switch v := tx.(type) {
	case Income:
		profit := v.Profit()
		if profit.IsZero() {
			return out, nil // nothing to distribute
		}
		allocs, err := dist.Allocate(profit)
		if err != nil {
			return nil, err
		}
		for id, alloc := range allocs {
			fund, ok := out[id]
			if !ok {
				return nil, fmt.Errorf("%w: %q holds a share of the distribution", ErrFundNotFound, id)
			}
			out[id] = fund.credit(alloc, now)
		}
	case Expense:
		fund, ok := out[v.Source]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrFundNotFound, v.Source)
		}
		out[v.Source] = fund.debit(v.Amount, now)
	default:
		return nil, fmt.Errorf("unsupported transaction type %q", tx.What())
	}
	return out, nil
}

// CreateFund adds a fund. The caller provides the name, description, color
// and tax flag; the id, timestamps and zero balances are assigned here.
func (s *State) CreateFund(fund Fund) (*State, Fund, error) {
	if fund.Name == "" {
		return nil, Fund{}, fmt.Errorf("fund name is required")
	}
	if existing, ok := s.funds.Find(fund.Name); ok {
		return nil, Fund{}, fmt.Errorf("fund %q already exists", existing.Name)
	}
	if fund.TaxFund {
		if existing, err := s.funds.TaxFund(); err == nil {
			return nil, Fund{}, fmt.Errorf("fund %q already is the tax fund", existing.Name)
		}
	}
	now := time.Now().UTC()
	fund.ID = uuid.NewString()
	fund.Balance, fund.Inflow, fund.Outflow = Money{}, Money{}, Money{}
	fund.CreatedAt, fund.UpdatedAt = now, now

	next := s.clone()
	next.funds[fund.ID] = fund
	next.lastUpdated = now
	return next, fund, nil
}

// UpdateFund changes the name, description, color or tax flag of the fund
// carrying the given id. Balances, flows and the creation time are kept.
func (s *State) UpdateFund(fund Fund) (*State, Fund, error) {
	current, ok := s.funds[fund.ID]
	if !ok {
		return nil, Fund{}, fmt.Errorf("%w: %q", ErrFundNotFound, fund.ID)
	}
	if fund.Name == "" {
		return nil, Fund{}, fmt.Errorf("fund name is required")
	}
	if existing, ok := s.funds.Find(fund.Name); ok && existing.ID != fund.ID {
		return nil, Fund{}, fmt.Errorf("fund %q already exists", existing.Name)
	}
	if fund.TaxFund {
		if existing, err := s.funds.TaxFund(); err == nil && existing.ID != fund.ID {
			return nil, Fund{}, fmt.Errorf("fund %q already is the tax fund", existing.Name)
		}
	}
	now := time.Now().UTC()
	current.Name = fund.Name
	current.Description = fund.Description
	current.Color = fund.Color
	current.TaxFund = fund.TaxFund
	current.UpdatedAt = now

	next := s.clone()
	next.funds[current.ID] = current
	next.lastUpdated = now
	return next, current, nil
}

// DeleteFund removes a fund. A fund can only go when its balance is exactly
// zero, no expense draws from it, and it holds no share of the distribution.
func (s *State) DeleteFund(id string) (*State, error) {
	fund, ok := s.funds[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFundNotFound, id)
	}
	if !fund.Balance.IsZero() {
		return nil, fmt.Errorf("%w: fund %q still holds %s", ErrBalanceNotZero, fund.Name, fund.Balance)
	}
	var refs int
	for range s.Transactions(ByFund(id)) {
		refs++
	}
	if refs > 0 {
		return nil, fmt.Errorf("%w: fund %q is the source of %d expense(s)", ErrFundReferenced, fund.Name, refs)
	}
	if s.distribution.Has(id) {
		return nil, fmt.Errorf("%w: fund %q holds a share of the distribution", ErrFundReferenced, fund.Name)
	}
	next := s.clone()
	delete(next.funds, id)
	next.lastUpdated = time.Now().UTC()
	return next, nil
}

// SetDistribution replaces the profit distribution wholesale. The new
// distribution must be usable and only name existing funds.
func (s *State) SetDistribution(d Distribution) (*State, error) {
	if err := d.Check(); err != nil {
		return nil, err
	}
	for _, share := range d {
		if _, ok := s.funds[share.FundID]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrFundNotFound, share.FundID)
		}
	}
	next := s.clone()
	next.distribution = d.clone()
	next.lastUpdated = time.Now().UTC()
	return next, nil
}

// SetTaxEnabled flips the tax toggle and rebalances the distribution.
//
// Enabling rescales the current shares to make room for the tax fund share,
// appended last. Disabling removes that share and rescales what remains back
// to 100. Toggling to the current position is a no-op.
func (s *State) SetTaxEnabled(enabled bool) (*State, error) {
	if enabled == s.taxEnabled {
		return s, nil
	}
	taxFund, err := s.funds.TaxFund()
	if err != nil {
		return nil, err
	}
	var d Distribution
	if enabled {
		d, err = s.distribution.withTax(taxFund.ID)
	} else {
		d, err = s.distribution.withoutTax(taxFund.ID)
	}
	if err != nil {
		return nil, err
	}
	next := s.clone()
	next.distribution = d
	next.taxEnabled = enabled
	next.lastUpdated = time.Now().UTC()
	return next, nil
}

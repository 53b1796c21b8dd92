package tracker

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// A Budget caps spending over a recurring period, across all funds or scoped
// to a single one. Budgets live next to the state in the snapshot; they watch
// the ledger, they never mutate it.
type Budget struct {
	ID        string
	Name      string
	FundID    string // optional: only watch expenses drawn from this fund
	Limit     Money
	Period    Period
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudget builds a budget watching the given period. Pass an empty fund id
// to watch every expense.
func NewBudget(name string, fundID string, limit Money, period Period) Budget {
	now := time.Now().UTC()
	return Budget{
		ID:        uuid.NewString(),
		Name:      name,
		FundID:    fundID,
		Limit:     limit,
		Period:    period,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Check verifies the budget definition against the funds it may reference.
func (b Budget) Check(funds Funds) error {
	if b.Name == "" {
		return fmt.Errorf("budget name is required")
	}
	if !b.Limit.IsPositive() {
		return fmt.Errorf("%w: budget limit %s", ErrAmountNotPositive, b.Limit)
	}
	if b.FundID != "" {
		if _, ok := funds[b.FundID]; !ok {
			return fmt.Errorf("%w: %q", ErrFundNotFound, b.FundID)
		}
	}
	return nil
}

// Status reports the budget against the expenses recorded in the state,
// within the period window containing the given date.
func (b Budget) Status(s *State, on Date) BudgetStatus {
	window := b.Period.Range(on)
	accept := And(ByType(TypeExpense), InRange(window))
	if b.FundID != "" {
		accept = And(accept, ByFund(b.FundID))
	}
	var spent Money
	for _, tx := range s.Transactions(accept) {
		if e, ok := tx.(Expense); ok {
			spent = spent.Add(e.Amount)
		}
	}
	return BudgetStatus{
		Budget:    b,
		Window:    window,
		Spent:     spent,
		Remaining: b.Limit.Sub(spent),
	}
}

// MarshalJSON implements the json.Marshaler interface for Budget.
func (b Budget) MarshalJSON() ([]byte, error) {
	var w objectWriter
	w.Append("id", b.ID)
	w.Append("name", b.Name)
	w.Optional("fundId", b.FundID)
	w.Append("limit", b.Limit)
	w.Append("period", b.Period)
	w.Append("createdAt", b.CreatedAt)
	w.Append("updatedAt", b.UpdatedAt)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Budget.
func (b *Budget) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		FundID    string    `json:"fundId"`
		Limit     Money     `json:"limit"`
		Period    Period    `json:"period"`
		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*b = Budget(temp)
	return nil
}

// BudgetStatus is the picture of one budget over one period window.
type BudgetStatus struct {
	Budget    Budget
	Window    Range
	Spent     Money
	Remaining Money
}

// Over reports whether the spending went past the limit.
func (s BudgetStatus) Over() bool { return s.Spent.GreaterThan(s.Budget.Limit) }

// Budgets is the list of budgets stored alongside the state.
type Budgets []Budget

// Find resolves a budget reference, an exact id first, then an exact name.
func (b Budgets) Find(ref string) (Budget, bool) {
	for _, budget := range b {
		if budget.ID == ref {
			return budget, true
		}
	}
	for _, budget := range b {
		if budget.Name == ref {
			return budget, true
		}
	}
	return Budget{}, false
}

// Statuses reports every budget against the state at the given date.
func (b Budgets) Statuses(s *State, on Date) []BudgetStatus {
	statuses := make([]BudgetStatus, 0, len(b))
	for _, budget := range b {
		statuses = append(statuses, budget.Status(s, on))
	}
	return statuses
}

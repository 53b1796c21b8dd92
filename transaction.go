package tracker

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type identifies the kind of a ledger transaction.
type Type string

const (
	TypeIncome  Type = "INCOME"
	TypeExpense Type = "EXPENSE"
)

// Transaction is the read-only interface shared by all ledger entries.
// Entries are immutable once recorded: the ledger only ever appends, and
// corrections are new entries.
type Transaction interface {
	// What returns the transaction type.
	What() Type
	// When returns the accounting date of the entry.
	When() Date
	// Equal returns true when both transactions carry the same values.
	Equal(other Transaction) bool
}

// baseTx holds the fields common to all transactions.
type baseTx struct {
	ID          string    `json:"id"`
	Type        Type      `json:"type"`
	Date        Date      `json:"date"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newBase(t Type, date Date, description string) baseTx {
	return baseTx{
		ID:          uuid.NewString(),
		Type:        t,
		Date:        date,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

func (b baseTx) What() Type { return b.Type }
func (b baseTx) When() Date { return b.Date }

func (b baseTx) Equal(o baseTx) bool {
	return b.ID == o.ID &&
		b.Type == o.Type &&
		b.Date == o.Date &&
		b.Description == o.Description &&
		b.CreatedAt.Equal(o.CreatedAt)
}

// Income represents money earned. Its profit, the part left after the cost of
// production, is what the distribution spreads across the funds.
type Income struct {
	baseTx
	Amount Money
	Cost   Money // cost of production; the zero value means none was recorded
}

// NewIncome builds an income entry. Pass the zero Money as cost when there is
// no cost of production.
func NewIncome(date Date, description string, amount, cost Money) Income {
	return Income{
		baseTx: newBase(TypeIncome, date, description),
		Amount: amount,
		Cost:   cost,
	}
}

// Profit returns the portion of the income left after the cost of production.
// Validation guarantees it is never negative for recorded entries.
func (i Income) Profit() Money {
	return i.Amount.Sub(i.Cost)
}

// Validate checks the income against the recording rules.
func (i Income) Validate(funds Funds) error {
	if !i.Amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrAmountNotPositive, i.Amount)
	}
	if i.Date.After(Today()) {
		return fmt.Errorf("%w: %s", ErrFutureDate, i.Date)
	}
	profit, err := Profit(i.Amount, i.Cost)
	if err != nil {
		return err
	}
	if profit.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeProfit, profit)
	}
	return nil
}

// Equal implements the Transaction interface.
func (i Income) Equal(other Transaction) bool {
	o, ok := other.(Income)
	return ok && i.baseTx.Equal(o.baseTx) && i.Amount.Equal(o.Amount) && i.Cost.Equal(o.Cost)
}

// MarshalJSON implements the json.Marshaler interface for Income.
func (i Income) MarshalJSON() ([]byte, error) {
	var w objectWriter
	w.EmbedFrom(i.baseTx)
	w.Append("amount", i.Amount)
	w.Optional("costOfProduction", i.Cost)
	w.Append("profit", i.Profit())
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Income. The
// stored profit is derived data and is recomputed from amount and cost.
func (i *Income) UnmarshalJSON(data []byte) error {
	var temp struct {
		baseTx
		Amount Money `json:"amount"`
		Cost   Money `json:"costOfProduction"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	i.baseTx = temp.baseTx
	i.Amount = temp.Amount
	i.Cost = temp.Cost
	return nil
}

// Expense represents money spent from a single fund.
type Expense struct {
	baseTx
	Amount Money
	Source string // id of the fund the expense draws from
}

// NewExpense builds an expense entry drawing from the given fund id.
func NewExpense(date Date, description string, amount Money, source string) Expense {
	return Expense{
		baseTx: newBase(TypeExpense, date, description),
		Amount: amount,
		Source: source,
	}
}

// Validate checks the expense against the recording rules and the fund it
// draws from.
func (e Expense) Validate(funds Funds) error {
	if !e.Amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrAmountNotPositive, e.Amount)
	}
	if e.Date.After(Today()) {
		return fmt.Errorf("%w: %s", ErrFutureDate, e.Date)
	}
	fund, ok := funds[e.Source]
	if !ok {
		return fmt.Errorf("%w: %q", ErrFundNotFound, e.Source)
	}
	if fund.Balance.LessThan(e.Amount) {
		return fmt.Errorf("%w: fund %q holds %s, expense needs %s",
			ErrInsufficientFunds, fund.Name, fund.Balance, e.Amount)
	}
	return nil
}

// Equal implements the Transaction interface.
func (e Expense) Equal(other Transaction) bool {
	o, ok := other.(Expense)
	return ok && e.baseTx.Equal(o.baseTx) && e.Amount.Equal(o.Amount) && e.Source == o.Source
}

// MarshalJSON implements the json.Marshaler interface for Expense.
func (e Expense) MarshalJSON() ([]byte, error) {
	var w objectWriter
	w.EmbedFrom(e.baseTx)
	w.Append("amount", e.Amount)
	w.Append("sourceFundId", e.Source)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Expense.
func (e *Expense) UnmarshalJSON(data []byte) error {
	var temp struct {
		baseTx
		Amount Money  `json:"amount"`
		Source string `json:"sourceFundId"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	e.baseTx = temp.baseTx
	e.Amount = temp.Amount
	e.Source = temp.Source
	return nil
}

// A Filter selects transactions when iterating over the ledger.
type Filter func(Transaction) bool

// AcceptAll keeps every transaction.
func AcceptAll(Transaction) bool { return true }

// ByType keeps transactions of the given type.
func ByType(t Type) Filter {
	return func(tx Transaction) bool { return tx.What() == t }
}

// ByFund keeps expenses drawn from the given fund id.
func ByFund(id string) Filter {
	return func(tx Transaction) bool {
		e, ok := tx.(Expense)
		return ok && e.Source == id
	}
}

// InRange keeps transactions whose date falls within r.
func InRange(r Range) Filter {
	return func(tx Transaction) bool { return r.Contains(tx.When()) }
}

// And combines filters; a transaction passes only when every filter accepts it.
func And(filters ...Filter) Filter {
	return func(tx Transaction) bool {
		for _, f := range filters {
			if !f(tx) {
				return false
			}
		}
		return true
	}
}

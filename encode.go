package tracker

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Version is the snapshot format version this build reads and writes. A
// stored snapshot carrying any other version holds no usable data for this
// build.
const Version = 1

// Snapshot is the persisted document: the state plus the budgets watching it.
type Snapshot struct {
	State   *State
	Budgets Budgets
}

// MarshalJSON implements the json.Marshaler interface for Snapshot.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	var w objectWriter
	w.Append("version", Version)
	w.Append("state", s.State)
	w.Append("budgets", s.Budgets)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for State.
//
// Funds marshal as a map keyed by id (encoding/json sorts the keys), the
// transactions keep their insertion order, and dates serialize as ISO-8601
// strings.
func (s *State) MarshalJSON() ([]byte, error) {
	var w objectWriter
	w.Append("funds", s.funds)
	w.Append("transactions", s.transactions)
	w.Append("profitDistribution", s.distribution)
	w.Append("taxEnabled", s.taxEnabled)
	w.Append("lastUpdated", s.lastUpdated)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for State.
func (s *State) UnmarshalJSON(data []byte) error {
	var temp struct {
		Funds        Funds             `json:"funds"`
		Transactions []json.RawMessage `json:"transactions"`
		Distribution Distribution      `json:"profitDistribution"`
		TaxEnabled   bool              `json:"taxEnabled"`
		LastUpdated  time.Time         `json:"lastUpdated"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	txs := make([]Transaction, 0, len(temp.Transactions))
	for _, raw := range temp.Transactions {
		tx, err := decodeTransaction(raw)
		if err != nil {
			return err
		}
		txs = append(txs, tx)
	}
	if temp.Funds == nil {
		temp.Funds = Funds{}
	}
	s.funds = temp.Funds
	s.transactions = txs
	s.distribution = temp.Distribution
	s.taxEnabled = temp.TaxEnabled
	s.lastUpdated = temp.LastUpdated
	return nil
}

// decodeTransaction decodes a single transaction by peeking its type first,
// then unmarshalling into the matching struct.
func decodeTransaction(data []byte) (Transaction, error) {
	var identifier struct {
		Type Type `json:"type"`
	}
	if err := json.Unmarshal(data, &identifier); err != nil {
		return nil, fmt.Errorf("could not identify transaction in %q: %w", string(data), err)
	}

	switch identifier.Type {
	case TypeIncome:
		var tx Income
		if err := json.Unmarshal(data, &tx); err != nil {
			return nil, err
		}
		return tx, nil
	case TypeExpense:
		var tx Expense
		if err := json.Unmarshal(data, &tx); err != nil {
			return nil, err
		}
		return tx, nil
	default:
		return nil, fmt.Errorf("unknown transaction type: %q", identifier.Type)
	}
}

// EncodeSnapshot writes the snapshot document to w, indented, with stable key
// and fund order for reviewable diffs.
func EncodeSnapshot(w io.Writer, snap *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("could not encode snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a snapshot document from r. A version other than
// Version is reported as ErrVersionMismatch: the data is not usable by this
// build, and the caller decides the fallback.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var temp struct {
		Version int             `json:"version"`
		State   json.RawMessage `json:"state"`
		Budgets Budgets         `json:"budgets"`
	}
	if err := json.NewDecoder(r).Decode(&temp); err != nil {
		return nil, fmt.Errorf("could not decode snapshot: %w", err)
	}
	if temp.Version != Version {
		return nil, fmt.Errorf("%w: snapshot version %d, supported %d", ErrVersionMismatch, temp.Version, Version)
	}
	state := NewState()
	if len(temp.State) > 0 {
		if err := json.Unmarshal(temp.State, state); err != nil {
			return nil, fmt.Errorf("could not decode state: %w", err)
		}
	}
	return &Snapshot{State: state, Budgets: temp.Budgets}, nil
}

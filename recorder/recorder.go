// Package recorder appends applied transactions and the fund balances they
// leave behind to a local history database, for external dashboards.
//
// The journal is an audit artifact: the snapshot file stays the single source
// of truth, and nothing in the ledger ever reads the journal back.
package recorder

import (
	tracker "github.com/yuppyjoe/Finance-tracker"
)

// TransactionEvent holds everything recorded for one applied transaction.
type TransactionEvent struct {
	Tx    tracker.Transaction
	Funds []tracker.Fund // balances after the apply, sorted by name
	Total tracker.Money  // total balance after the apply
}

// NewTransactionEvent captures an applied transaction and the balances it
// left behind.
func NewTransactionEvent(tx tracker.Transaction, s *tracker.State) *TransactionEvent {
	evt := &TransactionEvent{Tx: tx}
	for f := range s.AllFunds() {
		evt.Funds = append(evt.Funds, f)
		evt.Total = evt.Total.Add(f.Balance)
	}
	return evt
}

// Recorder persists historical data for analysis.
type Recorder interface {
	RecordTransaction(evt *TransactionEvent) error
	Close() error
}

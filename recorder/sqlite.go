package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	tracker "github.com/yuppyjoe/Finance-tracker"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists the history journal to a SQLite database.
//
// Amounts travel as text, not floats, so the journal stays exact to the cent
// like the ledger itself.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the CLI writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS transactions_log (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			tx_id         TEXT NOT NULL,
			tx_type       TEXT NOT NULL,
			tx_date       TEXT NOT NULL,
			description   TEXT,
			amount        TEXT NOT NULL,
			profit        TEXT,
			source_fund   TEXT,
			total_balance TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_txlog_ts ON transactions_log(timestamp)`,

		`CREATE TABLE IF NOT EXISTS balance_history (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			fund_id   TEXT NOT NULL,
			name      TEXT,
			balance   TEXT NOT NULL,
			inflow    TEXT NOT NULL,
			outflow   TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_balance_ts ON balance_history(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordTransaction appends the transaction and one balance row per fund, as
// a single database transaction.
func (r *SQLiteRecorder) RecordTransaction(evt *TransactionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var id, description, amount, profit, source string
	switch v := evt.Tx.(type) {
	case tracker.Income:
		id, description = v.ID, v.Description
		amount, profit = v.Amount.String(), v.Profit().String()
	case tracker.Expense:
		id, description = v.ID, v.Description
		amount, source = v.Amount.String(), v.Source
	default:
		return fmt.Errorf("unsupported transaction type %q", evt.Tx.What())
	}

	dbTx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer dbTx.Rollback()

	now := time.Now().Unix()
	if _, err := dbTx.Exec(`INSERT INTO transactions_log
		(timestamp, tx_id, tx_type, tx_date, description, amount, profit, source_fund, total_balance)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		now, id, string(evt.Tx.What()), evt.Tx.When().String(),
		description, amount, profit, source, evt.Total.String(),
	); err != nil {
		return err
	}
	for _, f := range evt.Funds {
		if _, err := dbTx.Exec(`INSERT INTO balance_history
			(timestamp, fund_id, name, balance, inflow, outflow)
			VALUES (?,?,?,?,?,?)`,
			now, f.ID, f.Name, f.Balance.String(), f.Inflow.String(), f.Outflow.String(),
		); err != nil {
			return err
		}
	}
	return dbTx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}

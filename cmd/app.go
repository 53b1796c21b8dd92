// Package cmd implements the CLI application to manage the ledger.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	tracker "github.com/yuppyjoe/Finance-tracker"
	"github.com/yuppyjoe/Finance-tracker/recorder"
	"github.com/yuppyjoe/Finance-tracker/renderer"
)

// Commands lists every subcommand of the ft command. A main package registers
// them all on a subcommands.Commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&incomeCmd{},
	&expenseCmd{},
	&txCmd{},
	&summaryCmd{},
	&fundCmd{},
	&distributionCmd{},
	&taxCmd{},
	&budgetCmd{},
	&exportCmd{},
	&importCmd{},
	&queryCmd{},
	&topicCmd{},
	&assistCmd{},
}

// Known reports whether name is one of the builtin subcommands.
func Known(name string) bool {
	if name == "help" {
		return true
	}
	for _, c := range Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	storageFile  = flag.String("storage", "", "Path to the snapshot file. Overrides the config file and "+EnvStorage+".")
	historyFile  = flag.String("history", "", "Path to the history database. Overrides the config file and "+EnvHistory+".")
	currencyCode = flag.String("currency", "", "Currency code for newly typed amounts. Overrides the config file and "+EnvCurrency+".")

	// Verbose enables chatty logging, for debugging.
	Verbose = flag.Bool("v", false, "enable verbose logging")
)

// appConfig resolves the effective configuration: the config file, then the
// FT_* variables, then the command line flags.
func appConfig() (Config, error) {
	cfg, err := LoadConfig(ConfigPath())
	if err != nil {
		return cfg, err
	}
	if *storageFile != "" {
		cfg.Storage = *storageFile
	}
	if *historyFile != "" {
		cfg.History = *historyFile
	}
	if *currencyCode != "" {
		cfg.Currency = *currencyCode
	}
	return cfg, nil
}

// DecodeSnapshot loads the snapshot from the configured storage path. A
// missing or unusable file yields the seeded defaults: the builtin starter
// funds, or the config seeds when the file defines some.
func DecodeSnapshot() (*tracker.Snapshot, error) {
	cfg, err := appConfig()
	if err != nil {
		return nil, err
	}
	if len(cfg.Seeds) > 0 {
		if _, err := os.Stat(cfg.Storage); os.IsNotExist(err) {
			log.Printf("no snapshot in %q, seeding %d funds from the config", cfg.Storage, len(cfg.Seeds))
			s, err := seededState(cfg.Seeds)
			if err != nil {
				return nil, fmt.Errorf("seeding from config: %w", err)
			}
			return &tracker.Snapshot{State: s}, nil
		}
	}
	return tracker.LoadSnapshot(cfg.Storage)
}

// seededState builds the first state from the config seeds, through the
// regular operations so the usual checks apply: unique names, a single tax
// fund, shares summing to 100.
func seededState(seeds []Seed) (*tracker.State, error) {
	s := tracker.NewState()
	var d tracker.Distribution
	for _, seed := range seeds {
		next, fund, err := s.CreateFund(tracker.Fund{Name: seed.Name, Description: seed.Description, TaxFund: seed.Tax})
		if err != nil {
			return nil, fmt.Errorf("fund %q: %w", seed.Name, err)
		}
		s = next
		if seed.Percent > 0 {
			d = append(d, tracker.Share{FundID: fund.ID, Percent: tracker.Percent(seed.Percent)})
		}
	}
	if len(d) > 0 {
		next, err := s.SetDistribution(d)
		if err != nil {
			return nil, err
		}
		s = next
	}
	return s, nil
}

// SaveSnapshot writes the snapshot back to the configured storage path.
func SaveSnapshot(snap *tracker.Snapshot) error {
	cfg, err := appConfig()
	if err != nil {
		return err
	}
	return tracker.SaveSnapshot(cfg.Storage, snap)
}

// Currency returns the currency code to stamp on newly typed amounts.
func Currency() string {
	cfg, err := appConfig()
	if err != nil {
		return ""
	}
	return cfg.Currency
}

// handleTransaction loads the snapshot, builds a transaction against the
// current state, submits it and saves the result. The build step receives the
// state so it can resolve fund references by name.
func handleTransaction(build func(s *tracker.State) (tracker.Transaction, error)) subcommands.ExitStatus {
	snap, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	tx, err := build(snap.State)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	next, recorded, err := snap.State.Submit(tx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	snap.State = next
	if err := SaveSnapshot(snap); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	journal(recorded, next)
	fmt.Println(renderer.Transaction(recorded))
	return subcommands.ExitSuccess
}

// journal appends the applied transaction and the balances it left behind to
// the history database. The snapshot stays the source of truth: journaling
// failures are logged, they never undo a recorded transaction.
func journal(tx tracker.Transaction, s *tracker.State) {
	rec := openRecorder()
	defer rec.Close()
	if err := rec.RecordTransaction(recorder.NewTransactionEvent(tx, s)); err != nil {
		log.Printf("could not journal the transaction: %v", err)
	}
}

// openRecorder returns the configured history recorder, a no-op one when no
// history database is configured.
func openRecorder() recorder.Recorder {
	cfg, err := appConfig()
	if err != nil || cfg.History == "" {
		return recorder.NewNoopRecorder()
	}
	rec, err := recorder.NewSQLiteRecorder(cfg.History)
	if err != nil {
		log.Printf("history database %q is not available: %v", cfg.History, err)
		return recorder.NewNoopRecorder()
	}
	return rec
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	tracker "github.com/yuppyjoe/Finance-tracker"
	"github.com/yuppyjoe/Finance-tracker/renderer"
)

type txCmd struct {
	period string
	start  string
	date   string
	fund   string
	head   int
	tail   int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the recorded transactions" }
func (*txCmd) Usage() string {
	return `ft tx [-p <period> | -s <start_date>] [-d <end_date>] [-f <fund>] [-head <n>] [-tail <n>]

  Lists transactions in the order they were recorded, with options for
  filtering and limiting the output.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.period, "p", "", "Predefined period (daily, weekly, monthly, quarterly, yearly).")
	f.StringVar(&p.start, "s", "", "Start date of a custom range; overrides -p.")
	f.StringVar(&p.date, "d", "", "End date of the range, today when omitted.")
	f.StringVar(&p.fund, "f", "", "Only expenses drawn from this fund, by name or id.")
	f.IntVar(&p.head, "head", 0, "Keep only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Keep only the last N transactions.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail cannot be combined.")
		return subcommands.ExitUsageError
	}

	snap, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	accept, err := p.filter(snap.State)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	var transactions []tracker.Transaction
	for _, tx := range snap.State.Transactions(accept) {
		transactions = append(transactions, tx)
	}
	if p.head > 0 && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}
	if p.tail > 0 && len(transactions) > p.tail {
		transactions = transactions[len(transactions)-p.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(transactions, snap.State.FundsByID()))
	return subcommands.ExitSuccess
}

// filter translates the range and fund flags into a transaction filter. No
// range flag at all means the whole ledger.
func (p *txCmd) filter(s *tracker.State) (tracker.Filter, error) {
	accept := tracker.Filter(tracker.AcceptAll)
	if p.start != "" || p.date != "" || p.period != "" {
		r, err := p.rangeOf()
		if err != nil {
			return nil, err
		}
		accept = tracker.InRange(r)
	}
	if p.fund != "" {
		fund, ok := s.FindFund(p.fund)
		if !ok {
			return nil, fmt.Errorf("%w: %q", tracker.ErrFundNotFound, p.fund)
		}
		accept = tracker.And(accept, tracker.ByFund(fund.ID))
	}
	return accept, nil
}

// rangeOf resolves the range flags: an explicit start..end range when -s is
// given, otherwise the -p period window ending on -d, today by default.
func (p *txCmd) rangeOf() (tracker.Range, error) {
	end := tracker.Today()
	if p.date != "" {
		var err error
		if end, err = tracker.ParseDate(p.date); err != nil {
			return tracker.Range{}, fmt.Errorf("end date: %w", err)
		}
	}
	if p.start != "" {
		start, err := tracker.ParseDate(p.start)
		if err != nil {
			return tracker.Range{}, fmt.Errorf("start date: %w", err)
		}
		return tracker.NewRange(start, end), nil
	}
	period, err := tracker.ParsePeriod(p.period)
	if err != nil {
		return tracker.Range{}, err
	}
	return period.Range(end), nil
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	tracker "github.com/yuppyjoe/Finance-tracker"
)

type expenseCmd struct {
	date   string
	amount string
	source string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record money spent from a fund" }
func (*expenseCmd) Usage() string {
	return `ft expense -a <amount> -s <fund> [-d <date>] [description]

  Records an expense drawn from a single fund. The fund's balance must cover
  the amount: an expense never overdraws a fund.

Usage Examples:
$ ft expense -d 2025-03-10 -a 30 -s Operating "hosting"
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Amount spent.")
	f.StringVar(&c.source, "s", "", "Fund the expense draws from, by name or id.")
	f.StringVar(&c.date, "d", "0d", "Accounting date. See the dates topic for supported formats.")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" || c.source == "" {
		fmt.Fprintln(os.Stderr, "Error: the -a and -s flags are both required.")
		return subcommands.ExitUsageError
	}
	day, err := tracker.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := tracker.ParseMoney(c.amount, Currency())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	description := strings.Join(f.Args(), " ")

	return handleTransaction(func(s *tracker.State) (tracker.Transaction, error) {
		fund, ok := s.FindFund(c.source)
		if !ok {
			return nil, fmt.Errorf("%w: %q", tracker.ErrFundNotFound, c.source)
		}
		return tracker.NewExpense(day, description, amount, fund.ID), nil
	})
}

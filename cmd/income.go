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

type incomeCmd struct {
	date   string
	amount string
	cost   string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record money earned and distribute its profit" }
func (*incomeCmd) Usage() string {
	return `ft income -a <amount> [-c <cost>] [-d <date>] [description]

  Records an income. The profit, what is left of the amount after the cost of
  production, is split across the funds according to the distribution.

Usage Examples:
$ ft income -d 2025-03-03 -a 1000 -c 400 "retainer for march"
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Amount earned.")
	f.StringVar(&c.cost, "c", "", "Cost of production, if any.")
	f.StringVar(&c.date, "d", "0d", "Accounting date. See the dates topic for supported formats.")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: the -a flag is required.")
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
	var cost tracker.Money
	if c.cost != "" {
		cost, err = tracker.ParseMoney(c.cost, Currency())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing cost: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	description := strings.Join(f.Args(), " ")

	return handleTransaction(func(*tracker.State) (tracker.Transaction, error) {
		return tracker.NewIncome(day, description, amount, cost), nil
	})
}

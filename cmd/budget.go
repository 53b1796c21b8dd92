package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"
	tracker "github.com/yuppyjoe/Finance-tracker"
	"github.com/yuppyjoe/Finance-tracker/renderer"
)

// budgetCmd is a container for the budget subcommands.
type budgetCmd struct {
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "manage spending budgets" }
func (*budgetCmd) Usage() string {
	return `ft budget <subcommand> [args]

Commands:
  create - Create a budget watching expenses over a period.
  delete - Delete a budget.
  list   - Report every budget over its current window.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {}
func (c *budgetCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	commander := subcommands.NewCommander(f, "budget")
	commander.Register(&budgetCreateCmd{}, "")
	commander.Register(&budgetDeleteCmd{}, "")
	commander.Register(&budgetListCmd{}, "")
	return commander.Execute(ctx, args...)
}

type budgetCreateCmd struct {
	name   string
	limit  string
	period string
	fund   string
}

func (*budgetCreateCmd) Name() string     { return "create" }
func (*budgetCreateCmd) Synopsis() string { return "create a budget watching expenses over a period" }
func (*budgetCreateCmd) Usage() string {
	return `ft budget create -name <name> -limit <amount> [-period <period>] [-fund <fund>]

  Creates a budget capping spending over a recurring period. Budgets watch
  the ledger, they never block an expense.

Usage Examples:
$ ft budget create -name "hosting" -limit 40 -period monthly -fund Operating
`
}

func (c *budgetCreateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the budget.")
	f.StringVar(&c.limit, "limit", "", "Spending limit per period.")
	f.StringVar(&c.period, "period", "monthly", "Period (daily, weekly, monthly, quarterly, yearly).")
	f.StringVar(&c.fund, "fund", "", "Only watch expenses drawn from this fund, by name or id.")
}

func (c *budgetCreateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.limit == "" {
		fmt.Fprintln(os.Stderr, "Error: the -name and -limit flags are both required.")
		return subcommands.ExitUsageError
	}
	limit, err := tracker.ParseMoney(c.limit, Currency())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing limit: %v\n", err)
		return subcommands.ExitUsageError
	}
	period, err := tracker.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}

	snap, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	var fundID string
	if c.fund != "" {
		fund, ok := snap.State.FindFund(c.fund)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: %v: %q\n", tracker.ErrFundNotFound, c.fund)
			return subcommands.ExitFailure
		}
		fundID = fund.ID
	}
	if _, ok := snap.Budgets.Find(c.name); ok {
		fmt.Fprintf(os.Stderr, "Error: budget %q already exists.\n", c.name)
		return subcommands.ExitFailure
	}

	budget := tracker.NewBudget(c.name, fundID, limit, period)
	if err := budget.Check(snap.State.FundsByID()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	snap.Budgets = append(snap.Budgets, budget)
	if err := SaveSnapshot(snap); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully created budget %q: %s per %s.\n", budget.Name, budget.Limit, budget.Period.Name())
	return subcommands.ExitSuccess
}

type budgetDeleteCmd struct {
	budget string
}

func (*budgetDeleteCmd) Name() string     { return "delete" }
func (*budgetDeleteCmd) Synopsis() string { return "delete a budget" }
func (*budgetDeleteCmd) Usage() string {
	return `ft budget delete -budget <budget>

  Deletes a budget. The expenses it watched stay recorded.
`
}

func (c *budgetDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.budget, "budget", "", "Budget to delete, by name or id.")
}

func (c *budgetDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.budget == "" {
		fmt.Fprintln(os.Stderr, "Error: the -budget flag is required.")
		return subcommands.ExitUsageError
	}

	snap, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	budget, ok := snap.Budgets.Find(c.budget)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no budget named %q.\n", c.budget)
		return subcommands.ExitFailure
	}
	snap.Budgets = slices.DeleteFunc(snap.Budgets, func(b tracker.Budget) bool { return b.ID == budget.ID })
	if err := SaveSnapshot(snap); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully deleted budget %q.\n", budget.Name)
	return subcommands.ExitSuccess
}

type budgetListCmd struct {
	date string
}

func (*budgetListCmd) Name() string     { return "list" }
func (*budgetListCmd) Synopsis() string { return "report every budget over its current window" }
func (*budgetListCmd) Usage() string {
	return `ft budget list [-d <date>]

  Reports every budget over the period window containing the date: the
  limit, what was spent and what is left.
`
}

func (c *budgetListCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Date the windows are computed around. See the dates topic for supported formats.")
}

func (c *budgetListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := tracker.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	snap, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	statuses := snap.Budgets.Statuses(snap.State, on)
	printMarkdown(renderer.BudgetsMarkdown(statuses, snap.State.FundsByID()))
	return subcommands.ExitSuccess
}

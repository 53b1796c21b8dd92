package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/google/subcommands"
	tracker "github.com/yuppyjoe/Finance-tracker"
	"github.com/yuppyjoe/Finance-tracker/renderer"
)

// fundCmd is a container for the fund subcommands.
type fundCmd struct {
}

func (*fundCmd) Name() string     { return "fund" }
func (*fundCmd) Synopsis() string { return "manage the funds" }
func (*fundCmd) Usage() string {
	return `ft fund <subcommand> [args]

Commands:
  create - Create a new fund.
  update - Rename or reconfigure a fund.
  delete - Delete an empty, unreferenced fund.
  list   - List the funds and their balances.
`
}

func (c *fundCmd) SetFlags(f *flag.FlagSet) {}
func (c *fundCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	commander := subcommands.NewCommander(f, "fund")
	commander.Register(&fundCreateCmd{}, "")
	commander.Register(&fundUpdateCmd{}, "")
	commander.Register(&fundDeleteCmd{}, "")
	commander.Register(&fundListCmd{}, "")
	return commander.Execute(ctx, args...)
}

type fundCreateCmd struct {
	name        string
	description string
	color       string
	tax         bool
}

func (*fundCreateCmd) Name() string     { return "create" }
func (*fundCreateCmd) Synopsis() string { return "create a new fund" }
func (*fundCreateCmd) Usage() string {
	return `ft fund create -name <name> [-description <text>] [-color <tag>] [-tax]

  Creates a fund. It starts empty: money arrives through the distribution
  (give it a share) or stays at zero until then.
`
}

func (c *fundCreateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the fund.")
	f.StringVar(&c.description, "description", "", "What the fund is for.")
	f.StringVar(&c.color, "color", "", "Optional display tag.")
	f.BoolVar(&c.tax, "tax", false, "Mark this fund as the tax fund.")
}

func (c *fundCreateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: the -name flag is required.")
		return subcommands.ExitUsageError
	}

	snap, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	next, fund, err := snap.State.CreateFund(tracker.Fund{
		Name:        c.name,
		Description: c.description,
		Color:       c.color,
		TaxFund:     c.tax,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	snap.State = next
	if err := SaveSnapshot(snap); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully created fund %q (%s).\n", fund.Name, fund.ID)
	return subcommands.ExitSuccess
}

type fundUpdateCmd struct {
	fund        string
	name        string
	description string
	color       string
	tax         string
}

func (*fundUpdateCmd) Name() string     { return "update" }
func (*fundUpdateCmd) Synopsis() string { return "rename or reconfigure a fund" }
func (*fundUpdateCmd) Usage() string {
	return `ft fund update -fund <fund> [-name <name>] [-description <text>] [-color <tag>] [-tax <true|false>]

  Updates a fund. Only the provided flags change, balances and history are
  kept untouched.
`
}

func (c *fundUpdateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fund, "fund", "", "Fund to update, by name or id.")
	f.StringVar(&c.name, "name", "", "New name.")
	f.StringVar(&c.description, "description", "", "New description.")
	f.StringVar(&c.color, "color", "", "New display tag.")
	f.StringVar(&c.tax, "tax", "", "Set or clear the tax fund flag (true or false).")
}

func (c *fundUpdateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.fund == "" {
		fmt.Fprintln(os.Stderr, "Error: the -fund flag is required.")
		return subcommands.ExitUsageError
	}

	snap, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fund, ok := snap.State.FindFund(c.fund)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %v: %q\n", tracker.ErrFundNotFound, c.fund)
		return subcommands.ExitFailure
	}

	if c.name != "" {
		fund.Name = c.name
	}
	if c.description != "" {
		fund.Description = c.description
	}
	if c.color != "" {
		fund.Color = c.color
	}
	if c.tax != "" {
		tax, err := strconv.ParseBool(c.tax)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -tax wants true or false, got %q.\n", c.tax)
			return subcommands.ExitUsageError
		}
		fund.TaxFund = tax
	}

	next, fund, err := snap.State.UpdateFund(fund)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	snap.State = next
	if err := SaveSnapshot(snap); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully updated fund %q.\n", fund.Name)
	return subcommands.ExitSuccess
}

type fundDeleteCmd struct {
	fund string
}

func (*fundDeleteCmd) Name() string     { return "delete" }
func (*fundDeleteCmd) Synopsis() string { return "delete an empty, unreferenced fund" }
func (*fundDeleteCmd) Usage() string {
	return `ft fund delete -fund <fund>

  Deletes a fund. The fund must hold exactly zero, no recorded expense may
  draw from it, and it must hold no share of the distribution.
`
}

func (c *fundDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fund, "fund", "", "Fund to delete, by name or id.")
}

func (c *fundDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.fund == "" {
		fmt.Fprintln(os.Stderr, "Error: the -fund flag is required.")
		return subcommands.ExitUsageError
	}

	snap, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fund, ok := snap.State.FindFund(c.fund)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %v: %q\n", tracker.ErrFundNotFound, c.fund)
		return subcommands.ExitFailure
	}

	next, err := snap.State.DeleteFund(fund.ID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	snap.State = next
	if err := SaveSnapshot(snap); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully deleted fund %q.\n", fund.Name)
	return subcommands.ExitSuccess
}

type fundListCmd struct{}

func (*fundListCmd) Name() string     { return "list" }
func (*fundListCmd) Synopsis() string { return "list the funds and their balances" }
func (*fundListCmd) Usage() string {
	return `ft fund list

  Lists every fund with its balance and lifetime flows.
`
}

func (c *fundListCmd) SetFlags(f *flag.FlagSet) {}

func (c *fundListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.FundsMarkdown(slices.Collect(snap.State.AllFunds())))
	return subcommands.ExitSuccess
}

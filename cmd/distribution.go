package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	tracker "github.com/yuppyjoe/Finance-tracker"
	"github.com/yuppyjoe/Finance-tracker/renderer"
)

// distributionCmd is a container for the distribution subcommands.
type distributionCmd struct {
}

func (*distributionCmd) Name() string     { return "distribution" }
func (*distributionCmd) Synopsis() string { return "manage the profit distribution" }
func (*distributionCmd) Usage() string {
	return `ft distribution <subcommand> [args]

Commands:
  set  - Replace the distribution with new shares.
  show - Show the active distribution.
`
}

func (c *distributionCmd) SetFlags(f *flag.FlagSet) {}
func (c *distributionCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	commander := subcommands.NewCommander(f, "distribution")
	commander.Register(&distributionSetCmd{}, "")
	commander.Register(&distributionShowCmd{}, "")
	return commander.Execute(ctx, args...)
}

type distributionSetCmd struct{}

func (*distributionSetCmd) Name() string     { return "set" }
func (*distributionSetCmd) Synopsis() string { return "replace the distribution with new shares" }
func (*distributionSetCmd) Usage() string {
	return `ft distribution set <fund>=<percent> [<fund>=<percent> ...]

  Replaces the profit distribution wholesale. Shares are allocated in the
  given order and must sum to 100; the last share absorbs the rounding
  remainder of every allocation.

  The tax fund cannot be given a share here: its share belongs to the tax
  toggle. When the toggle is on, the new shares are rescaled to keep the tax
  share in place.

Usage Examples:
$ ft distribution set Operating=50 "Owner Pay"=30 Savings=20
`
}

func (c *distributionSetCmd) SetFlags(f *flag.FlagSet) {}

func (c *distributionSetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one <fund>=<percent> share is required.")
		return subcommands.ExitUsageError
	}

	snap, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	taxFund, taxErr := snap.State.FundsByID().TaxFund()

	var d tracker.Distribution
	for _, arg := range f.Args() {
		ref, pct, found := strings.Cut(arg, "=")
		if !found {
			fmt.Fprintf(os.Stderr, "Error: share %q is not of the form <fund>=<percent>.\n", arg)
			return subcommands.ExitUsageError
		}
		fund, ok := snap.State.FindFund(ref)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: %v: %q\n", tracker.ErrFundNotFound, ref)
			return subcommands.ExitFailure
		}
		if taxErr == nil && fund.ID == taxFund.ID {
			fmt.Fprintf(os.Stderr, "Error: fund %q is the tax fund, its share is managed by the tax toggle.\n", fund.Name)
			return subcommands.ExitFailure
		}
		percent, err := tracker.ParsePercent(pct)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		d = append(d, tracker.Share{FundID: fund.ID, Percent: percent})
	}

	// When the toggle is on, peel the tax share off, replace the shares, and
	// put the tax share back on top of the new ones.
	state := snap.State
	taxWasOn := state.TaxEnabled()
	if taxWasOn {
		state, err = state.SetTaxEnabled(false)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
	}
	state, err = state.SetDistribution(d)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if taxWasOn {
		state, err = state.SetTaxEnabled(true)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
	}

	snap.State = state
	if err := SaveSnapshot(snap); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DistributionMarkdown(state.Distribution(), state.FundsByID()))
	return subcommands.ExitSuccess
}

type distributionShowCmd struct{}

func (*distributionShowCmd) Name() string     { return "show" }
func (*distributionShowCmd) Synopsis() string { return "show the active distribution" }
func (*distributionShowCmd) Usage() string {
	return `ft distribution show

  Shows the active profit distribution, in allocation order.
`
}

func (c *distributionShowCmd) SetFlags(f *flag.FlagSet) {}

func (c *distributionShowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	md := renderer.DistributionMarkdown(snap.State.Distribution(), snap.State.FundsByID())
	if snap.State.TaxEnabled() {
		md += "\nTax withholding is on.\n"
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

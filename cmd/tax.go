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

// taxCmd is a container for the tax toggle subcommands.
type taxCmd struct {
}

func (*taxCmd) Name() string     { return "tax" }
func (*taxCmd) Synopsis() string { return "manage the tax withholding toggle" }
func (*taxCmd) Usage() string {
	return `ft tax <subcommand>

Commands:
  on     - Enable tax withholding on future profits.
  off    - Disable tax withholding.
  status - Show the toggle and the resulting distribution.
`
}

func (c *taxCmd) SetFlags(f *flag.FlagSet) {}
func (c *taxCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	commander := subcommands.NewCommander(f, "tax")
	commander.Register(&taxOnCmd{}, "")
	commander.Register(&taxOffCmd{}, "")
	commander.Register(&taxStatusCmd{}, "")
	return commander.Execute(ctx, args...)
}

// setTax flips the toggle and reports the resulting distribution. Flipping to
// the position already in force changes nothing.
func setTax(enabled bool) subcommands.ExitStatus {
	snap, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	next, err := snap.State.SetTaxEnabled(enabled)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	snap.State = next
	if err := SaveSnapshot(snap); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if enabled {
		fmt.Printf("Tax withholding is on: %s of every profit is set aside.\n", tracker.TaxPercent)
	} else {
		fmt.Println("Tax withholding is off.")
	}
	printMarkdown(renderer.DistributionMarkdown(next.Distribution(), next.FundsByID()))
	return subcommands.ExitSuccess
}

type taxOnCmd struct{}

func (*taxOnCmd) Name() string     { return "on" }
func (*taxOnCmd) Synopsis() string { return "enable tax withholding on future profits" }
func (*taxOnCmd) Usage() string {
	return `ft tax on

  Enables tax withholding: existing shares are rescaled and the tax fund
  receives a share of every future profit, appended last.
`
}
func (c *taxOnCmd) SetFlags(f *flag.FlagSet) {}
func (c *taxOnCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return setTax(true)
}

type taxOffCmd struct{}

func (*taxOffCmd) Name() string     { return "off" }
func (*taxOffCmd) Synopsis() string { return "disable tax withholding" }
func (*taxOffCmd) Usage() string {
	return `ft tax off

  Disables tax withholding: the tax share is removed and the remaining
  shares are rescaled back to 100. Money already in the tax fund stays.
`
}
func (c *taxOffCmd) SetFlags(f *flag.FlagSet) {}
func (c *taxOffCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return setTax(false)
}

type taxStatusCmd struct{}

func (*taxStatusCmd) Name() string     { return "status" }
func (*taxStatusCmd) Synopsis() string { return "show the toggle and the resulting distribution" }
func (*taxStatusCmd) Usage() string {
	return `ft tax status

  Shows whether tax withholding is on and the distribution in force.
`
}
func (c *taxStatusCmd) SetFlags(f *flag.FlagSet) {}
func (c *taxStatusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if snap.State.TaxEnabled() {
		fmt.Printf("Tax withholding is on: %s of every profit is set aside.\n", tracker.TaxPercent)
	} else {
		fmt.Println("Tax withholding is off.")
	}
	printMarkdown(renderer.DistributionMarkdown(snap.State.Distribution(), snap.State.FundsByID()))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	tracker "github.com/yuppyjoe/Finance-tracker"
)

type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the snapshot with a previously exported one" }
func (*importCmd) Usage() string {
	return `ft import [-i <file>]

  Replaces the current snapshot with one previously written by 'ft export'.
  The imported document goes through the same version and coherence checks
  as a loaded snapshot; unlike loading, a failed check refuses the import
  and keeps the current data.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "File to read from. Defaults to stdin.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r := os.Stdin
	if c.input != "" {
		file, err := os.Open(c.input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.input, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	snap, err := tracker.DecodeSnapshot(r)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := snap.State.Check(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: the imported snapshot is not coherent: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveSnapshot(snap); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	var transactions int
	for range snap.State.Transactions(tracker.AcceptAll) {
		transactions++
	}
	fmt.Printf("Successfully imported %d fund(s) and %d transaction(s).\n",
		len(snap.State.FundsByID()), transactions)
	return subcommands.ExitSuccess
}

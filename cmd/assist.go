package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	tracker "github.com/yuppyjoe/Finance-tracker"
	"github.com/yuppyjoe/Finance-tracker/agent"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `ft assist [initial question]

  Starts an interactive session with the AI assistant. A bookkeeper expert
  reads the ledger and answers questions about the funds, the transactions,
  the distribution and the budgets.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating the Gemini client:", err)
		return subcommands.ExitFailure
	}

	bookkeeper := agent.NewBookkeeper(func() (*tracker.State, tracker.Budgets, error) {
		snap, err := DecodeSnapshot()
		if err != nil {
			return nil, nil, err
		}
		return snap.State, snap.Budgets, nil
	})
	a := agent.New(os.Stdout, os.Stdin, bookkeeper)

	if err := a.Run(ctx, client, strings.Join(f.Args(), " ")); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

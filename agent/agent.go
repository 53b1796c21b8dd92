// Package agent runs the interactive assistant: a facilitator model that can
// call on experts, and experts that can call on function libraries reading
// the ledger.
package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent owns the chat session: it shuttles lines between the user and the
// facilitator, which delegates to the experts.
type Agent struct {
	w           io.Writer
	r           *bufio.Reader
	Facilitator *Expert
	Experts     []*Expert
}

// New returns an Agent answering on w and reading the user from r, usually
// os.Stdout and os.Stdin.
func New(w io.Writer, r io.Reader, experts ...*Expert) *Agent {
	return &Agent{
		w:           w,
		r:           bufio.NewReader(r),
		Experts:     experts,
		Facilitator: newFacilitator(experts...),
	}
}

// Start opens the chat sessions, experts first so the facilitator can reach
// them from its very first turn.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return a.Facilitator.Start(ctx, client)
}

const prompt = "assist> "

// Run is the REPL. Questions given as arguments are consumed before the
// reader, so a question typed on the command line gets answered first.
// 'bye' or closing the input ends the session.
func (a *Agent) Run(ctx context.Context, client *genai.Client, queued ...string) error {
	if a.Facilitator.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to ft assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		input, rest, err := a.nextInput(queued)
		queued = rest
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch input {
		case "":
			continue
		case "bye":
			return nil
		}

		answer, err := a.Facilitator.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer.Parts[0].Text)
	}
}

// nextInput pops the next queued question, echoing it after the prompt the
// way a typed one would appear, and otherwise reads a line from the user.
// Inputs come back trimmed.
func (a *Agent) nextInput(queued []string) (input string, rest []string, err error) {
	if len(queued) > 0 {
		input = strings.TrimSpace(queued[0])
		if input != "" {
			fmt.Fprintln(a.w, input)
		}
		return input, queued[1:], nil
	}
	line, err := a.r.ReadString('\n')
	if err != nil {
		return "", nil, err
	}
	return strings.TrimSpace(line), nil, nil
}

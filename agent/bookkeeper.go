package agent

import (
	"context"
	"fmt"

	tracker "github.com/yuppyjoe/Finance-tracker"
	"github.com/yuppyjoe/Finance-tracker/docs"
	"github.com/yuppyjoe/Finance-tracker/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Loader reads the current snapshot for the bookkeeper's tools. Tools load on
// every call so a session always sees the latest recorded state.
type Loader func() (*tracker.State, tracker.Budgets, error)

// newFacilitator wires the experts' declarations into the coordinating
// expert that fronts the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You run the conversation and own the final answer to the user.

			The Tools describe the experts and what they can be asked. Question them
			freely; each one keeps the context of your previous questions.

			The user runs a one-person business and tracks it in this ledger: incomes with their
			cost of production, expenses drawn from named funds, a profit distribution, budgets
			and a tax toggle.

			Split the request into questions for the right experts and assemble their
			answers into the best response.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewBookkeeper returns the expert in charge of reading the user's ledger.
// Its function library renders the funds, transactions, distribution, budgets
// and summary from the snapshot behind load.
func NewBookkeeper(load Loader) *Expert {
	lib := []Function{
		fundsTool(load),
		transactionsTool(load),
		distributionTool(load),
		budgetsTool(load),
		summaryTool(load),
	}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. It reads the user's ledger and can report
		the funds and their balances, the recorded transactions, the profit
		distribution, the budgets and a full summary on any date.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the bookkeeper in charge of the user's ledger.
				You know how to use the Tools to extract relevant information about the funds,
				the transactions, the profit distribution and the budgets.
				Questions come from other experts and may be loosely phrased; answer what
				they meant, not just what they wrote.
				The tools return markdown tables, quote them when they answer the question.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func pairs a declaration with the Go function answering it.
type Func struct {
	// Decl is what the model sees.
	Decl *genai.FunctionDeclaration
	// Func answers the model's call.
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// dateSchema describes an optional date argument.
func dateSchema(description string) *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeString,
		Description: description + ` Today is the default. Accepted formats,
		from the dates documentation:

		` + must(docs.GetTopic("dates")),
	}
}

func fundsTool(load Loader) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Funds",
			Description: `Funds lists every fund with its current balance and its
			lifetime inflow and outflow, plus the grand total.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the funds and their balances.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s, _, err := load()
			if err != nil {
				return errorResponse(id, "Funds", err)
			}
			var funds []tracker.Fund
			for f := range s.AllFunds() {
				funds = append(funds, f)
			}
			return outputResponse(id, "Funds", renderer.FundsMarkdown(funds))
		},
	}
}

func transactionsTool(load Loader) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Transactions",
			Description: `Transactions lists the recorded incomes and expenses between
			two dates, in the order they were recorded.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"from": dateSchema("The first date of the range; the oldest transaction is the default."),
					"to":   dateSchema("The last date of the range."),
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the transactions in the range.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s, _, err := load()
			if err != nil {
				return errorResponse(id, "Transactions", err)
			}
			oldest := s.OldestTransactionDate()
			if oldest.IsZero() {
				oldest = tracker.Today()
			}
			from, err := parseDateArg(args, "from", oldest)
			if err != nil {
				return errorResponse(id, "Transactions", err)
			}
			to, err := parseDateArg(args, "to", tracker.Today())
			if err != nil {
				return errorResponse(id, "Transactions", err)
			}
			var txs []tracker.Transaction
			for _, tx := range s.Transactions(tracker.InRange(tracker.NewRange(from, to))) {
				txs = append(txs, tx)
			}
			return outputResponse(id, "Transactions", renderer.TransactionsMarkdown(txs, s.FundsByID()))
		},
	}
}

func distributionTool(load Loader) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Distribution",
			Description: `Distribution shows how each new profit is split across the funds,
			in allocation order, and whether tax withholding is on.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the profit distribution.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s, _, err := load()
			if err != nil {
				return errorResponse(id, "Distribution", err)
			}
			out := renderer.DistributionMarkdown(s.Distribution(), s.FundsByID())
			if s.TaxEnabled() {
				out += "\nTax withholding is on.\n"
			}
			return outputResponse(id, "Distribution", out)
		},
	}
}

func budgetsTool(load Loader) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Budgets",
			Description: `Budgets reports every budget over the period window containing
			the given date: the limit, what was spent and what is left.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": dateSchema("The date on which to report the budgets."),
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the budget statuses.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s, budgets, err := load()
			if err != nil {
				return errorResponse(id, "Budgets", err)
			}
			on, err := parseDateArg(args, "date", tracker.Today())
			if err != nil {
				return errorResponse(id, "Budgets", err)
			}
			return outputResponse(id, "Budgets", renderer.BudgetsMarkdown(budgets.Statuses(s, on), s.FundsByID()))
		},
	}
}

func summaryTool(load Loader) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary gives the full picture on a date: every fund balance, the
			distribution, and the activity for the day, week, month, quarter, year and
			since inception.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": dateSchema("The date on which to compute the summary."),
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown summary of the whole ledger.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s, _, err := load()
			if err != nil {
				return errorResponse(id, "Summary", err)
			}
			on, err := parseDateArg(args, "date", tracker.Today())
			if err != nil {
				return errorResponse(id, "Summary", err)
			}
			return outputResponse(id, "Summary", renderer.SummaryMarkdown(tracker.NewSummary(s, on)))
		},
	}
}

// parseDateArg reads an optional date argument, falling back when absent.
func parseDateArg(args map[string]any, key string, fallback tracker.Date) (tracker.Date, error) {
	idate, ok := args[key]
	if !ok {
		return fallback, nil
	}
	sdate, isString := idate.(string)
	if !isString {
		return fallback, fmt.Errorf("argument %q is not a string as expected but %T", key, idate)
	}
	date, err := tracker.ParseDate(sdate)
	if err != nil {
		return fallback, fmt.Errorf("argument %q must be a valid date, got %q. Below is the doc about the date format\n\n%s", key, sdate, must(docs.GetTopic("dates")))
	}
	return date, nil
}

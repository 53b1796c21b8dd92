package cmd

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/yuppyjoe/Finance-tracker/docs"
)

// Complete handles shell completion for the ft command. When the shell is
// asking for completions it prints them and exits; otherwise it returns
// immediately and the normal command line takes over. It must run before
// flag parsing.
func Complete() {
	date := predict.Something
	amount := predict.Something
	periods := predict.Set{"daily", "weekly", "monthly", "quarterly", "yearly"}

	cmd := &complete.Command{
		Flags: map[string]complete.Predictor{
			"storage":  predict.Files("*.json"),
			"history":  predict.Files("*.db"),
			"currency": predict.Set{"EUR", "USD", "GBP", "CHF"},
			"v":        predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"income": {Flags: map[string]complete.Predictor{
				"a": amount, "c": amount, "d": date,
			}},
			"expense": {Flags: map[string]complete.Predictor{
				"a": amount, "s": predictFunds, "d": date,
			}},
			"tx": {Flags: map[string]complete.Predictor{
				"p": periods, "s": date, "d": date, "f": predictFunds,
				"head": predict.Something, "tail": predict.Something,
			}},
			"summary": {Flags: map[string]complete.Predictor{"d": date}},
			"fund": {Sub: map[string]*complete.Command{
				"create": {Flags: map[string]complete.Predictor{
					"name": predict.Something, "description": predict.Something,
					"color": predict.Something, "tax": predict.Nothing,
				}},
				"update": {Flags: map[string]complete.Predictor{
					"fund": predictFunds, "name": predict.Something,
					"description": predict.Something, "color": predict.Something,
					"tax": predict.Set{"true", "false"},
				}},
				"delete": {Flags: map[string]complete.Predictor{"fund": predictFunds}},
				"list":   {},
			}},
			"distribution": {Sub: map[string]*complete.Command{
				"set":  {Args: predictFunds},
				"show": {},
			}},
			"tax": {Sub: map[string]*complete.Command{
				"on": {}, "off": {}, "status": {},
			}},
			"budget": {Sub: map[string]*complete.Command{
				"create": {Flags: map[string]complete.Predictor{
					"name": predict.Something, "limit": amount,
					"period": periods, "fund": predictFunds,
				}},
				"delete": {Flags: map[string]complete.Predictor{"budget": predictBudgets}},
				"list":   {Flags: map[string]complete.Predictor{"d": date}},
			}},
			"export": {Flags: map[string]complete.Predictor{"o": predict.Files("*.json")}},
			"import": {Flags: map[string]complete.Predictor{"i": predict.Files("*.json")}},
			"query":  {},
			"topic":  {Args: predictTopics},
			"assist": {},
		},
	}
	cmd.Complete("ft")
}

// predictFunds offers the fund names from the current snapshot.
var predictFunds complete.PredictFunc = func(prefix string) []string {
	snap, err := DecodeSnapshot()
	if err != nil {
		return nil
	}
	var names []string
	for f := range snap.State.AllFunds() {
		names = append(names, f.Name)
	}
	return names
}

// predictBudgets offers the budget names from the current snapshot.
var predictBudgets complete.PredictFunc = func(prefix string) []string {
	snap, err := DecodeSnapshot()
	if err != nil {
		return nil
	}
	var names []string
	for _, b := range snap.Budgets {
		names = append(names, b.Name)
	}
	return names
}

// predictTopics offers the documentation topic names.
var predictTopics complete.PredictFunc = func(prefix string) []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return topics
}

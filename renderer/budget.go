package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	tracker "github.com/yuppyjoe/Finance-tracker"
)

// BudgetsMarkdown renders the budget statuses as a markdown table.
func BudgetsMarkdown(statuses []tracker.BudgetStatus, funds tracker.Funds) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Budgets")
	if len(statuses) == 0 {
		doc.PlainText("No budgets are defined.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Budget", "Window", "Watching", "Limit", "Spent", "Left"},
	}
	over := 0
	for _, st := range statuses {
		name := st.Budget.Name
		if st.Over() {
			name = md.Bold(name)
			over++
		}
		watching := "all funds"
		if st.Budget.FundID != "" {
			watching = fundName(funds, st.Budget.FundID)
		}
		table.Rows = append(table.Rows, []string{
			name,
			st.Window.Identifier(),
			watching,
			st.Budget.Limit.String(),
			st.Spent.String(),
			st.Remaining.SignedString(),
		})
	}
	doc.Table(table)

	if over > 0 {
		doc.PlainText(fmt.Sprintf("%d budget(s) over the limit.", over))
	}
	return doc.String()
}

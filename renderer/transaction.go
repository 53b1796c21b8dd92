package renderer

import (
	"fmt"
	"io"
	"strings"

	tracker "github.com/yuppyjoe/Finance-tracker"
)

// Transaction renders a transaction to a one line string.
func Transaction(tx tracker.Transaction) string {
	switch v := tx.(type) {
	case tracker.Income:
		if v.Cost.IsZero() {
			return fmt.Sprintf("Earned %s on %s", v.Amount, v.Date)
		}
		return fmt.Sprintf("Earned %s on %s (cost %s, profit %s)", v.Amount, v.Date, v.Cost, v.Profit())
	case tracker.Expense:
		return fmt.Sprintf("Spent %s from %s on %s", v.Amount, v.Source, v.Date)
	default:
		return string(tx.What())
	}
}

// TransactionsMarkdown renders transactions as a markdown table, in the order
// given. Fund references are resolved against funds for display.
func TransactionsMarkdown(txs []tracker.Transaction, funds tracker.Funds) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transactions\n\n")

	rows := 0
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "| Date | Type | Description | Amount | Details |\n")
		fmt.Fprintf(w, "|:---|:---|:---|---:|:---|\n")
		for _, tx := range txs {
			switch v := tx.(type) {
			case tracker.Income:
				details := fmt.Sprintf("profit %s", v.Profit())
				if !v.Cost.IsZero() {
					details = fmt.Sprintf("cost %s, profit %s", v.Cost, v.Profit())
				}
				fmt.Fprintf(w, "| %s | income | %s | %s | %s |\n", v.Date, v.Description, v.Amount, details)
			case tracker.Expense:
				fmt.Fprintf(w, "| %s | expense | %s | %s | from %s |\n",
					v.Date, v.Description, v.Amount, fundName(funds, v.Source))
			}
			rows++
		}
		return rows > 0
	})
	if rows == 0 {
		fmt.Fprintf(&b, "No transactions in range.\n")
	}
	return b.String()
}

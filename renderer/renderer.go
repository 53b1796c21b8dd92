// Package renderer turns ledger data into markdown reports.
//
// Every function returns a markdown string. Printing, paging and terminal
// styling are the caller's concern.
package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	tracker "github.com/yuppyjoe/Finance-tracker"
)

// fundName resolves a fund id to its display name, falling back to the id
// when the fund is gone.
func fundName(funds tracker.Funds, id string) string {
	if f, ok := funds[id]; ok {
		return f.Name
	}
	return id
}

// FundsMarkdown renders the funds and their balances as a markdown table,
// with a grand total row.
func FundsMarkdown(funds []tracker.Fund) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Funds")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Fund", "Balance", "Lifetime In", "Lifetime Out"},
	}
	var total tracker.Money
	for _, f := range funds {
		name := f.Name
		if f.TaxFund {
			name += " (tax)"
		}
		table.Rows = append(table.Rows, []string{
			name,
			f.Balance.String(),
			f.Inflow.String(),
			f.Outflow.String(),
		})
		total = total.Add(f.Balance)
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(total.String()), "", ""})
	doc.Table(table)

	return doc.String()
}

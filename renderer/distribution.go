package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	tracker "github.com/yuppyjoe/Finance-tracker"
)

// DistributionMarkdown renders the profit distribution as a markdown table,
// in allocation order.
func DistributionMarkdown(d tracker.Distribution, funds tracker.Funds) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Profit Distribution")
	if len(d) == 0 {
		doc.PlainText("No distribution is configured: incomes cannot be recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Fund", "Share"},
	}
	for _, share := range d {
		table.Rows = append(table.Rows, []string{fundName(funds, share.FundID), share.Percent.String()})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(d.Sum().String())})
	doc.Table(table)

	return doc.String()
}

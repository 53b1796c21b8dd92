package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	tracker "github.com/yuppyjoe/Finance-tracker"
)

func SummaryMarkdown(s *tracker.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Finances on %s", s.Date))
	doc.PlainText(fmt.Sprintf("Total Balance: %s (lifetime in %s, out %s)",
		s.TotalBalance, s.TotalInflow, s.TotalOutflow))

	doc.H2("Funds")
	funds := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Fund", "Share", "Balance"},
	}
	shares := make(map[string]tracker.Percent, len(s.Distribution))
	for _, share := range s.Distribution {
		shares[share.FundID] = share.Percent
	}
	for _, f := range s.Funds {
		share := ""
		if p, ok := shares[f.ID]; ok {
			share = p.String()
		}
		name := f.Name
		if f.TaxFund {
			name += " (tax)"
		}
		funds.Rows = append(funds.Rows, []string{name, share, f.Balance.String()})
	}
	doc.Table(funds)

	if s.TaxEnabled {
		doc.PlainText(fmt.Sprintf("Tax withholding is on: %s of every profit is set aside.", tracker.TaxPercent))
	} else {
		doc.PlainText("Tax withholding is off.")
	}

	doc.H2("Activity")

	_, week := s.Date.ISOWeek()
	quarter := (s.Date.Month()-1)/3 + 1

	row := func(label string, a tracker.Activity) []string {
		return []string{label, a.Income.String(), a.Cost.String(), a.Profit.String(), a.Expenses.String(), a.Net().SignedString()}
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Period", "Income", "Costs", "Profit", "Expenses", "Net"},
		Rows: [][]string{
			row(fmt.Sprintf("Day %d", s.Date.Day()), s.Daily),
			row(fmt.Sprintf("Week %d", week), s.WTD),
			row(s.Date.Month().String(), s.MTD),
			row(fmt.Sprintf("Q%d", quarter), s.QTD),
			row(fmt.Sprintf("%d", s.Date.Year()), s.YTD),
			row("Inception", s.Inception),
		},
	}
	doc.Table(table)

	return doc.String()
}

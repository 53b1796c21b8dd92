package tracker

// Activity sums the ledger movements over a range of dates: income earned,
// production costs, derived profit and expenses.
type Activity struct {
	Range    Range
	Income   Money
	Cost     Money
	Profit   Money
	Expenses Money
	Count    int // number of transactions in the range
}

// NewActivity computes the activity of the state over the given range.
func NewActivity(s *State, r Range) Activity {
	a := Activity{Range: r}
	for _, tx := range s.Transactions(InRange(r)) {
		a.Count++
		switch v := tx.(type) {
		case Income:
			a.Income = a.Income.Add(v.Amount)
			a.Cost = a.Cost.Add(v.Cost)
			a.Profit = a.Profit.Add(v.Profit())
		case Expense:
			a.Expenses = a.Expenses.Add(v.Amount)
		}
	}
	return a
}

// Net returns the balance change over the range. Allocation conserves the
// profit exactly, so distributed profit minus expenses is the exact total
// movement of the funds.
func (a Activity) Net() Money { return a.Profit.Sub(a.Expenses) }

// Summary provides a comprehensive, at-a-glance overview of the funds and of
// the rules feeding them on a given date.
type Summary struct {
	Date         Date
	Funds        []Fund // sorted by name
	TotalBalance Money
	TotalInflow  Money
	TotalOutflow Money
	Distribution Distribution
	TaxEnabled   bool
	Daily        Activity
	WTD          Activity // Week-to-Date
	MTD          Activity // Month-to-Date
	QTD          Activity // Quarter-to-Date
	YTD          Activity // Year-to-Date
	Inception    Activity
}

// NewSummary calculates the summary of the state on a given date.
func NewSummary(s *State, on Date) *Summary {
	summary := &Summary{
		Date:         on,
		Distribution: s.Distribution(),
		TaxEnabled:   s.TaxEnabled(),
	}
	for fund := range s.AllFunds() {
		summary.Funds = append(summary.Funds, fund)
		summary.TotalBalance = summary.TotalBalance.Add(fund.Balance)
		summary.TotalInflow = summary.TotalInflow.Add(fund.Inflow)
		summary.TotalOutflow = summary.TotalOutflow.Add(fund.Outflow)
	}

	toDate := func(p Period) Activity { return NewActivity(s, NewRange(on.StartOf(p), on)) }
	summary.Daily = NewActivity(s, NewRange(on, on))
	summary.WTD = toDate(Weekly)
	summary.MTD = toDate(Monthly)
	summary.QTD = toDate(Quarterly)
	summary.YTD = toDate(Yearly)

	start := s.OldestTransactionDate()
	if start.IsZero() {
		start = on
	}
	summary.Inception = NewActivity(s, NewRange(start, on))
	return summary
}

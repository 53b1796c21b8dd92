package tracker

// NO is a helper for tests to create money from a const with no currency set.
func NO(v float64) Money { return M(v, "") }

// fundOn is a helper for tests to build a coherent fund: its balance always
// equals inflow minus outflow.
func fundOn(id, name string, inflow, outflow float64) Fund {
	return Fund{
		ID:      id,
		Name:    name,
		Balance: NO(inflow - outflow),
		Inflow:  NO(inflow),
		Outflow: NO(outflow),
	}
}

// stateOn is a helper for tests to assemble a state from funds and a
// distribution without going through the mutators.
func stateOn(dist Distribution, funds ...Fund) *State {
	s := NewState()
	for _, f := range funds {
		s.funds[f.ID] = f
	}
	s.distribution = dist
	return s
}

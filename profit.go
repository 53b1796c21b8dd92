package tracker

import "fmt"

// Profit derives the distributable profit of an income: the amount earned
// minus its cost of production. It refuses the combinations that would yield a
// meaningless result instead of clamping them.
func Profit(amount, cost Money) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("cannot derive profit from a negative income %s", amount)
	}
	if cost.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s", ErrCostNegative, cost)
	}
	if cost.GreaterThan(amount) {
		return Money{}, fmt.Errorf("%w: cost %s on income %s", ErrCostExceedsAmount, cost, amount)
	}
	return amount.Sub(cost), nil
}

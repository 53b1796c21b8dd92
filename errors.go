package tracker

import "errors"

// Domain errors returned by validation and state mutations. Callers match
// them with errors.Is; the wrapping site adds the transaction or fund context.
var (
	// ErrAmountNotPositive rejects any transaction whose amount is zero or negative.
	ErrAmountNotPositive = errors.New("amount must be positive")

	// ErrFutureDate rejects transactions dated after today.
	ErrFutureDate = errors.New("date cannot be in the future")

	// ErrCostNegative rejects an income whose cost of production is negative.
	ErrCostNegative = errors.New("cost of production cannot be negative")

	// ErrCostExceedsAmount rejects an income whose cost of production is
	// greater than the income amount.
	ErrCostExceedsAmount = errors.New("cost of production cannot exceed the income amount")

	// ErrNegativeProfit guards the derived profit. Validation re-checks it
	// even though the cost rules already imply it.
	ErrNegativeProfit = errors.New("profit cannot be negative")

	// ErrFundNotFound rejects operations referencing an unknown fund.
	ErrFundNotFound = errors.New("fund does not exist")

	// ErrInsufficientFunds rejects an expense larger than its source fund's balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrBadDistributionSum rejects a distribution whose percentages do not
	// sum to 100 within tolerance.
	ErrBadDistributionSum = errors.New("distribution percentages must sum to 100")

	// ErrShareOutOfRange rejects a distribution share outside [0, 100].
	ErrShareOutOfRange = errors.New("distribution percentage must be between 0 and 100")

	// ErrDuplicateShare rejects a distribution listing the same fund twice.
	ErrDuplicateShare = errors.New("fund appears more than once in the distribution")

	// ErrDegenerateDistribution is returned when a tax toggle would rescale
	// from a zero base; rescaling would otherwise produce NaN percentages.
	ErrDegenerateDistribution = errors.New("distribution cannot be rescaled from a zero base")

	// ErrBalanceNotZero rejects deleting a fund that still holds money.
	ErrBalanceNotZero = errors.New("fund balance must be zero")

	// ErrFundReferenced rejects deleting a fund that past expenses or the
	// active distribution still reference.
	ErrFundReferenced = errors.New("fund is still referenced")

	// ErrTaxFundMissing is returned when enabling tax and no fund carries the
	// tax-fund flag (or more than one does).
	ErrTaxFundMissing = errors.New("exactly one tax fund must be configured")

	// ErrVersionMismatch is returned when a snapshot file carries an
	// unsupported format version.
	ErrVersionMismatch = errors.New("unsupported snapshot version")
)

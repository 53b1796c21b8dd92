package tracker

import "fmt"

// Validate 'tx' against the funds it would be recorded on, and return it
// untouched or the first violated rule.
func Validate(funds Funds, tx Transaction) (ntx Transaction, err error) {
	switch v := tx.(type) {
	case Income:
		err = v.Validate(funds)
	case Expense:
		err = v.Validate(funds)
	default:
		err = fmt.Errorf("unsupported transaction type %q", tx.What())
	}
	return tx, err
}

// Package ledger holds the pure rules governing how a stock quantity
// changes in response to add, sell and reduce actions. Functions here have
// no side effects and no collaborators.
package ledger

import (
	"github.com/wingscafe/inventory/internal/apperr"
)

// SaleResult is the outcome of a successful sell.
type SaleResult struct {
	NewQuantity int
	SaleValue   float64
}

// Add returns the quantity after adding amount units.
// It fails with InvalidAmountErr when amount is not a positive integer.
func Add(current, amount int) (int, error) {
	if amount <= 0 {
		return current, apperr.InvalidAmountErr
	}
	return current + amount, nil
}

// Sell returns the decremented quantity and the value of the sale,
// saleValue = amount * unitPrice. It fails with InvalidAmountErr when amount
// is not positive and with InsufficientStockErr when amount exceeds the
// current quantity; in both cases the quantity is unchanged.
func Sell(current, amount int, unitPrice float64) (SaleResult, error) {
	if amount <= 0 {
		return SaleResult{NewQuantity: current}, apperr.InvalidAmountErr
	}
	if amount > current {
		return SaleResult{NewQuantity: current}, apperr.InsufficientStockErr
	}

	return SaleResult{
		NewQuantity: current - amount,
		SaleValue:   float64(amount) * unitPrice,
	}, nil
}

// Reduce returns the quantity after removing amount units. Same contract as
// Sell without the price computation.
func Reduce(current, amount int) (int, error) {
	if amount <= 0 {
		return current, apperr.InvalidAmountErr
	}
	if amount > current {
		return current, apperr.InsufficientStockErr
	}
	return current - amount, nil
}

package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingscafe/inventory/internal/apperr"
	"github.com/wingscafe/inventory/internal/ledger"
)

func TestAdd(t *testing.T) {
	t.Run("Should add positive amounts", func(t *testing.T) {
		for _, tc := range []struct {
			current, amount, want int
		}{
			{0, 1, 1},
			{10, 5, 15},
			{3, 100, 103},
		} {
			got, err := ledger.Add(tc.current, tc.amount)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		}
	})

	t.Run("Should reject non-positive amounts", func(t *testing.T) {
		for _, amount := range []int{0, -1, -50} {
			got, err := ledger.Add(10, amount)
			assert.ErrorIs(t, err, apperr.InvalidAmountErr)
			assert.Equal(t, 10, got)
		}
	})
}

func TestSell(t *testing.T) {
	t.Run("Should decrement quantity and compute sale value", func(t *testing.T) {
		res, err := ledger.Sell(10, 4, 5.0)
		require.NoError(t, err)
		assert.Equal(t, 6, res.NewQuantity)
		assert.Equal(t, 20.0, res.SaleValue)
	})

	t.Run("Should allow selling the entire stock", func(t *testing.T) {
		res, err := ledger.Sell(7, 7, 60)
		require.NoError(t, err)
		assert.Equal(t, 0, res.NewQuantity)
		assert.Equal(t, 420.0, res.SaleValue)
	})

	t.Run("Should fail with insufficient stock and leave quantity unchanged", func(t *testing.T) {
		res, err := ledger.Sell(3, 5, 100)
		assert.ErrorIs(t, err, apperr.InsufficientStockErr)
		assert.Equal(t, 3, res.NewQuantity)
		assert.Zero(t, res.SaleValue)
	})

	t.Run("Should reject non-positive amounts", func(t *testing.T) {
		for _, amount := range []int{0, -4} {
			res, err := ledger.Sell(10, amount, 58)
			assert.ErrorIs(t, err, apperr.InvalidAmountErr)
			assert.Equal(t, 10, res.NewQuantity)
		}
	})
}

func TestReduce(t *testing.T) {
	t.Run("Should subtract the amount", func(t *testing.T) {
		got, err := ledger.Reduce(10, 4)
		require.NoError(t, err)
		assert.Equal(t, 6, got)
	})

	t.Run("Should fail when it would go negative", func(t *testing.T) {
		got, err := ledger.Reduce(3, 5)
		assert.ErrorIs(t, err, apperr.InsufficientStockErr)
		assert.Equal(t, 3, got)
	})

	t.Run("Should reject non-positive amounts", func(t *testing.T) {
		got, err := ledger.Reduce(3, 0)
		assert.ErrorIs(t, err, apperr.InvalidAmountErr)
		assert.Equal(t, 3, got)
	})
}

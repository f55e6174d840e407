package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSalesAggregator(t *testing.T) {
	t.Run("Should start at zero", func(t *testing.T) {
		agg := NewSalesAggregator()
		assert.Equal(t, 0.0, agg.TotalSales())
	})

	t.Run("Should accumulate sale values", func(t *testing.T) {
		agg := NewSalesAggregator()

		assert.Equal(t, 20.0, agg.RecordSale(20))
		assert.Equal(t, 35.5, agg.RecordSale(15.5))
		assert.Equal(t, 35.5, agg.TotalSales())
	})

	t.Run("Should not lose concurrent sales", func(t *testing.T) {
		agg := NewSalesAggregator()

		var wg sync.WaitGroup
		for range 100 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				agg.RecordSale(1)
			}()
		}
		wg.Wait()

		assert.Equal(t, 100.0, agg.TotalSales())
	})

	t.Run("Should never report a top selling product", func(t *testing.T) {
		agg := NewSalesAggregator()

		agg.RecordSale(500)
		assert.Empty(t, agg.TopSellingProduct())
	})
}

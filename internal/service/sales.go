package service

import "sync"

// SalesAggregator accumulates the running sales total for the current
// process. It is derived state: nothing is persisted, and a restart resets
// the total to zero.
type SalesAggregator struct {
	mu                sync.Mutex
	total             float64
	topSellingProduct string
}

func NewSalesAggregator() *SalesAggregator {
	return &SalesAggregator{}
}

// RecordSale adds saleValue to the running total and returns the new total.
func (a *SalesAggregator) RecordSale(saleValue float64) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.total += saleValue
	return a.total
}

// TotalSales returns the running total. Monotonically non-decreasing within
// the process lifetime.
func (a *SalesAggregator) TotalSales() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.total
}

// TopSellingProduct returns the tracked top seller. No operation ever writes
// this slot, so it stays at its zero value; kept for parity with the
// dashboard state it mirrors.
func (a *SalesAggregator) TopSellingProduct() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.topSellingProduct
}

package interfaces

// IBillingMetrics receives outcome counters from the composer and enricher.
type IBillingMetrics interface {
	BillComposed(persistedItems, failedItems int)
	BillEnriched(items, unresolvedItems int)
}

// NopBillingMetrics discards everything.
type NopBillingMetrics struct{}

func (NopBillingMetrics) BillComposed(int, int) {}
func (NopBillingMetrics) BillEnriched(int, int) {}

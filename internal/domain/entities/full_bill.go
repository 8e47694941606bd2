package entities

// FullBill is the read-time view of a bill: the persisted record plus the
// current state of the customer and products it references. It is never
// written back to the store.
type FullBill struct {
	Bill     Bill
	Customer Customer
	Items    []FullLineItem
}

// FullLineItem pairs a persisted line item with its product as resolved at
// read time. Product is nil when the lookup failed; Err then holds the cause.
type FullLineItem struct {
	LineItem LineItem
	Product  *Product
	Err      error
}

func (i FullLineItem) Resolved() bool {
	return i.Product != nil
}

// UnresolvedCount returns how many items could not be hydrated.
func (b FullBill) UnresolvedCount() int {
	n := 0
	for _, it := range b.Items {
		if !it.Resolved() {
			n++
		}
	}
	return n
}

package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultLineItemQuantity is the quantity recorded for every line item when a
// bill is composed from the catalog listing.
const DefaultLineItemQuantity = 30

// Bill is the billing event header persisted by the billing-service.
//
// Storage model (DynamoDB):
//   - PK: id
//
// CustomerID references a record owned by the customer service and never
// changes after creation. LineItems is filled only when the caller asks the
// line-item store for them.
type Bill struct {
	ID          string     `json:"id"`
	BillingDate time.Time  `json:"billing_date"`
	CustomerID  int64      `json:"customer_id"`
	LineItems   []LineItem `json:"line_items,omitempty"`
}

// LineItem is one priced product reference within a bill.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (bill_id-index): bill_id
//
// Price is the product price captured when the bill was composed. Position is
// the product's index in the catalog listing and defines item order.
type LineItem struct {
	ID        string  `json:"id"`
	BillID    string  `json:"bill_id"`
	ProductID int64   `json:"product_id"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Position  int     `json:"position"`
}

// Subtotal returns price * quantity.
func (li LineItem) Subtotal() decimal.Decimal {
	return decimal.NewFromFloat(li.Price).Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Total sums the snapshot subtotals of the loaded line items.
func (b Bill) Total() decimal.Decimal {
	total := decimal.Zero
	for _, li := range b.LineItems {
		total = total.Add(li.Subtotal())
	}
	return total
}

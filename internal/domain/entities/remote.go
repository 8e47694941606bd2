package entities

// Customer is owned by the customer service. The billing-service only reads it.
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Product is owned by the inventory service. Price is the current price and
// may differ from any LineItem.Price captured earlier.
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

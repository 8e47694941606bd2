package response

import (
	"time"

	"billing_service/internal/domain/entities"
)

type CustomerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ProductResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// FullLineItemResponse carries the snapshot price and quantity next to the
// product as it is now. Product is null when it could not be resolved.
type FullLineItemResponse struct {
	ID         string           `json:"id"`
	Price      float64          `json:"price"`
	Quantity   int              `json:"quantity"`
	Position   int              `json:"position"`
	Subtotal   string           `json:"subtotal"`
	Product    *ProductResponse `json:"product"`
	Unresolved bool             `json:"unresolved,omitempty"`
	Error      string           `json:"error,omitempty"`
}

// FullBillResponse is the body of GET /fullBill/{id}.
type FullBillResponse struct {
	ID          string                 `json:"id"`
	BillingDate time.Time              `json:"billing_date"`
	Customer    CustomerResponse       `json:"customer"`
	LineItems   []FullLineItemResponse `json:"line_items"`
	Total       string                 `json:"total"`
}

func FromFullBill(fb entities.FullBill) FullBillResponse {
	items := make([]FullLineItemResponse, 0, len(fb.Items))
	for _, it := range fb.Items {
		li := it.LineItem
		r := FullLineItemResponse{
			ID:       li.ID,
			Price:    li.Price,
			Quantity: li.Quantity,
			Position: li.Position,
			Subtotal: li.Subtotal().StringFixed(2),
		}
		if it.Resolved() {
			r.Product = &ProductResponse{ID: it.Product.ID, Name: it.Product.Name, Price: it.Product.Price}
		} else {
			r.Unresolved = true
			if it.Err != nil {
				r.Error = it.Err.Error()
			}
		}
		items = append(items, r)
	}

	return FullBillResponse{
		ID:          fb.Bill.ID,
		BillingDate: fb.Bill.BillingDate,
		Customer: CustomerResponse{
			ID:    fb.Customer.ID,
			Name:  fb.Customer.Name,
			Email: fb.Customer.Email,
		},
		LineItems: items,
		Total:     fb.Bill.Total().StringFixed(2),
	}
}

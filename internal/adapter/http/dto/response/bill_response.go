package response

import (
	"time"

	"billing_service/internal/domain/entities"
	"billing_service/internal/usecase"
)

type LineItemResponse struct {
	ID        string  `json:"id"`
	ProductID int64   `json:"product_id"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Position  int     `json:"position"`
	Subtotal  string  `json:"subtotal"`
}

// BillResponse is the persisted bill: header plus snapshot line items.
type BillResponse struct {
	ID          string             `json:"id"`
	BillingDate time.Time          `json:"billing_date"`
	CustomerID  int64              `json:"customer_id"`
	LineItems   []LineItemResponse `json:"line_items"`
	Total       string             `json:"total"`
}

type FailedItemResponse struct {
	ProductID int64  `json:"product_id"`
	Position  int    `json:"position"`
	Error     string `json:"error"`
}

// ComposeBillResponse is returned by POST /v1/bills. FailedItems is only set
// when some line items could not be persisted.
type ComposeBillResponse struct {
	BillResponse
	FailedItems []FailedItemResponse `json:"failed_items,omitempty"`
}

func FromBill(b entities.Bill) BillResponse {
	items := make([]LineItemResponse, 0, len(b.LineItems))
	for _, li := range b.LineItems {
		items = append(items, LineItemResponse{
			ID:        li.ID,
			ProductID: li.ProductID,
			Price:     li.Price,
			Quantity:  li.Quantity,
			Position:  li.Position,
			Subtotal:  li.Subtotal().StringFixed(2),
		})
	}
	return BillResponse{
		ID:          b.ID,
		BillingDate: b.BillingDate,
		CustomerID:  b.CustomerID,
		LineItems:   items,
		Total:       b.Total().StringFixed(2),
	}
}

func FromBills(bills []entities.Bill) []BillResponse {
	out := make([]BillResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, FromBill(b))
	}
	return out
}

func FromComposedBill(b entities.Bill, partial *usecase.PartialWriteError) ComposeBillResponse {
	res := ComposeBillResponse{BillResponse: FromBill(b)}
	if partial == nil {
		return res
	}
	for _, f := range partial.Failures {
		msg := ""
		if f.Err != nil {
			msg = f.Err.Error()
		}
		res.FailedItems = append(res.FailedItems, FailedItemResponse{
			ProductID: f.ProductID,
			Position:  f.Position,
			Error:     msg,
		})
	}
	return res
}

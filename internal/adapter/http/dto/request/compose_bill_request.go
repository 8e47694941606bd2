package request

import "errors"

var ErrInvalidCustomerID = errors.New("customer_id must be a positive integer")

// ComposeBillRequest is the body of POST /v1/bills.
type ComposeBillRequest struct {
	CustomerID int64 `json:"customer_id" binding:"required" example:"1"`
}

func (r ComposeBillRequest) Validate() error {
	if r.CustomerID <= 0 {
		return ErrInvalidCustomerID
	}
	return nil
}

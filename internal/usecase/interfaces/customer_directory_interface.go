package interfaces

import (
	"billing_service/internal/domain/entities"
	"context"
)

//go:generate mockgen -source=customer_directory_interface.go -destination=mocks/mock_customer_directory_interface.go -package=mock_interfaces

// ICustomerDirectory reads customers from the customer service.
//
// A missing customer is reported as a zero-value Customer (ID == 0) and a nil
// error. Transport failures and non-404 error responses wrap
// ErrUpstreamUnavailable.
type ICustomerDirectory interface {
	FindCustomerByID(ctx context.Context, id int64) (entities.Customer, error)
}

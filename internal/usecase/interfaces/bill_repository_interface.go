package interfaces

import (
	"billing_service/internal/domain/entities"
	"context"
)

//go:generate mockgen -source=bill_repository_interface.go -destination=mocks/mock_bill_repository_interface.go -package=mock_interfaces

// IBillRepository abstracts persistence of bill headers.
//
// Create assigns the identifier when the given bill has none. GetByID returns a
// zero-value Bill (empty ID) and a nil error when the bill does not exist.

type IBillRepository interface {
	Create(ctx context.Context, b entities.Bill) (entities.Bill, error)
	GetByID(ctx context.Context, id string) (entities.Bill, error)
	List(ctx context.Context) ([]entities.Bill, error)
}

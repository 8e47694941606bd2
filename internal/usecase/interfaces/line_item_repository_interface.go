package interfaces

import (
	"billing_service/internal/domain/entities"
	"context"
)

//go:generate mockgen -source=line_item_repository_interface.go -destination=mocks/mock_line_item_repository_interface.go -package=mock_interfaces

// ILineItemRepository abstracts persistence of bill line items.
//
// Line items are append-only. ListByBillID returns the items of one bill
// ordered by Position.

type ILineItemRepository interface {
	Create(ctx context.Context, li entities.LineItem) (entities.LineItem, error)
	ListByBillID(ctx context.Context, billID string) ([]entities.LineItem, error)
	List(ctx context.Context) ([]entities.LineItem, error)
}

package interfaces

import (
	"billing_service/internal/domain/entities"
	"context"
)

//go:generate mockgen -source=product_catalog_interface.go -destination=mocks/mock_product_catalog_interface.go -package=mock_interfaces

// IProductCatalog reads products from the inventory service.
//
// Same failure convention as ICustomerDirectory. ListProducts returns the full
// listing in the order the inventory service sent it.
type IProductCatalog interface {
	FindProductByID(ctx context.Context, id int64) (entities.Product, error)
	ListProducts(ctx context.Context) ([]entities.Product, error)
}

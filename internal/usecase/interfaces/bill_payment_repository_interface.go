package interfaces

import (
	"billing_service/internal/domain/entities"
	"context"
)

//go:generate mockgen -source=bill_payment_repository_interface.go -destination=mocks/mock_bill_payment_repository_interface.go -package=mock_interfaces

// IBillPaymentRepository abstracts DynamoDB persistence for BillPayment.

type IBillPaymentRepository interface {
	Create(ctx context.Context, p entities.BillPayment) (entities.BillPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillPayment, error)
	ListByBillID(ctx context.Context, billID string) ([]entities.BillPayment, error)
}

package usecase

import (
	"context"
	"sort"
	"strings"

	"billing_service/internal/domain/entities"
	"billing_service/internal/usecase/interfaces"
)

// IBillQueryUseCase reads persisted bills with their snapshot line items.
// It never calls the remote services.
type IBillQueryUseCase interface {
	GetBill(ctx context.Context, id string) (entities.Bill, error)
	ListBills(ctx context.Context) ([]entities.Bill, error)
}

type BillQueryUseCase struct {
	bills     interfaces.IBillRepository
	lineItems interfaces.ILineItemRepository
}

var _ IBillQueryUseCase = (*BillQueryUseCase)(nil)

func NewBillQueryUseCase(bills interfaces.IBillRepository, lineItems interfaces.ILineItemRepository) *BillQueryUseCase {
	return &BillQueryUseCase{bills: bills, lineItems: lineItems}
}

func (u *BillQueryUseCase) GetBill(ctx context.Context, id string) (entities.Bill, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Bill{}, ErrInvalidBillID
	}

	b, err := u.bills.GetByID(ctx, id)
	if err != nil {
		return entities.Bill{}, err
	}
	if b.ID == "" {
		return entities.Bill{}, ErrBillNotFound
	}

	items, err := u.lineItems.ListByBillID(ctx, b.ID)
	if err != nil {
		return entities.Bill{}, err
	}
	b.LineItems = items
	return b, nil
}

// ListBills returns every bill, oldest first, each with its line items.
func (u *BillQueryUseCase) ListBills(ctx context.Context) ([]entities.Bill, error) {
	bills, err := u.bills.List(ctx)
	if err != nil {
		return nil, err
	}
	items, err := u.lineItems.List(ctx)
	if err != nil {
		return nil, err
	}

	byBill := make(map[string][]entities.LineItem, len(bills))
	for _, li := range items {
		byBill[li.BillID] = append(byBill[li.BillID], li)
	}

	for i := range bills {
		its := byBill[bills[i].ID]
		sort.SliceStable(its, func(a, b int) bool { return its[a].Position < its[b].Position })
		bills[i].LineItems = its
	}
	sort.SliceStable(bills, func(a, b int) bool { return bills[a].BillingDate.Before(bills[b].BillingDate) })
	return bills, nil
}

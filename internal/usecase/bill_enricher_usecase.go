package usecase

import (
	"context"
	"fmt"
	"strings"

	"billing_service/internal/domain/entities"
	"billing_service/internal/usecase/interfaces"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// IBillEnricherUseCase builds the display view of a persisted bill.
//
// The customer lookup is all-or-nothing. Product lookups are isolated per
// item: a failed lookup leaves that item unresolved and the rest hydrated.
type IBillEnricherUseCase interface {
	EnrichBill(ctx context.Context, billID string) (entities.FullBill, error)
}

// BillEnricherConfig tunes the enricher. Zero values fall back to defaults.
type BillEnricherConfig struct {
	FanOutLimit int
	Logger      *zap.Logger
	Metrics     interfaces.IBillingMetrics
}

type BillEnricherUseCase struct {
	bills     interfaces.IBillRepository
	lineItems interfaces.ILineItemRepository
	directory interfaces.ICustomerDirectory
	catalog   interfaces.IProductCatalog

	fanOutLimit int
	log         *zap.Logger
	metrics     interfaces.IBillingMetrics
}

var _ IBillEnricherUseCase = (*BillEnricherUseCase)(nil)

func NewBillEnricherUseCase(
	bills interfaces.IBillRepository,
	lineItems interfaces.ILineItemRepository,
	directory interfaces.ICustomerDirectory,
	catalog interfaces.IProductCatalog,
	cfg BillEnricherConfig,
) *BillEnricherUseCase {
	u := &BillEnricherUseCase{
		bills:       bills,
		lineItems:   lineItems,
		directory:   directory,
		catalog:     catalog,
		fanOutLimit: cfg.FanOutLimit,
		log:         cfg.Logger,
		metrics:     cfg.Metrics,
	}
	if u.log == nil {
		u.log = zap.NewNop()
	}
	if u.metrics == nil {
		u.metrics = interfaces.NopBillingMetrics{}
	}
	return u
}

func (u *BillEnricherUseCase) EnrichBill(ctx context.Context, billID string) (entities.FullBill, error) {
	ctx, span := tracer.Start(ctx, "BillEnricher.EnrichBill")
	defer span.End()

	billID = strings.TrimSpace(billID)
	if billID == "" {
		return entities.FullBill{}, ErrInvalidBillID
	}
	span.SetAttributes(attribute.String("bill.id", billID))
	log := u.log.With(zap.String("bill_id", billID))

	bill, err := u.bills.GetByID(ctx, billID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return entities.FullBill{}, err
	}
	if bill.ID == "" {
		return entities.FullBill{}, ErrBillNotFound
	}

	items, err := u.lineItems.ListByBillID(ctx, bill.ID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return entities.FullBill{}, err
	}
	bill.LineItems = items

	customer, err := u.directory.FindCustomerByID(ctx, bill.CustomerID)
	if err != nil {
		log.Warn("[bill][enricher] customer lookup failed", zap.Int64("customer_id", bill.CustomerID), zap.Error(err))
		span.SetStatus(codes.Error, err.Error())
		return entities.FullBill{}, fmt.Errorf("find customer %d: %w", bill.CustomerID, err)
	}
	if customer.ID == 0 {
		log.Info("[bill][enricher] customer not found", zap.Int64("customer_id", bill.CustomerID))
		return entities.FullBill{}, ErrCustomerNotFound
	}

	full := entities.FullBill{
		Bill:     bill,
		Customer: customer,
		Items:    make([]entities.FullLineItem, len(items)),
	}
	fanOut(ctx, u.fanOutLimit, len(items), func(ctx context.Context, i int) {
		full.Items[i] = u.resolveItem(ctx, items[i])
	})
	if err := ctx.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return entities.FullBill{}, err
	}

	unresolved := full.UnresolvedCount()
	for _, it := range full.Items {
		if !it.Resolved() {
			log.Warn("[bill][enricher] product unresolved",
				zap.String("line_item_id", it.LineItem.ID),
				zap.Int64("product_id", it.LineItem.ProductID),
				zap.Error(it.Err))
		}
	}
	u.metrics.BillEnriched(len(full.Items), unresolved)
	span.SetAttributes(attribute.Int("bill.items", len(full.Items)), attribute.Int("bill.unresolved_items", unresolved))

	return full, nil
}

func (u *BillEnricherUseCase) resolveItem(ctx context.Context, li entities.LineItem) entities.FullLineItem {
	product, err := u.catalog.FindProductByID(ctx, li.ProductID)
	if err != nil {
		return entities.FullLineItem{LineItem: li, Err: fmt.Errorf("find product %d: %w", li.ProductID, err)}
	}
	if product.ID == 0 {
		return entities.FullLineItem{LineItem: li, Err: ErrProductNotFound}
	}
	return entities.FullLineItem{LineItem: li, Product: &product}
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"billing_service/internal/domain/entities"
	"billing_service/internal/usecase/interfaces"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("billing_service/usecase")

// IBillComposerUseCase creates bills from the current customer and catalog state.
//
// Composition is not transactional: the header is persisted before the line
// items, and a failed item write leaves the header and the other items in
// place. In that case the bill is returned together with a *PartialWriteError.
type IBillComposerUseCase interface {
	ComposeBill(ctx context.Context, customerID int64) (entities.Bill, error)
}

// BillComposerConfig tunes the composer. Zero values fall back to defaults.
type BillComposerConfig struct {
	Quantity    int
	FanOutLimit int
	Logger      *zap.Logger
	Metrics     interfaces.IBillingMetrics
	Now         func() time.Time
}

type BillComposerUseCase struct {
	bills     interfaces.IBillRepository
	lineItems interfaces.ILineItemRepository
	directory interfaces.ICustomerDirectory
	catalog   interfaces.IProductCatalog

	quantity    int
	fanOutLimit int
	log         *zap.Logger
	metrics     interfaces.IBillingMetrics
	now         func() time.Time
}

var _ IBillComposerUseCase = (*BillComposerUseCase)(nil)

func NewBillComposerUseCase(
	bills interfaces.IBillRepository,
	lineItems interfaces.ILineItemRepository,
	directory interfaces.ICustomerDirectory,
	catalog interfaces.IProductCatalog,
	cfg BillComposerConfig,
) *BillComposerUseCase {
	u := &BillComposerUseCase{
		bills:       bills,
		lineItems:   lineItems,
		directory:   directory,
		catalog:     catalog,
		quantity:    cfg.Quantity,
		fanOutLimit: cfg.FanOutLimit,
		log:         cfg.Logger,
		metrics:     cfg.Metrics,
		now:         cfg.Now,
	}
	if u.quantity <= 0 {
		u.quantity = entities.DefaultLineItemQuantity
	}
	if u.log == nil {
		u.log = zap.NewNop()
	}
	if u.metrics == nil {
		u.metrics = interfaces.NopBillingMetrics{}
	}
	if u.now == nil {
		u.now = time.Now
	}
	return u
}

func (u *BillComposerUseCase) ComposeBill(ctx context.Context, customerID int64) (entities.Bill, error) {
	ctx, span := tracer.Start(ctx, "BillComposer.ComposeBill")
	defer span.End()
	span.SetAttributes(attribute.Int64("customer.id", customerID))

	log := u.log.With(zap.Int64("customer_id", customerID))
	if customerID <= 0 {
		return entities.Bill{}, ErrInvalidCustomerID
	}

	customer, err := u.directory.FindCustomerByID(ctx, customerID)
	if err != nil {
		log.Warn("[bill][composer] customer lookup failed", zap.Error(err))
		span.SetStatus(codes.Error, err.Error())
		return entities.Bill{}, fmt.Errorf("find customer %d: %w", customerID, err)
	}
	if customer.ID == 0 {
		log.Info("[bill][composer] customer not found")
		return entities.Bill{}, ErrCustomerNotFound
	}

	bill, err := u.bills.Create(ctx, entities.Bill{
		BillingDate: u.now().UTC(),
		CustomerID:  customer.ID,
	})
	if err != nil {
		log.Error("[bill][composer] bill header create failed", zap.Error(err))
		span.SetStatus(codes.Error, err.Error())
		return entities.Bill{}, err
	}
	log = log.With(zap.String("bill_id", bill.ID))
	span.SetAttributes(attribute.String("bill.id", bill.ID))

	products, err := u.catalog.ListProducts(ctx)
	if err != nil {
		// The header stays persisted without items; callers retry the whole compose.
		log.Error("[bill][composer] product listing failed; bill header left without items", zap.Error(err))
		span.SetStatus(codes.Error, err.Error())
		return entities.Bill{}, fmt.Errorf("list products for bill %s: %w", bill.ID, err)
	}

	saved := make([]entities.LineItem, len(products))
	errs := make([]error, len(products))
	ran := fanOut(ctx, u.fanOutLimit, len(products), func(ctx context.Context, i int) {
		p := products[i]
		saved[i], errs[i] = u.lineItems.Create(ctx, entities.LineItem{
			BillID:    bill.ID,
			ProductID: p.ID,
			Price:     p.Price,
			Quantity:  u.quantity,
			Position:  i,
		})
	})
	for i := range products {
		if !ran[i] {
			errs[i] = ctx.Err()
		}
	}

	bill.LineItems = make([]entities.LineItem, 0, len(products))
	var failures []LineItemFailure
	for i, p := range products {
		if errs[i] != nil {
			log.Warn("[bill][composer] line item create failed",
				zap.Int64("product_id", p.ID), zap.Int("position", i), zap.Error(errs[i]))
			failures = append(failures, LineItemFailure{ProductID: p.ID, Position: i, Err: errs[i]})
			continue
		}
		bill.LineItems = append(bill.LineItems, saved[i])
	}

	u.metrics.BillComposed(len(bill.LineItems), len(failures))
	span.SetAttributes(
		attribute.Int("bill.items", len(bill.LineItems)),
		attribute.Int("bill.failed_items", len(failures)),
	)

	if len(failures) > 0 {
		span.SetStatus(codes.Error, ErrPartialWriteFailure.Error())
		return bill, &PartialWriteError{BillID: bill.ID, Failures: failures}
	}

	log.Info("[bill][composer] bill composed", zap.Int("items", len(bill.LineItems)))
	return bill, nil
}

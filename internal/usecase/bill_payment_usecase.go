package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"billing_service/internal/domain/entities"
	"billing_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrBillPaymentNotFound         = errors.New("bill payment not found")
	ErrInvalidPaymentPayload       = errors.New("invalid payment payload")
	ErrBillHasNoItems              = errors.New("bill has no line items")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest    = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized  = errors.New("payment gateway unauthorized")
)

// IBillPaymentUseCase settles bills through the payment provider.
//
// The amount charged is always the bill's snapshot total, never a value taken
// from the request payload.
type IBillPaymentUseCase interface {
	PayBill(ctx context.Context, billID string, payload json.RawMessage) (entities.BillPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillPayment, error)
	ListByBillID(ctx context.Context, billID string) ([]entities.BillPayment, error)
}

type BillPaymentUseCase struct {
	repo      interfaces.IBillPaymentRepository
	bills     interfaces.IBillRepository
	lineItems interfaces.ILineItemRepository
	directory interfaces.ICustomerDirectory
	gateway   interfaces.IPaymentGateway
	log       *zap.Logger
}

var _ IBillPaymentUseCase = (*BillPaymentUseCase)(nil)

func NewBillPaymentUseCase(
	repo interfaces.IBillPaymentRepository,
	bills interfaces.IBillRepository,
	lineItems interfaces.ILineItemRepository,
	directory interfaces.ICustomerDirectory,
	gateway interfaces.IPaymentGateway,
	log *zap.Logger,
) *BillPaymentUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &BillPaymentUseCase{
		repo:      repo,
		bills:     bills,
		lineItems: lineItems,
		directory: directory,
		gateway:   gateway,
		log:       log,
	}
}

func (u *BillPaymentUseCase) PayBill(ctx context.Context, billID string, payload json.RawMessage) (entities.BillPayment, error) {
	billID = strings.TrimSpace(billID)
	if billID == "" {
		return entities.BillPayment{}, ErrInvalidBillID
	}
	log := u.log.With(zap.String("bill_id", billID))
	log.Info("[payment][usecase] pay-bill start", zap.Int("payload_len", len(payload)))

	if len(strings.TrimSpace(string(payload))) == 0 {
		payload = json.RawMessage("{}")
	}
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		log.Info("[payment][usecase] invalid payload (not a json object)")
		return entities.BillPayment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		log.Warn("[payment][usecase] gateway not configured")
		return entities.BillPayment{}, ErrPaymentGatewayNotConfigured
	}

	bill, err := u.bills.GetByID(ctx, billID)
	if err != nil {
		return entities.BillPayment{}, err
	}
	if bill.ID == "" {
		return entities.BillPayment{}, ErrBillNotFound
	}
	items, err := u.lineItems.ListByBillID(ctx, bill.ID)
	if err != nil {
		return entities.BillPayment{}, err
	}
	if len(items) == 0 {
		return entities.BillPayment{}, ErrBillHasNoItems
	}
	bill.LineItems = items
	total := bill.Total().Round(2)
	log.Info("[payment][usecase] bill loaded", zap.Int("items", len(items)), zap.String("total", total.StringFixed(2)))

	// Mercado Pago uses external_reference to reconcile events.
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = bill.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Bill %s", bill.ID)
	}
	reqMap["transaction_amount"] = total.InexactFloat64()
	u.ensurePayerEmail(ctx, log, reqMap, bill.CustomerID)

	req, err := json.Marshal(reqMap)
	if err != nil {
		return entities.BillPayment{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, req)
	if err != nil {
		log.Warn("[payment][usecase] payment gateway failed", zap.Error(err))
		switch {
		case isGatewayUnauthorized(err):
			return entities.BillPayment{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return entities.BillPayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.BillPayment{}, err
	}
	if providerID == "" {
		providerID = uuid.NewString()
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Info("[payment][usecase] provider response unmarshal failed", zap.Error(err))
	}

	created, err := u.repo.Create(ctx, entities.BillPayment{
		ID:                 providerID,
		BillID:             bill.ID,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusFromProvider(providerStatus),
		Amount:             total.StringFixed(2),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	})
	if err != nil {
		log.Error("[payment][usecase] payment repository create failed", zap.String("payment_id", providerID), zap.Error(err))
		return entities.BillPayment{}, err
	}
	log.Info("[payment][usecase] pay-bill success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

// ensurePayerEmail fills payer.email from the customer directory when the
// caller sent neither a payer id nor an email. Lookup failures are not fatal.
func (u *BillPaymentUseCase) ensurePayerEmail(ctx context.Context, log *zap.Logger, m map[string]any, customerID int64) {
	payer, _ := m["payer"].(map[string]any)
	if payer == nil {
		payer = map[string]any{}
		m["payer"] = payer
	}
	if hasNonEmptyString(payer, "email") || payer["id"] != nil || u.directory == nil {
		return
	}

	customer, err := u.directory.FindCustomerByID(ctx, customerID)
	if err != nil {
		log.Warn("[payment][usecase] payer lookup failed", zap.Int64("customer_id", customerID), zap.Error(err))
		return
	}
	if customer.Email != "" {
		payer["email"] = customer.Email
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func (u *BillPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillPayment{}, err
	}
	if p.ID == "" {
		return entities.BillPayment{}, ErrBillPaymentNotFound
	}
	return p, nil
}

func (u *BillPaymentUseCase) ListByBillID(ctx context.Context, billID string) ([]entities.BillPayment, error) {
	billID = strings.TrimSpace(billID)
	if billID == "" {
		return nil, ErrInvalidBillID
	}
	return u.repo.ListByBillID(ctx, billID)
}

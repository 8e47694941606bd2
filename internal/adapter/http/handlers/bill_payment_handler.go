package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	request "billing_service/internal/adapter/http/dto/request"
	response "billing_service/internal/adapter/http/dto/response"
	"billing_service/internal/infrastructure/logger"
	"billing_service/internal/usecase"
	"billing_service/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BillPaymentHandler handles HTTP requests for bill payments.
type BillPaymentHandler struct {
	usecase  usecase.IBillPaymentUseCase
	mockMode bool
	log      *zap.Logger
}

// NewBillPaymentHandler builds the handler. In mock mode an unreadable body
// falls back to an empty provider payload instead of a 400.
func NewBillPaymentHandler(uc usecase.IBillPaymentUseCase, mockMode bool, log *zap.Logger) *BillPaymentHandler {
	return &BillPaymentHandler{usecase: uc, mockMode: mockMode, log: log}
}

// PayBill godoc
// @Summary      Pay a bill
// @Description  Charges the bill's snapshot total through Mercado Pago. The body is the provider payload, bare or wrapped in mp_payload.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Bill ID"
// @Param        body  body      request.BillPaymentRequest  false "Provider payload"
// @Success      200   {object}  response.BillPaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /bills/{id}/payments [post]
func (h *BillPaymentHandler) PayBill(c *gin.Context) {
	billID := c.Param("id")
	log := logger.FromGin(c, h.log).With(zap.String("bill_id", billID))

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Warn("[payment][handler] invalid payload", zap.Error(err))
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Info("[payment][handler] payload invalid in mock mode; using empty payload", zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.PayBill(c.Request.Context(), billID, mpPayload)
	if err != nil {
		log.Warn("[payment][handler] pay failed", zap.Error(err))
		appErr := mapBillPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info("[payment][handler] pay success",
		zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromBillPayment(created))
}

// GetLatestPayment godoc
// @Summary      Latest payment of a bill
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Bill ID"
// @Success      200  {object}  response.BillPaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /bills/{id}/payments [get]
func (h *BillPaymentHandler) GetLatestPayment(c *gin.Context) {
	billID := c.Param("id")

	payments, err := h.usecase.ListByBillID(c.Request.Context(), billID)
	if err != nil {
		logger.FromGin(c, h.log).Error("[payment][handler] list failed", zap.String("bill_id", billID), zap.Error(err))
		appErr := mapBillPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromBillPayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	return request.ParseBillPaymentPayload(raw)
}

func mapBillPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBillID), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrBillNotFound):
		return pkg.NewDomainErrorSimple("BILL_NOT_FOUND", "Bill not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillHasNoItems):
		return pkg.NewDomainErrorSimple("BILL_HAS_NO_ITEMS", "Bill has no line items to charge", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

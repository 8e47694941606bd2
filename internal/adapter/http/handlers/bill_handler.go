package handlers

import (
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

var (
	errInvalidComposePayload = pkg.NewDomainErrorSimple("INVALID_BILL_INPUT", "Invalid bill payload", http.StatusBadRequest)
)

// BillHandler serves bill composition and bill reads.
type BillHandler struct {
	composer usecase.IBillComposerUseCase
	enricher usecase.IBillEnricherUseCase
	query    usecase.IBillQueryUseCase
	log      *zap.Logger
}

func NewBillHandler(
	composer usecase.IBillComposerUseCase,
	enricher usecase.IBillEnricherUseCase,
	query usecase.IBillQueryUseCase,
	log *zap.Logger,
) *BillHandler {
	return &BillHandler{composer: composer, enricher: enricher, query: query, log: log}
}

// GetFullBill godoc
// @Summary      Get an enriched bill
// @Description  Returns the bill with the current customer and products embedded. Prices and quantities are the ones captured at composition. Also served unversioned at /fullBill/{id}.
// @Tags         bills
// @Produce      json
// @Param        id   path      string  true  "Bill ID"
// @Success      200  {object}  response.FullBillResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /bills/{id}/full [get]
func (h *BillHandler) GetFullBill(c *gin.Context) {
	id := c.Param("id")
	log := logger.FromGin(c, h.log)

	full, err := h.enricher.EnrichBill(c.Request.Context(), id)
	if err != nil {
		log.Warn("[bill][handler] enrich failed", zap.String("bill_id", id), zap.Error(err))
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFullBill(full))
}

// ComposeBill godoc
// @Summary      Compose a bill
// @Description  Creates a bill for the customer with one line item per catalog product. Answers 207 with failed_items when some items were not persisted.
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        body  body      request.ComposeBillRequest  true  "Customer"
// @Success      201   {object}  response.ComposeBillResponse
// @Success      207   {object}  response.ComposeBillResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /bills [post]
func (h *BillHandler) ComposeBill(c *gin.Context) {
	var payload request.ComposeBillRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidComposePayload.HTTPStatus, errInvalidComposePayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		c.JSON(errInvalidComposePayload.HTTPStatus, errInvalidComposePayload.ToHTTPError())
		return
	}
	log := logger.FromGin(c, h.log).With(zap.Int64("customer_id", payload.CustomerID))

	bill, err := h.composer.ComposeBill(c.Request.Context(), payload.CustomerID)
	var partial *usecase.PartialWriteError
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, response.FromComposedBill(bill, nil))
	case errors.As(err, &partial):
		log.Warn("[bill][handler] bill composed with failed items",
			zap.String("bill_id", bill.ID), zap.Int("failed_items", len(partial.Failures)))
		c.JSON(http.StatusMultiStatus, response.FromComposedBill(bill, partial))
	default:
		log.Warn("[bill][handler] compose failed", zap.Error(err))
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

// ListBills godoc
// @Summary      List bills
// @Tags         bills
// @Produce      json
// @Success      200  {array}   response.BillResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /bills [get]
func (h *BillHandler) ListBills(c *gin.Context) {
	bills, err := h.query.ListBills(c.Request.Context())
	if err != nil {
		logger.FromGin(c, h.log).Error("[bill][handler] list failed", zap.Error(err))
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBills(bills))
}

// GetBill godoc
// @Summary      Get a persisted bill
// @Tags         bills
// @Produce      json
// @Param        id   path      string  true  "Bill ID"
// @Success      200  {object}  response.BillResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /bills/{id} [get]
func (h *BillHandler) GetBill(c *gin.Context) {
	id := c.Param("id")

	bill, err := h.query.GetBill(c.Request.Context(), id)
	if err != nil {
		appErr := mapBillError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			logger.FromGin(c, h.log).Error("[bill][handler] get failed", zap.String("bill_id", id), zap.Error(err))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBill(bill))
}

func mapBillError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBillID), errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBillNotFound):
		return pkg.NewDomainErrorSimple("BILL_NOT_FOUND", "Bill not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUpstreamUnavailable):
		return pkg.NewDomainError("UPSTREAM_UNAVAILABLE", "A remote service could not be reached", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

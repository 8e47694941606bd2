package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"billing_service/internal/adapter/http/handlers/mocks"
	"billing_service/internal/domain/entities"
	"billing_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newPaymentRouter(uc *mocks.MockIBillPaymentUseCase, mockMode bool) *gin.Engine {
	h := NewBillPaymentHandler(uc, mockMode, zap.NewNop())
	r := gin.New()
	r.POST("/v1/bills/:id/payments", h.PayBill)
	r.GET("/v1/bills/:id/payments", h.GetLatestPayment)
	return r
}

func TestBillPaymentHandler_PayBill(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillPaymentUseCase(ctrl)
		r := newPaymentRouter(uc, false)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills/bill-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back to empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillPaymentUseCase(ctrl)
		r := newPaymentRouter(uc, true)

		uc.EXPECT().PayBill(gomock.Any(), "bill-1", json.RawMessage("{}")).
			Return(entities.BillPayment{ID: "pay-1", BillID: "bill-1", Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills/bill-1/payments", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	errCases := []struct {
		name string
		err  error
		want int
	}{
		{"bill not found", usecase.ErrBillNotFound, http.StatusNotFound},
		{"bill without items", usecase.ErrBillHasNoItems, http.StatusConflict},
		{"provider bad request", usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{"provider unauthorized", usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{"gateway missing", usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIBillPaymentUseCase(ctrl)
			r := newPaymentRouter(uc, false)

			uc.EXPECT().PayBill(gomock.Any(), "bill-1", gomock.Any()).Return(entities.BillPayment{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/bills/bill-1/payments", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("success unwraps mp_payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillPaymentUseCase(ctrl)
		r := newPaymentRouter(uc, false)

		uc.EXPECT().PayBill(gomock.Any(), "bill-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, payload json.RawMessage) (entities.BillPayment, error) {
				if string(payload) != `{"payment_method_id":"pix"}` {
					t.Fatalf("envelope not unwrapped: %s", payload)
				}
				return entities.BillPayment{ID: "pay-1", BillID: "bill-1", Date: time.Now().UTC(), Status: entities.PaymentStatusApproved, Amount: "525.00"}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/bills/bill-1/payments", bytes.NewBufferString(`{"mp_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["amount"] != "525.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestBillPaymentHandler_GetLatestPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillPaymentUseCase(ctrl)
		r := newPaymentRouter(uc, false)

		uc.EXPECT().ListByBillID(gomock.Any(), "bill-1").Return(nil, usecase.ErrInvalidBillID)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/bills/bill-1/payments", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillPaymentUseCase(ctrl)
		r := newPaymentRouter(uc, false)

		uc.EXPECT().ListByBillID(gomock.Any(), "bill-1").Return([]entities.BillPayment{}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/bills/bill-1/payments", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns latest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillPaymentUseCase(ctrl)
		r := newPaymentRouter(uc, false)

		old := entities.BillPayment{ID: "old", BillID: "bill-1", Date: time.Now().Add(-time.Hour), Status: entities.PaymentStatusPending}
		latest := entities.BillPayment{ID: "latest", BillID: "bill-1", Date: time.Now(), Status: entities.PaymentStatusApproved}
		uc.EXPECT().ListByBillID(gomock.Any(), "bill-1").Return([]entities.BillPayment{latest, old}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/bills/bill-1/payments", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "latest" {
			t.Fatalf("expected latest payment, got body: %s", w.Body.String())
		}
	})
}

func TestReadMPPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readMPPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readMPPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readMPPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}
}

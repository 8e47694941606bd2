package response

import (
	"time"

	"billing_service/internal/domain/entities"
)

type BillPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	BillID      string    `json:"bill_id"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`
	Amount      string    `json:"amount"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromBillPayment(p entities.BillPayment) BillPaymentResponse {
	return BillPaymentResponse{
		PaymentID:    p.ID,
		BillID:       p.BillID,
		PaymentDate:  p.Date,
		Status:       string(p.Status),
		Amount:       p.Amount,
		MPPayloadRaw: string(p.ProviderPayloadRaw),
		MPPayload:    p.ProviderPayload,
	}
}

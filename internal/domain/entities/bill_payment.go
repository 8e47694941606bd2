package entities

import (
	"encoding/json"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// PaymentStatusFromProvider maps a Mercado Pago status onto ours. Unknown
// provider statuses (in_process, authorized, ...) stay pending.
func PaymentStatusFromProvider(status string) PaymentStatus {
	switch status {
	case "approved":
		return PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusRejected
	default:
		return PaymentStatusPending
	}
}

// BillPayment records the settlement of a bill through the payment provider.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (bill_id-index): bill_id
//
// Amount is the bill's snapshot total at payment time, as a decimal string.
// ProviderPayloadRaw keeps the provider response body for audit.
type BillPayment struct {
	ID     string        `json:"id"`
	BillID string        `json:"bill_id"`
	Date   time.Time     `json:"date"`
	Status PaymentStatus `json:"status"`
	Amount string        `json:"amount"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrInvalidPaymentBody = errors.New("request body is not valid json")
	ErrEmptyMPPayload     = errors.New("mp_payload cannot be empty")
)

// BillPaymentRequest is the body of POST /v1/bills/{id}/payments.
//
// `mp_payload` is forwarded as-is to Mercado Pago; a bare provider payload
// without the envelope is accepted too.
type BillPaymentRequest struct {
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}

// ParseBillPaymentPayload extracts the provider payload from a raw body.
// An empty body yields "{}".
func ParseBillPaymentPayload(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, ErrInvalidPaymentBody
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			v := strings.TrimSpace(string(wrapped))
			if v == "" || v == "null" {
				return nil, ErrEmptyMPPayload
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

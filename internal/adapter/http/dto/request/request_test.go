package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeBillRequest_Validate(t *testing.T) {
	assert.NoError(t, ComposeBillRequest{CustomerID: 1}.Validate())
	assert.ErrorIs(t, ComposeBillRequest{CustomerID: 0}.Validate(), ErrInvalidCustomerID)
	assert.ErrorIs(t, ComposeBillRequest{CustomerID: -4}.Validate(), ErrInvalidCustomerID)
}

func TestParseBillPaymentPayload(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		p, err := ParseBillPaymentPayload([]byte("  "))
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(p))
	})

	t.Run("envelope", func(t *testing.T) {
		p, err := ParseBillPaymentPayload([]byte(`{"mp_payload":{"payment_method_id":"pix"}}`))
		require.NoError(t, err)
		assert.JSONEq(t, `{"payment_method_id":"pix"}`, string(p))
	})

	t.Run("bare payload", func(t *testing.T) {
		p, err := ParseBillPaymentPayload([]byte(`{"payment_method_id":"pix"}`))
		require.NoError(t, err)
		assert.JSONEq(t, `{"payment_method_id":"pix"}`, string(p))
	})

	t.Run("null envelope", func(t *testing.T) {
		_, err := ParseBillPaymentPayload([]byte(`{"mp_payload":null}`))
		assert.ErrorIs(t, err, ErrEmptyMPPayload)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := ParseBillPaymentPayload([]byte(`{`))
		assert.ErrorIs(t, err, ErrInvalidPaymentBody)
	})
}

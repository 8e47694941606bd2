package entities

import "testing"

func TestBillTotal(t *testing.T) {
	b := Bill{LineItems: []LineItem{
		{Price: 5.0, Quantity: 30},
		{Price: 12.5, Quantity: 30},
		{Price: 0.1, Quantity: 3},
	}}

	if got := b.Total().String(); got != "525.3" {
		t.Fatalf("expected 525.3, got %s", got)
	}
	if got := (Bill{}).Total().String(); got != "0" {
		t.Fatalf("expected 0 for empty bill, got %s", got)
	}
}

func TestFullBillUnresolvedCount(t *testing.T) {
	fb := FullBill{Items: []FullLineItem{
		{Product: &Product{ID: 10}},
		{},
		{Product: &Product{ID: 12}},
	}}
	if fb.UnresolvedCount() != 1 {
		t.Fatalf("expected 1 unresolved, got %d", fb.UnresolvedCount())
	}
	if !fb.Items[0].Resolved() || fb.Items[1].Resolved() {
		t.Fatalf("unexpected resolved flags")
	}
}

func TestPaymentStatusFromProvider(t *testing.T) {
	cases := map[string]PaymentStatus{
		"approved":   PaymentStatusApproved,
		"rejected":   PaymentStatusRejected,
		"cancelled":  PaymentStatusRejected,
		"in_process": PaymentStatusPending,
		"":           PaymentStatusPending,
	}
	for in, want := range cases {
		if got := PaymentStatusFromProvider(in); got != want {
			t.Fatalf("%q: expected %s got %s", in, want, got)
		}
	}
}

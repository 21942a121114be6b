package models

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderPending, OrderProcessing, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderShipped, false},
		{OrderProcessing, OrderShipped, true},
		{OrderShipped, OrderDelivered, true},
		{OrderShipped, OrderCancelled, true},
		{OrderDelivered, OrderCancelled, false},
		{OrderCancelled, OrderPending, false},
		{OrderShipped, OrderProcessing, false},
		{OrderDelivered, OrderDelivered, true}, // same-value no-op
	}
	for _, c := range cases {
		if got := c.from.CanTransition(c.to); got != c.want {
			t.Errorf("%s -> %s = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestPaymentStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to PaymentStatus
		want     bool
	}{
		{PaymentPending, PaymentCompleted, true},
		{PaymentPending, PaymentFailed, true},
		{PaymentCompleted, PaymentFailed, false},
		{PaymentFailed, PaymentCompleted, false},
		{PaymentCompleted, PaymentPending, false},
		{PaymentPending, PaymentPending, true},
	}
	for _, c := range cases {
		if got := c.from.CanTransition(c.to); got != c.want {
			t.Errorf("%s -> %s = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestTourStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to TourStatus
		want     bool
	}{
		{TourPending, TourConfirmed, true},
		{TourPending, TourCancelled, true},
		{TourPending, TourCompleted, false},
		{TourConfirmed, TourCompleted, true},
		{TourConfirmed, TourCancelled, true},
		{TourCompleted, TourConfirmed, false},
		{TourCancelled, TourPending, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransition(c.to); got != c.want {
			t.Errorf("%s -> %s = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestStatusValid(t *testing.T) {
	if OrderStatus("unknown").Valid() {
		t.Error("unknown order status should be invalid")
	}
	if PaymentStatus("refunded").Valid() {
		t.Error("refunded is not a payment status")
	}
	if TourStatus("").Valid() {
		t.Error("empty tour status should be invalid")
	}
	if !OrderShipped.Valid() || !PaymentCompleted.Valid() || !TourConfirmed.Valid() {
		t.Error("declared statuses should be valid")
	}
}

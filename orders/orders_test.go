package orders

import (
	"strings"
	"testing"

	"brookside/models"
)

func validOrder() *models.Order {
	return &models.Order{
		Items:           []models.OrderItem{{ProductID: "p1", Quantity: 2}},
		TotalAmount:     19.98,
		ShippingAddress: "12 Farm Lane",
		PaymentMethod:   "card",
	}
}

func TestValidateNewOrderAccepts(t *testing.T) {
	if msg, ok := ValidateNewOrder(validOrder()); !ok {
		t.Errorf("valid order rejected: %s", msg)
	}
}

func TestValidateNewOrderRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.Order)
	}{
		{"no items", func(o *models.Order) { o.Items = nil }},
		{"item without product", func(o *models.Order) { o.Items[0].ProductID = "" }},
		{"zero quantity", func(o *models.Order) { o.Items[0].Quantity = 0 }},
		{"negative total", func(o *models.Order) { o.TotalAmount = -1 }},
		{"no shipping address", func(o *models.Order) { o.ShippingAddress = "" }},
		{"no payment method", func(o *models.Order) { o.PaymentMethod = "" }},
	}
	for _, c := range cases {
		o := validOrder()
		c.mutate(o)
		if _, ok := ValidateNewOrder(o); ok {
			t.Errorf("%s: expected rejection", c.name)
		}
	}
}

func TestInvoicePayloadIsKeyed(t *testing.T) {
	h1 := NewHandler([]byte("key-one"))
	h2 := NewHandler([]byte("key-two"))

	p1 := h1.invoicePayload("o1", "u1")
	p2 := h2.invoicePayload("o1", "u1")

	if !strings.HasPrefix(p1, "o1|u1|") {
		t.Errorf("payload = %q, want o1|u1| prefix", p1)
	}
	if p1 == p2 {
		t.Error("payloads signed with different keys should differ")
	}
	if h1.invoicePayload("o1", "u1") != p1 {
		t.Error("payload should be deterministic for the same key")
	}
}

package products

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"brookside/models"

	"github.com/julienschmidt/httprouter"
)

func validProduct() *models.Product {
	return &models.Product{
		Name:        "Whole Milk 1L",
		Description: "Fresh whole milk from grass-fed cows",
		Price:       2.49,
		Category:    "milk",
		SKU:         "MILK-1L",
	}
}

func TestValidateProductAccepts(t *testing.T) {
	if msg, ok := validateProduct(validProduct()); !ok {
		t.Errorf("valid product rejected: %s", msg)
	}
	p := validProduct()
	p.Price = 0 // free samples are allowed
	if _, ok := validateProduct(p); !ok {
		t.Error("zero price should be accepted")
	}
}

func TestUpdateProductNullBody(t *testing.T) {
	// a body of JSON null decodes into a nil map without error and must
	// be rejected, not written to
	req := httptest.NewRequest(http.MethodPut, "/api/products/p1", strings.NewReader("null"))
	rec := httptest.NewRecorder()

	UpdateProduct(rec, req, httprouter.Params{{Key: "id", Value: "p1"}})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestValidateUpdateFieldsAccepts(t *testing.T) {
	fields := map[string]any{
		"name":     "Whole Milk 2L",
		"price":    3.49,
		"in_stock": false,
		"featured": true,
		"category": "milk",
	}
	if msg, ok := validateUpdateFields(fields); !ok {
		t.Errorf("valid fields rejected: %s", msg)
	}
	if msg, ok := validateUpdateFields(map[string]any{}); !ok {
		t.Errorf("empty update rejected: %s", msg)
	}
}

func TestValidateUpdateFieldsRejects(t *testing.T) {
	cases := []struct {
		name   string
		fields map[string]any
	}{
		{"string price", map[string]any{"price": "abc"}},
		{"string in_stock", map[string]any{"in_stock": "yes"}},
		{"numeric name", map[string]any{"name": 7.0}},
		{"bool sku", map[string]any{"sku": true}},
		{"negative price", map[string]any{"price": -1.0}},
		{"unknown category", map[string]any{"category": "bread"}},
		{"unknown field", map[string]any{"rating": 5.0}},
	}
	for _, c := range cases {
		if _, ok := validateUpdateFields(c.fields); ok {
			t.Errorf("%s: expected rejection", c.name)
		}
	}
}

func TestValidateProductRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.Product)
	}{
		{"empty name", func(p *models.Product) { p.Name = "" }},
		{"empty description", func(p *models.Product) { p.Description = "" }},
		{"negative price", func(p *models.Product) { p.Price = -0.01 }},
		{"empty sku", func(p *models.Product) { p.SKU = "" }},
		{"unknown category", func(p *models.Product) { p.Category = "bread" }},
	}
	for _, c := range cases {
		p := validProduct()
		c.mutate(p)
		if _, ok := validateProduct(p); ok {
			t.Errorf("%s: expected rejection", c.name)
		}
	}
}

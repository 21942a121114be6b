package utils

import (
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestParsePagination(t *testing.T) {
	cases := []struct {
		url       string
		wantSkip  int64
		wantLimit int64
	}{
		{"/api/products", 0, 20},
		{"/api/products?limit=5", 0, 5},
		{"/api/products?limit=500", 0, 100},
		{"/api/products?skip=40&limit=10", 40, 10},
		{"/api/products?skip=-3&limit=0", 0, 20},
		{"/api/products?skip=abc&limit=xyz", 0, 20},
	}
	for _, c := range cases {
		r := httptest.NewRequest("GET", c.url, nil)
		skip, limit := ParsePagination(r, 20, 100)
		if skip != c.wantSkip || limit != c.wantLimit {
			t.Errorf("%s: got (%d, %d), want (%d, %d)", c.url, skip, limit, c.wantSkip, c.wantLimit)
		}
	}
}

func TestParseSort(t *testing.T) {
	fallback := bson.D{{Key: "name", Value: 1}}

	cases := []struct {
		param string
		want  bson.D
	}{
		{"price_asc", bson.D{{Key: "price", Value: 1}}},
		{"price_desc", bson.D{{Key: "price", Value: -1}}},
		{"name_desc", bson.D{{Key: "name", Value: -1}}},
		{"newest", bson.D{{Key: "createdAt", Value: -1}}},
		{"", fallback},
		{"bogus", fallback},
	}
	for _, c := range cases {
		got := ParseSort(c.param, fallback)
		if len(got) != 1 || got[0].Key != c.want[0].Key || got[0].Value != c.want[0].Value {
			t.Errorf("ParseSort(%q) = %v, want %v", c.param, got, c.want)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Amy@Example.COM "); got != "amy@example.com" {
		t.Errorf("got %q", got)
	}
}

func TestValidEmail(t *testing.T) {
	for _, e := range []string{"amy@example.com", "a.b+c@farm.co"} {
		if !ValidEmail(e) {
			t.Errorf("%q should be valid", e)
		}
	}
	for _, e := range []string{"", "not-an-email", "@example.com"} {
		if ValidEmail(e) {
			t.Errorf("%q should be invalid", e)
		}
	}
}

package models

import "testing"

func TestRecomputeAverageRating(t *testing.T) {
	p := &Product{}

	p.RecomputeAverageRating()
	if p.AverageRating != 0 {
		t.Errorf("no reviews: average = %v, want 0", p.AverageRating)
	}

	p.Reviews = []Review{{Rating: 4}, {Rating: 5}, {Rating: 3}}
	p.RecomputeAverageRating()
	if p.AverageRating != 4 {
		t.Errorf("average = %v, want 4", p.AverageRating)
	}

	p.Reviews = append(p.Reviews, Review{Rating: 2})
	p.RecomputeAverageRating()
	if p.AverageRating != 3.5 {
		t.Errorf("average = %v, want 3.5", p.AverageRating)
	}
}

func TestValidProductCategory(t *testing.T) {
	for _, c := range []string{"milk", "cheese", "butter", "yogurt", "cream", "ice-cream", "ghee"} {
		if !ValidProductCategory(c) {
			t.Errorf("%q should be a valid category", c)
		}
	}
	for _, c := range []string{"", "Milk", "bread", "icecream"} {
		if ValidProductCategory(c) {
			t.Errorf("%q should not be a valid category", c)
		}
	}
}

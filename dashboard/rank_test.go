package dashboard

import "testing"

func TestRankPopularOrdersByQuantity(t *testing.T) {
	in := []PopularProduct{
		{ProductID: "p1", TotalQuantity: 3},
		{ProductID: "p2", TotalQuantity: 10},
		{ProductID: "p3", TotalQuantity: 7},
	}

	out := rankPopular(in, 5)
	want := []string{"p2", "p3", "p1"}
	for i, id := range want {
		if out[i].ProductID != id {
			t.Errorf("out[%d] = %s, want %s", i, out[i].ProductID, id)
		}
	}
}

func TestRankPopularBreaksTiesByProductID(t *testing.T) {
	in := []PopularProduct{
		{ProductID: "p9", TotalQuantity: 5},
		{ProductID: "p2", TotalQuantity: 5},
		{ProductID: "p5", TotalQuantity: 5},
	}

	out := rankPopular(in, 5)
	want := []string{"p2", "p5", "p9"}
	for i, id := range want {
		if out[i].ProductID != id {
			t.Errorf("out[%d] = %s, want %s", i, out[i].ProductID, id)
		}
	}
}

func TestRankPopularTiedAcrossCutoff(t *testing.T) {
	// a full tie wider than the cutoff must always keep the same five
	in := []PopularProduct{}
	for _, id := range []string{"p07", "p03", "p10", "p01", "p09", "p05", "p02", "p08"} {
		in = append(in, PopularProduct{ProductID: id, TotalQuantity: 4})
	}

	out := rankPopular(in, 5)
	want := []string{"p01", "p02", "p03", "p05", "p07"}
	if len(out) != len(want) {
		t.Fatalf("len = %d, want %d", len(out), len(want))
	}
	for i, id := range want {
		if out[i].ProductID != id {
			t.Errorf("out[%d] = %s, want %s", i, out[i].ProductID, id)
		}
	}
}

func TestRankPopularTruncates(t *testing.T) {
	in := make([]PopularProduct, 0, 8)
	for i := 0; i < 8; i++ {
		in = append(in, PopularProduct{ProductID: string(rune('a' + i)), TotalQuantity: i})
	}

	out := rankPopular(in, 5)
	if len(out) != 5 {
		t.Fatalf("len = %d, want 5", len(out))
	}
	if out[0].TotalQuantity != 7 {
		t.Errorf("top quantity = %d, want 7", out[0].TotalQuantity)
	}
}

package dashboard

import "sort"

// PopularProduct is one row of the top-products table.
type PopularProduct struct {
	ProductID     string  `json:"productid" bson:"_id"`
	Name          string  `json:"name" bson:"name"`
	Price         float64 `json:"price" bson:"price"`
	TotalQuantity int     `json:"total_quantity" bson:"total_quantity"`
}

// rankPopular sorts by quantity descending and breaks ties on product
// id so the ordering is stable across runs, then keeps the top n.
func rankPopular(products []PopularProduct, n int) []PopularProduct {
	sort.Slice(products, func(i, j int) bool {
		if products[i].TotalQuantity != products[j].TotalQuantity {
			return products[i].TotalQuantity > products[j].TotalQuantity
		}
		return products[i].ProductID < products[j].ProductID
	})
	if len(products) > n {
		products = products[:n]
	}
	return products
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ReviewID  string    `json:"reviewid" bson:"reviewid"`
	UserID    string    `json:"userid" bson:"userid"`
	UserName  string    `json:"user_name" bson:"user_name"`
	Rating    int       `json:"rating" bson:"rating"`
	Comment   string    `json:"comment" bson:"comment"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

type Product struct {
	ID            primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	ProductID     string             `json:"productid" bson:"productid"`
	Name          string             `json:"name" bson:"name"`
	Description   string             `json:"description" bson:"description"`
	Price         float64            `json:"price" bson:"price"`
	Image         string             `json:"image" bson:"image"`
	Thumbnail     string             `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	Category      string             `json:"category" bson:"category"`
	InStock       bool               `json:"in_stock" bson:"in_stock"`
	Featured      bool               `json:"featured" bson:"featured"`
	SKU           string             `json:"sku" bson:"sku"`
	Reviews       []Review           `json:"reviews" bson:"reviews"`
	AverageRating float64            `json:"average_rating" bson:"average_rating"`
	CreatedAt     time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updatedAt"`
}

var productCategories = map[string]bool{
	"milk":      true,
	"cheese":    true,
	"butter":    true,
	"yogurt":    true,
	"cream":     true,
	"ice-cream": true,
	"ghee":      true,
}

func ValidProductCategory(c string) bool {
	return productCategories[c]
}

// RecomputeAverageRating refreshes the denormalized average. Must be
// called whenever the review list changes.
func (p *Product) RecomputeAverageRating() {
	if len(p.Reviews) == 0 {
		p.AverageRating = 0
		return
	}
	var sum int
	for _, rev := range p.Reviews {
		sum += rev.Rating
	}
	p.AverageRating = float64(sum) / float64(len(p.Reviews))
}

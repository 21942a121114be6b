package products

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"brookside/db"
	"brookside/models"
	"brookside/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// POST /api/products/:id/reviews  (authenticated)
//
// Reviews are embedded in the product document; the denormalized
// average rating is recomputed in the same update.
func AddReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user := utils.GetUserFromRequest(r)
	if user == nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	var input struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Rating < 1 || input.Rating > 5 || input.Comment == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Rating (1-5) and comment are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var product models.Product
	if err := db.ProductCollection.FindOne(ctx, bson.M{"productid": ps.ByName("id")}).Decode(&product); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	for _, rev := range product.Reviews {
		if rev.UserID == user.UserID {
			utils.RespondWithError(w, http.StatusBadRequest, "You have already reviewed this product")
			return
		}
	}

	review := models.Review{
		ReviewID:  utils.GenerateRandomString(16),
		UserID:    user.UserID,
		UserName:  user.Name,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}

	product.Reviews = append(product.Reviews, review)
	product.RecomputeAverageRating()

	_, err := db.ProductCollection.UpdateOne(ctx,
		bson.M{"productid": product.ProductID},
		bson.M{"$set": bson.M{
			"reviews":        product.Reviews,
			"average_rating": product.AverageRating,
			"updatedAt":      time.Now(),
		}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save review")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"review":         review,
		"average_rating": product.AverageRating,
	})
}

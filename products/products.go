package products

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"brookside/db"
	"brookside/models"
	"brookside/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /api/products
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("search")
	featured := r.URL.Query().Get("featured")

	skip, limit := utils.ParsePagination(r, 20, 100)
	sort := utils.ParseSort(r.URL.Query().Get("sort"), bson.D{{Key: "name", Value: 1}})

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if featured == "true" {
		filter["featured"] = true
	}
	if search != "" {
		filter["$or"] = []bson.M{
			utils.RegexFilter("name", search),
			utils.RegexFilter("description", search),
		}
	}

	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(sort)

	items, err := utils.FindAndDecode[models.Product](ctx, db.ProductCollection, filter, findOptions)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	total, err := db.ProductCollection.CountDocuments(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to count products")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"items": items,
		"total": total,
	})
}

// GET /api/products/:id
func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var product models.Product
	err := db.ProductCollection.FindOne(r.Context(), bson.M{"productid": ps.ByName("id")}).Decode(&product)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}

// POST /api/products  (admin)
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if msg, ok := validateProduct(&product); !ok {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	now := time.Now()
	product.ProductID = "p" + uuid.NewString()
	product.Reviews = []models.Review{}
	product.AverageRating = 0
	product.CreatedAt = now
	product.UpdatedAt = now

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.ProductCollection.InsertOne(ctx, product); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusBadRequest, "SKU already in use")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, product)
}

// PUT /api/products/:id  (admin), partial field merge
func UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil || fields == nil {
		// a body of JSON null decodes into a nil map without error
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	// Identity, review and bookkeeping fields are not client-writable.
	for _, k := range []string{"_id", "productid", "reviews", "average_rating", "createdAt", "created_at"} {
		delete(fields, k)
	}
	if msg, ok := validateUpdateFields(fields); !ok {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}
	fields["updatedAt"] = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res := db.ProductCollection.FindOneAndUpdate(ctx,
		bson.M{"productid": ps.ByName("id")},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated models.Product
	if err := res.Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Product not found")
			return
		}
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusBadRequest, "SKU already in use")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update product")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/products/:id  (admin)
func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.ProductCollection.DeleteOne(ctx, bson.M{"productid": ps.ByName("id")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "deleted"})
}

// validateUpdateFields type-checks a partial update so a wrong-typed
// value never reaches $set. JSON numbers always decode as float64.
func validateUpdateFields(fields map[string]any) (string, bool) {
	for k, v := range fields {
		switch k {
		case "name", "description", "image", "thumbnail", "category", "sku":
			if _, ok := v.(string); !ok {
				return k + " must be a string", false
			}
		case "price":
			if _, ok := v.(float64); !ok {
				return "Price must be a number", false
			}
		case "in_stock", "featured":
			if _, ok := v.(bool); !ok {
				return k + " must be a boolean", false
			}
		default:
			return "Unknown field: " + k, false
		}
	}
	if price, ok := fields["price"].(float64); ok && price < 0 {
		return "Price must be non-negative", false
	}
	if category, ok := fields["category"].(string); ok && !models.ValidProductCategory(category) {
		return "Unknown category", false
	}
	return "", true
}

func validateProduct(p *models.Product) (string, bool) {
	switch {
	case p.Name == "":
		return "Name is required", false
	case p.Description == "":
		return "Description is required", false
	case p.Price < 0:
		return "Price must be non-negative", false
	case p.SKU == "":
		return "SKU is required", false
	case !models.ValidProductCategory(p.Category):
		return "Unknown category", false
	}
	return "", true
}

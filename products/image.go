package products

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"brookside/db"
	"brookside/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const productPicDir = "static/productpic"

// PUT /api/products/:id/image  (admin)
//
// Stores the uploaded image plus a 300px-wide thumbnail and records
// both refs on the product.
func UploadProductImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	productID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := db.ProductCollection.FindOne(ctx, bson.M{"productid": productID}).Err()
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "No image file uploaded")
		return
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unsupported image format")
		return
	}

	if err := os.MkdirAll(productPicDir, 0755); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}

	imageName := fmt.Sprintf("%s.jpg", productID)
	thumbName := fmt.Sprintf("%s_thumb.jpg", productID)

	if err := imaging.Save(img, filepath.Join(productPicDir, imageName)); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}

	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(productPicDir, thumbName)); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store thumbnail")
		return
	}

	update := bson.M{
		"image":     "/static/productpic/" + imageName,
		"thumbnail": "/static/productpic/" + thumbName,
		"updatedAt": time.Now(),
	}
	if _, err := db.ProductCollection.UpdateOne(ctx, bson.M{"productid": productID}, bson.M{"$set": update}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update product")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, update)
}

package newsletter

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
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type subscribeAction int

const (
	subscribeNew subscribeAction = iota
	subscribeReactivate
	subscribeConflict
)

// decideSubscribe maps the current record (nil if none) to what the
// subscribe endpoint should do. Inactive records are reactivated in
// place so the original subscribedAt survives an unsubscribe cycle.
func decideSubscribe(existing *models.Subscriber) subscribeAction {
	switch {
	case existing == nil:
		return subscribeNew
	case existing.Active:
		return subscribeConflict
	default:
		return subscribeReactivate
	}
}

// POST /api/newsletter  (public)
func Subscribe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	email := utils.NormalizeEmail(input.Email)
	if !utils.ValidEmail(email) {
		utils.RespondWithError(w, http.StatusBadRequest, "A valid email is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var existing models.Subscriber
	err := db.NewsletterCollection.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	found := err == nil
	if err != nil && err != mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to subscribe")
		return
	}

	var current *models.Subscriber
	if found {
		current = &existing
	}

	switch decideSubscribe(current) {
	case subscribeConflict:
		utils.RespondWithError(w, http.StatusBadRequest, "Email already subscribed")
		return

	case subscribeReactivate:
		res := db.NewsletterCollection.FindOneAndUpdate(ctx,
			bson.M{"email": email},
			bson.M{
				"$set":   bson.M{"active": true},
				"$unset": bson.M{"unsubscribedAt": ""},
			},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		)
		var sub models.Subscriber
		if err := res.Decode(&sub); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to subscribe")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, sub)
		return
	}

	sub := models.Subscriber{
		Email:        email,
		Active:       true,
		SubscribedAt: time.Now(),
	}
	if _, err := db.NewsletterCollection.InsertOne(ctx, sub); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusBadRequest, "Email already subscribed")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to subscribe")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, sub)
}

// POST /api/newsletter/unsubscribe  (public), soft delete, the record
// stays with active=false.
func Unsubscribe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	email := utils.NormalizeEmail(input.Email)
	if !utils.ValidEmail(email) {
		utils.RespondWithError(w, http.StatusBadRequest, "A valid email is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	now := time.Now()
	res := db.NewsletterCollection.FindOneAndUpdate(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"active": false, "unsubscribedAt": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var sub models.Subscriber
	if err := res.Decode(&sub); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Email not subscribed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Unsubscribed"})
}

// GET /api/newsletter/subscribers  (admin), active subscribers only
func GetSubscribers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "subscribedAt", Value: -1}})
	subs, err := utils.FindAndDecode[models.Subscriber](ctx, db.NewsletterCollection, bson.M{"active": true}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch subscribers")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"subscribers": subs})
}

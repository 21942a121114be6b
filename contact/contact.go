package contact

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// POST /api/contact  (public)
func CreateMessage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var msg models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	msg.Email = utils.NormalizeEmail(msg.Email)
	switch {
	case msg.Name == "":
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	case !utils.ValidEmail(msg.Email):
		utils.RespondWithError(w, http.StatusBadRequest, "A valid email is required")
		return
	case msg.Subject == "":
		utils.RespondWithError(w, http.StatusBadRequest, "Subject is required")
		return
	case msg.Message == "":
		utils.RespondWithError(w, http.StatusBadRequest, "Message is required")
		return
	}

	msg.MessageID = "m" + uuid.NewString()
	msg.Read = false
	msg.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.ContactCollection.InsertOne(ctx, msg); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save message")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, msg)
}

// GET /api/contact  (admin), unread first, newest within each group
func GetMessages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "read", Value: 1},
		{Key: "createdAt", Value: -1},
	})
	messages, err := utils.FindAndDecode[models.ContactMessage](ctx, db.ContactCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"messages": messages})
}

// GET /api/contact/:id  (admin)
func GetMessage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var msg models.ContactMessage
	err := db.ContactCollection.FindOne(r.Context(), bson.M{"messageid": ps.ByName("id")}).Decode(&msg)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Message not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, msg)
}

// PUT /api/contact/:id  (admin), toggle the read flag
func UpdateMessage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		Read bool `json:"read"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res := db.ContactCollection.FindOneAndUpdate(ctx,
		bson.M{"messageid": ps.ByName("id")},
		bson.M{"$set": bson.M{"read": input.Read}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated models.ContactMessage
	if err := res.Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Message not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

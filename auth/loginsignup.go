package auth

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"brookside/db"
	"brookside/models"
	"brookside/rdx"
	"brookside/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) registerHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	input.Email = utils.NormalizeEmail(input.Email)
	if input.Name == "" || input.Password == "" || !utils.ValidEmail(input.Email) {
		utils.RespondWithError(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	// Check if user already exists
	err := db.UserCollection.FindOne(r.Context(), bson.M{"email": input.Email}).Err()
	if err == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Email already registered")
		return
	} else if err != mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password for %s: %v", input.Email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to process password")
		return
	}

	now := time.Now()
	user := models.User{
		UserID:       "u" + uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		IsAdmin:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := db.UserCollection.InsertOne(r.Context(), user); err != nil {
		// The unique index on email backs the duplicate check above.
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusBadRequest, "Email already registered")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	if rdx.Conn != nil {
		if err := rdx.RdxSet(fmt.Sprintf("users:%s", user.UserID), user.Name); err != nil {
			log.Printf("Failed to cache username: %v", err)
		}
	}

	token, err := MakeToken(h.secret, &user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"token": token,
		"user":  user.View(),
	})
}

func (h *Handler) loginHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	input.Email = utils.NormalizeEmail(input.Email)
	if input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	// Unknown email and wrong password return the identical error so
	// callers cannot tell which check failed.
	var storedUser models.User
	err := db.UserCollection.FindOne(r.Context(), bson.M{"email": input.Email}).Decode(&storedUser)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedUser.PasswordHash), []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := MakeToken(h.secret, &storedUser)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"token": token,
		"user":  storedUser.View(),
	})
}

func (h *Handler) meHandler(w http.ResponseWriter, r *http.Request) {
	user := utils.GetUserFromRequest(r)
	if user == nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"user": user.View()})
}

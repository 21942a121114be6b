package tours

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

// POST /api/tour-bookings  (public, bookings may be anonymous)
func CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking models.TourBooking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	booking.Email = utils.NormalizeEmail(booking.Email)
	switch {
	case booking.Name == "":
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	case !utils.ValidEmail(booking.Email):
		utils.RespondWithError(w, http.StatusBadRequest, "A valid email is required")
		return
	case booking.GroupSize < 1:
		utils.RespondWithError(w, http.StatusBadRequest, "Group size must be at least 1")
		return
	}
	if _, err := time.Parse("2006-01-02", booking.Date); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Date must be YYYY-MM-DD")
		return
	}

	now := time.Now()
	booking.BookingID = "t" + uuid.NewString()
	booking.Status = models.TourPending
	booking.CreatedAt = now
	booking.UpdatedAt = now

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.TourBookingCollection.InsertOne(ctx, booking); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, booking)
}

// GET /api/tour-bookings  (admin)
func GetBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	bookings, err := utils.FindAndDecode[models.TourBooking](ctx, db.TourBookingCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"bookings": bookings})
}

// GET /api/tour-bookings/:id  (admin)
func GetBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var booking models.TourBooking
	err := db.TourBookingCollection.FindOne(r.Context(), bson.M{"bookingid": ps.ByName("id")}).Decode(&booking)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, booking)
}

// PUT /api/tour-bookings/:id  (admin), status transitions only
func UpdateBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		Status models.TourStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if !input.Status.Valid() {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown status")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var booking models.TourBooking
	if err := db.TourBookingCollection.FindOne(ctx, bson.M{"bookingid": ps.ByName("id")}).Decode(&booking); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}

	if !booking.Status.CanTransition(input.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Illegal status transition")
		return
	}

	res := db.TourBookingCollection.FindOneAndUpdate(ctx,
		bson.M{"bookingid": booking.BookingID},
		bson.M{"$set": bson.M{"status": input.Status, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated models.TourBooking
	if err := res.Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

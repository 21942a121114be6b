package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TourBooking is a farm tour request. Bookings are independent of User
// and may be anonymous.
type TourBooking struct {
	ID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	BookingID string             `json:"bookingid" bson:"bookingid"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Date      string             `json:"date" bson:"date"` // YYYY-MM-DD
	GroupSize int                `json:"group_size" bson:"group_size"`
	Message   string             `json:"message,omitempty" bson:"message,omitempty"`
	Status    TourStatus         `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updatedAt"`
}

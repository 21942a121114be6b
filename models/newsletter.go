package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscriber is soft-deleted: unsubscribing flips Active instead of
// removing the record, so a resubscribe reactivates in place.
type Subscriber struct {
	ID             primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Email          string             `json:"email" bson:"email"`
	Active         bool               `json:"active" bson:"active"`
	SubscribedAt   time.Time          `json:"subscribed_at" bson:"subscribedAt"`
	UnsubscribedAt *time.Time         `json:"unsubscribed_at,omitempty" bson:"unsubscribedAt,omitempty"`
}

package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is a stored record only; nothing delivers these in real time.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Type      string             `bson:"type"` // offer_created, offer_decided
	Message   string             `bson:"message"`
	RelatedID string             `bson:"related_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

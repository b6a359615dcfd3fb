package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusChange is an audit record written whenever a received offer is
// accepted or rejected. Writes are best-effort; the relational rows are the
// source of truth.
type StatusChange struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	ReceivedOfferID string             `bson:"received_offer_id"`
	TradeOfferID    string             `bson:"trade_offer_id"`
	OldStatus       string             `bson:"old_status"`
	NewStatus       string             `bson:"new_status"`
	ChangedBy       string             `bson:"changed_by"`
	CreatedAt       time.Time          `bson:"created_at"`
}

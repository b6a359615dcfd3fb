package entity

import (
	"time"

	"github.com/google/uuid"
)

type OfferStatus string

const (
	StatusPending  OfferStatus = "pending"
	StatusAccepted OfferStatus = "accepted"
	StatusRejected OfferStatus = "rejected"
)

// IsDecision reports whether s is a status the receiver may set.
// Pending is the initial state only; it is never a transition target.
func (s OfferStatus) IsDecision() bool {
	return s == StatusAccepted || s == StatusRejected
}

// TradeOffer is the offerer-side record. BarterItem and BarterOwner are
// snapshots taken when the offer is created; later edits to the barter do
// not touch them.
type TradeOffer struct {
	ID              uuid.UUID   `db:"id" json:"id"`
	BarterID        uuid.UUID   `db:"barter_id" json:"barter_id"`
	UserID          uuid.UUID   `db:"user_id" json:"user_id"`
	BarterItem      string      `db:"barter_item" json:"barter_item"`
	BarterOwner     string      `db:"barter_owner" json:"barter_owner"`
	OffererName     string      `db:"offerer_name" json:"offerer_name"`
	OffererMobile   string      `db:"offerer_mobile" json:"offerer_mobile"`
	ItemDescription string      `db:"item_description" json:"item_description"`
	Status          OfferStatus `db:"status" json:"status"`
	CreatedAt       time.Time   `db:"created_at" json:"created_at"`
}

// ReceivedTradeOffer is the receiver-side companion row, strictly one per
// TradeOffer. It lets the barter owner query and act on incoming offers.
type ReceivedTradeOffer struct {
	ID             uuid.UUID   `db:"id" json:"id"`
	TradeOfferID   uuid.UUID   `db:"trade_offer_id" json:"trade_offer_id"`
	ReceiverUserID uuid.UUID   `db:"receiver_user_id" json:"receiver_user_id"`
	Status         OfferStatus `db:"status" json:"status"`
	CreatedAt      time.Time   `db:"created_at" json:"created_at"`
}

// ReceivedOfferDetail joins a received record with its trade offer for the
// receiver's inbox view.
type ReceivedOfferDetail struct {
	ReceivedTradeOffer
	Offer TradeOffer `json:"offer"`
}

type CreateOfferInput struct {
	Name            string `json:"name" binding:"required"`
	Mobile          string `json:"mobile" binding:"required"`
	ItemDescription string `json:"item_description" binding:"required"`
}

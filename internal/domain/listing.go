package entity

import (
	"time"

	"github.com/google/uuid"
)

// ListingKind selects one of the two listing boards. Barters and requests
// share a shape but live in independent collections.
type ListingKind string

const (
	KindBarter  ListingKind = "barter"
	KindRequest ListingKind = "request"
)

type Listing struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Name      string    `db:"name" json:"name"`
	Mobile    string    `db:"mobile" json:"mobile"`
	Item      string    `db:"item" json:"item"`
	Hostel    string    `db:"hostel" json:"hostel"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	IsActive  bool      `db:"is_active" json:"is_active"`

	// OwnerUsername is populated by queries that join users; it is not a
	// column on the listing tables.
	OwnerUsername string `json:"owner_username,omitempty"`
}

type ListingInput struct {
	Name   string `json:"name" binding:"required"`
	Mobile string `json:"mobile" binding:"required"`
	Item   string `json:"item" binding:"required"`
	Hostel string `json:"hostel" binding:"required"`
}

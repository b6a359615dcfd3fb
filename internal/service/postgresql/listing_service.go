package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/dbx"
	entity "github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/domain"
	repo "github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/repository/postgresql"
)

var (
	// ErrListingNotFound is returned when the listing does not exist, is
	// already inactive, or is owned by someone else. One sentinel for all
	// three keeps ownership unprobeable.
	ErrListingNotFound = errors.New("listing not found")
	ErrMissingField    = errors.New("all fields are required")
)

// ListingService covers both boards: barters (items offered) and requests
// (items wanted). The two collections are independent but identical in
// shape, so every operation takes a ListingKind.
type ListingService struct {
	db    *sql.DB
	repos repo.Factory
}

func NewListingService(db *sql.DB, repos repo.Factory) *ListingService {
	return &ListingService{db: db, repos: repos}
}

func (s *ListingService) repo(kind entity.ListingKind, db dbx.DBTX) repo.ListingRepository {
	if kind == entity.KindRequest {
		return s.repos.Requests(db)
	}
	return s.repos.Barters(db)
}

func (s *ListingService) Create(ctx context.Context, kind entity.ListingKind, ownerID uuid.UUID, input entity.ListingInput) (*entity.Listing, error) {
	if input.Name == "" || input.Mobile == "" || input.Item == "" || input.Hostel == "" {
		return nil, ErrMissingField
	}

	listing := &entity.Listing{
		ID:        uuid.New(),
		UserID:    ownerID,
		Name:      input.Name,
		Mobile:    input.Mobile,
		Item:      input.Item,
		Hostel:    input.Hostel,
		CreatedAt: time.Now().UTC(),
		IsActive:  true,
	}

	if err := s.repo(kind, s.db).Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// Edit updates a listing's fields. The ownership check happens in the UPDATE
// itself, so a row that exists but is not the caller's stays byte-for-byte
// unchanged.
func (s *ListingService) Edit(ctx context.Context, kind entity.ListingKind, id, ownerID uuid.UUID, input entity.ListingInput) error {
	if input.Name == "" || input.Mobile == "" || input.Item == "" || input.Hostel == "" {
		return ErrMissingField
	}

	updated, err := s.repo(kind, s.db).Update(ctx, id, ownerID, input)
	if err != nil {
		return err
	}
	if !updated {
		return ErrListingNotFound
	}
	return nil
}

func (s *ListingService) SoftDelete(ctx context.Context, kind entity.ListingKind, id, ownerID uuid.UUID) error {
	deactivated, err := s.repo(kind, s.db).Deactivate(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !deactivated {
		return ErrListingNotFound
	}
	return nil
}

func (s *ListingService) ListActive(ctx context.Context, kind entity.ListingKind) ([]entity.Listing, error) {
	return s.repo(kind, s.db).ListActive(ctx)
}

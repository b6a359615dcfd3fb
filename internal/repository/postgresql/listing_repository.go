package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/dbx"
	entity "github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/domain"
)

type ListingRepository interface {
	Create(ctx context.Context, l *entity.Listing) error
	Update(ctx context.Context, id, ownerID uuid.UUID, in entity.ListingInput) (bool, error)
	Deactivate(ctx context.Context, id, ownerID uuid.UUID) (bool, error)
	ListActive(ctx context.Context) ([]entity.Listing, error)
	GetActiveWithOwner(ctx context.Context, id uuid.UUID) (*entity.Listing, error)
}

// Barters and requests share one implementation; only the table differs.
// The table name is always one of the two constants below, never user input.
const (
	tableBarters  = "barters"
	tableRequests = "requests"
)

type listingRepository struct {
	db    dbx.DBTX
	table string
}

func NewBarterRepository(db dbx.DBTX) ListingRepository {
	return &listingRepository{db: db, table: tableBarters}
}

func NewRequestRepository(db dbx.DBTX) ListingRepository {
	return &listingRepository{db: db, table: tableRequests}
}

func (r *listingRepository) Create(ctx context.Context, l *entity.Listing) error {
	query := fmt.Sprintf(`
        INSERT INTO %s (id, user_id, name, mobile, item, hostel, created_at, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, r.table)

	_, err := r.db.ExecContext(ctx, query,
		l.ID, l.UserID, l.Name, l.Mobile, l.Item, l.Hostel, l.CreatedAt, l.IsActive,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Update rewrites the editable fields, but only when the row belongs to
// ownerID. The boolean reports whether a row was actually changed.
func (r *listingRepository) Update(ctx context.Context, id, ownerID uuid.UUID, in entity.ListingInput) (bool, error) {
	query := fmt.Sprintf(`
        UPDATE %s
        SET name = $1, mobile = $2, item = $3, hostel = $4
        WHERE id = $5 AND user_id = $6 AND is_active
    `, r.table)

	res, err := r.db.ExecContext(ctx, query, in.Name, in.Mobile, in.Item, in.Hostel, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

// Deactivate soft-deletes: the row stays for history but leaves all active
// views and stops accepting trade offers.
func (r *listingRepository) Deactivate(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	query := fmt.Sprintf(`
        UPDATE %s
        SET is_active = FALSE
        WHERE id = $1 AND user_id = $2 AND is_active
    `, r.table)

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *listingRepository) ListActive(ctx context.Context) ([]entity.Listing, error) {
	query := fmt.Sprintf(`
        SELECT l.id, l.user_id, l.name, l.mobile, l.item, l.hostel, l.created_at, l.is_active, u.username
        FROM %s l
        JOIN users u ON u.id = l.user_id
        WHERE l.is_active
        ORDER BY l.created_at DESC, l.id DESC
    `, r.table)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var listings []entity.Listing
	for rows.Next() {
		var l entity.Listing
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.Name, &l.Mobile, &l.Item, &l.Hostel, &l.CreatedAt, &l.IsActive, &l.OwnerUsername,
		); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return listings, nil
}

// GetActiveWithOwner resolves an active listing together with its owner's
// username. Inactive and missing rows both come back as ErrNotFound.
func (r *listingRepository) GetActiveWithOwner(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	query := fmt.Sprintf(`
        SELECT l.id, l.user_id, l.name, l.mobile, l.item, l.hostel, l.created_at, l.is_active, u.username
        FROM %s l
        JOIN users u ON u.id = l.user_id
        WHERE l.id = $1 AND l.is_active
    `, r.table)

	var l entity.Listing
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&l.ID, &l.UserID, &l.Name, &l.Mobile, &l.Item, &l.Hostel, &l.CreatedAt, &l.IsActive, &l.OwnerUsername,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &l, nil
}

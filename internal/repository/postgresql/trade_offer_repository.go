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

type TradeOfferRepository interface {
	CreateOffer(ctx context.Context, o *entity.TradeOffer) error
	CreateReceived(ctx context.Context, r *entity.ReceivedTradeOffer) error
	GetReceivedByID(ctx context.Context, id uuid.UUID) (*entity.ReceivedTradeOffer, error)
	UpdateReceivedStatus(ctx context.Context, id uuid.UUID, status entity.OfferStatus) error
	UpdateOfferStatus(ctx context.Context, id uuid.UUID, status entity.OfferStatus) error
	ListByOfferer(ctx context.Context, userID uuid.UUID) ([]entity.TradeOffer, error)
	ListReceivedByUser(ctx context.Context, userID uuid.UUID) ([]entity.ReceivedOfferDetail, error)
	CountPendingReceived(ctx context.Context, userID uuid.UUID) (int, error)
}

type tradeOfferRepository struct {
	db dbx.DBTX
}

func NewTradeOfferRepository(db dbx.DBTX) TradeOfferRepository {
	return &tradeOfferRepository{db: db}
}

func (r *tradeOfferRepository) CreateOffer(ctx context.Context, o *entity.TradeOffer) error {
	query := `
        INSERT INTO trade_offers (id, barter_id, user_id, barter_item, barter_owner, offerer_name, offerer_mobile, item_description, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `

	_, err := r.db.ExecContext(ctx, query,
		o.ID, o.BarterID, o.UserID, o.BarterItem, o.BarterOwner,
		o.OffererName, o.OffererMobile, o.ItemDescription, o.Status, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *tradeOfferRepository) CreateReceived(ctx context.Context, rec *entity.ReceivedTradeOffer) error {
	query := `
        INSERT INTO received_trade_offers (id, trade_offer_id, receiver_user_id, status, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.TradeOfferID, rec.ReceiverUserID, rec.Status, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *tradeOfferRepository) GetReceivedByID(ctx context.Context, id uuid.UUID) (*entity.ReceivedTradeOffer, error) {
	query := `
        SELECT id, trade_offer_id, receiver_user_id, status, created_at
        FROM received_trade_offers
        WHERE id = $1
    `

	rec := &entity.ReceivedTradeOffer{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rec.ID, &rec.TradeOfferID, &rec.ReceiverUserID, &rec.Status, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rec, nil
}

func (r *tradeOfferRepository) UpdateReceivedStatus(ctx context.Context, id uuid.UUID, status entity.OfferStatus) error {
	query := `
        UPDATE received_trade_offers
        SET status = $1
        WHERE id = $2
    `

	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *tradeOfferRepository) UpdateOfferStatus(ctx context.Context, id uuid.UUID, status entity.OfferStatus) error {
	query := `
        UPDATE trade_offers
        SET status = $1
        WHERE id = $2
    `

	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *tradeOfferRepository) ListByOfferer(ctx context.Context, userID uuid.UUID) ([]entity.TradeOffer, error) {
	query := `
        SELECT id, barter_id, user_id, barter_item, barter_owner, offerer_name, offerer_mobile, item_description, status, created_at
        FROM trade_offers
        WHERE user_id = $1
        ORDER BY created_at DESC, id DESC
    `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var offers []entity.TradeOffer
	for rows.Next() {
		var o entity.TradeOffer
		if err := rows.Scan(
			&o.ID, &o.BarterID, &o.UserID, &o.BarterItem, &o.BarterOwner,
			&o.OffererName, &o.OffererMobile, &o.ItemDescription, &o.Status, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return offers, nil
}

func (r *tradeOfferRepository) ListReceivedByUser(ctx context.Context, userID uuid.UUID) ([]entity.ReceivedOfferDetail, error) {
	query := `
        SELECT r.id, r.trade_offer_id, r.receiver_user_id, r.status, r.created_at,
               o.id, o.barter_id, o.user_id, o.barter_item, o.barter_owner, o.offerer_name, o.offerer_mobile, o.item_description, o.status, o.created_at
        FROM received_trade_offers r
        JOIN trade_offers o ON o.id = r.trade_offer_id
        WHERE r.receiver_user_id = $1
        ORDER BY r.created_at DESC, r.id DESC
    `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var details []entity.ReceivedOfferDetail
	for rows.Next() {
		var d entity.ReceivedOfferDetail
		if err := rows.Scan(
			&d.ID, &d.TradeOfferID, &d.ReceiverUserID, &d.Status, &d.CreatedAt,
			&d.Offer.ID, &d.Offer.BarterID, &d.Offer.UserID, &d.Offer.BarterItem, &d.Offer.BarterOwner,
			&d.Offer.OffererName, &d.Offer.OffererMobile, &d.Offer.ItemDescription, &d.Offer.Status, &d.Offer.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return details, nil
}

func (r *tradeOfferRepository) CountPendingReceived(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM received_trade_offers
        WHERE receiver_user_id = $1 AND status = 'pending'
    `

	var n int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

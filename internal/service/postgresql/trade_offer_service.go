package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/dbx"
	entity "github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/domain"
	"github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/logging"
	"github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/repository/mongodb"
	repo "github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/repository/postgresql"
)

var (
	ErrBarterNotFound = errors.New("barter not found or no longer active")
	// ErrOfferNotFound covers both a missing received offer and one that
	// belongs to someone else, so callers cannot probe for existence.
	ErrOfferNotFound = errors.New("received offer not found")
	ErrInvalidStatus = errors.New("status must be accepted or rejected")
)

// TradeOfferService owns the offer workflow: creating an offer fans out a
// receiver-side record, and status decisions move both records through
// pending -> accepted | rejected together.
type TradeOfferService struct {
	db    *sql.DB
	repos repo.Factory
	audit mongodb.AuditRepository
	log   logging.Logger
}

func NewTradeOfferService(db *sql.DB, repos repo.Factory, audit mongodb.AuditRepository, log logging.Logger) *TradeOfferService {
	return &TradeOfferService{
		db:    db,
		repos: repos,
		audit: audit,
		log:   log,
	}
}

// CreateOffer inserts a TradeOffer and its ReceivedTradeOffer companion in
// one transaction. The barter must be active; its item text and owner
// username are snapshotted onto the offer and never synced with later edits.
// Users may offer on their own listings and may offer more than once.
func (s *TradeOfferService) CreateOffer(ctx context.Context, barterID, offererID uuid.UUID, input entity.CreateOfferInput) (*entity.TradeOffer, error) {
	if input.Name == "" || input.Mobile == "" || input.ItemDescription == "" {
		return nil, ErrMissingField
	}

	offer := &entity.TradeOffer{}
	var receiverID uuid.UUID

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		barter, err := s.repos.Barters(tx).GetActiveWithOwner(ctx, barterID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrBarterNotFound
			}
			return err
		}
		receiverID = barter.UserID

		now := time.Now().UTC()
		*offer = entity.TradeOffer{
			ID:              uuid.New(),
			BarterID:        barter.ID,
			UserID:          offererID,
			BarterItem:      barter.Item,
			BarterOwner:     barter.OwnerUsername,
			OffererName:     input.Name,
			OffererMobile:   input.Mobile,
			ItemDescription: input.ItemDescription,
			Status:          entity.StatusPending,
			CreatedAt:       now,
		}

		offers := s.repos.TradeOffers(tx)
		if err := offers.CreateOffer(ctx, offer); err != nil {
			return err
		}

		received := &entity.ReceivedTradeOffer{
			ID:             uuid.New(),
			TradeOfferID:   offer.ID,
			ReceiverUserID: receiverID,
			Status:         entity.StatusPending,
			CreatedAt:      now,
		}
		return offers.CreateReceived(ctx, received)
	})
	if err != nil {
		return nil, err
	}

	s.saveNotification(ctx, receiverID, "offer_created",
		fmt.Sprintf("%s offered %q for your %q", input.Name, input.ItemDescription, offer.BarterItem),
		offer.ID)

	return offer, nil
}

// UpdateOfferStatus is the receiver's accept/reject decision. Only the
// receiving owner may call it; the new status is written to the received
// record and propagated to the linked TradeOffer in the same transaction.
// Repeating a decision is idempotent in effect.
func (s *TradeOfferService) UpdateOfferStatus(ctx context.Context, receivedOfferID uuid.UUID, status entity.OfferStatus, actorID uuid.UUID) error {
	if !status.IsDecision() {
		return ErrInvalidStatus
	}

	var (
		oldStatus    entity.OfferStatus
		tradeOfferID uuid.UUID
	)

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		offers := s.repos.TradeOffers(tx)

		rec, err := offers.GetReceivedByID(ctx, receivedOfferID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrOfferNotFound
			}
			return err
		}
		if rec.ReceiverUserID != actorID {
			return ErrOfferNotFound
		}
		oldStatus = rec.Status
		tradeOfferID = rec.TradeOfferID

		if err := offers.UpdateReceivedStatus(ctx, rec.ID, status); err != nil {
			return err
		}
		return offers.UpdateOfferStatus(ctx, rec.TradeOfferID, status)
	})
	if err != nil {
		return err
	}

	s.saveStatusChange(ctx, receivedOfferID, tradeOfferID, oldStatus, status, actorID)
	return nil
}

func (s *TradeOfferService) OffersMadeBy(ctx context.Context, userID uuid.UUID) ([]entity.TradeOffer, error) {
	return s.repos.TradeOffers(s.db).ListByOfferer(ctx, userID)
}

func (s *TradeOfferService) OffersReceivedBy(ctx context.Context, userID uuid.UUID) ([]entity.ReceivedOfferDetail, error) {
	return s.repos.TradeOffers(s.db).ListReceivedByUser(ctx, userID)
}

func (s *TradeOfferService) PendingReceivedCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repos.TradeOffers(s.db).CountPendingReceived(ctx, userID)
}

func (s *TradeOfferService) saveNotification(ctx context.Context, userID uuid.UUID, notiType, message string, relatedID uuid.UUID) {
	noti := &entity.Notification{
		UserID:    userID.String(),
		Type:      notiType,
		Message:   message,
		RelatedID: relatedID.String(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.audit.SaveNotification(noti); err != nil {
		s.log.Warn(ctx, "failed to save notification", "user_id", userID, "error", err)
	}
}

func (s *TradeOfferService) saveStatusChange(ctx context.Context, receivedID, offerID uuid.UUID, oldStatus, newStatus entity.OfferStatus, changedBy uuid.UUID) {
	change := &entity.StatusChange{
		ReceivedOfferID: receivedID.String(),
		TradeOfferID:    offerID.String(),
		OldStatus:       string(oldStatus),
		NewStatus:       string(newStatus),
		ChangedBy:       changedBy.String(),
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.audit.SaveStatusChange(change); err != nil {
		s.log.Warn(ctx, "failed to save status change", "received_offer_id", receivedID, "error", err)
	}
}

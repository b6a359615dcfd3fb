package service

import (
	"context"
	"database/sql"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/dbx"
	entity "github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/domain"
	repo "github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/repository/postgresql"
)

// The fakes below implement the repository interfaces over plain maps so the
// service tests can exercise orchestration and the state machine without a
// database. Transaction begin/commit runs against an in-memory sqlite handle;
// rollback semantics themselves are covered by the dbx package tests.

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file::memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type memStore struct {
	users    map[uuid.UUID]*entity.User
	barters  map[uuid.UUID]*entity.Listing
	requests map[uuid.UUID]*entity.Listing
	offers   map[uuid.UUID]*entity.TradeOffer
	received map[uuid.UUID]*entity.ReceivedTradeOffer

	failCreateReceived error
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[uuid.UUID]*entity.User),
		barters:  make(map[uuid.UUID]*entity.Listing),
		requests: make(map[uuid.UUID]*entity.Listing),
		offers:   make(map[uuid.UUID]*entity.TradeOffer),
		received: make(map[uuid.UUID]*entity.ReceivedTradeOffer),
	}
}

type memFactory struct {
	s *memStore
}

func (f memFactory) Users(dbx.DBTX) repo.UserRepository {
	return &memUserRepo{s: f.s}
}

func (f memFactory) Barters(dbx.DBTX) repo.ListingRepository {
	return &memListingRepo{s: f.s, listings: f.s.barters}
}

func (f memFactory) Requests(dbx.DBTX) repo.ListingRepository {
	return &memListingRepo{s: f.s, listings: f.s.requests}
}

func (f memFactory) TradeOffers(dbx.DBTX) repo.TradeOfferRepository {
	return &memOfferRepo{s: f.s}
}

type memUserRepo struct {
	s *memStore
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type memListingRepo struct {
	s        *memStore
	listings map[uuid.UUID]*entity.Listing
}

func (r *memListingRepo) Create(_ context.Context, l *entity.Listing) error {
	cp := *l
	r.listings[l.ID] = &cp
	return nil
}

func (r *memListingRepo) Update(_ context.Context, id, ownerID uuid.UUID, in entity.ListingInput) (bool, error) {
	l, ok := r.listings[id]
	if !ok || l.UserID != ownerID || !l.IsActive {
		return false, nil
	}
	l.Name, l.Mobile, l.Item, l.Hostel = in.Name, in.Mobile, in.Item, in.Hostel
	return true, nil
}

func (r *memListingRepo) Deactivate(_ context.Context, id, ownerID uuid.UUID) (bool, error) {
	l, ok := r.listings[id]
	if !ok || l.UserID != ownerID || !l.IsActive {
		return false, nil
	}
	l.IsActive = false
	return true, nil
}

func (r *memListingRepo) ListActive(_ context.Context) ([]entity.Listing, error) {
	var out []entity.Listing
	for _, l := range r.listings {
		if !l.IsActive {
			continue
		}
		cp := *l
		if u, ok := r.s.users[l.UserID]; ok {
			cp.OwnerUsername = u.Username
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memListingRepo) GetActiveWithOwner(_ context.Context, id uuid.UUID) (*entity.Listing, error) {
	l, ok := r.listings[id]
	if !ok || !l.IsActive {
		return nil, repo.ErrNotFound
	}
	cp := *l
	if u, ok := r.s.users[l.UserID]; ok {
		cp.OwnerUsername = u.Username
	}
	return &cp, nil
}

type memOfferRepo struct {
	s *memStore
}

func (r *memOfferRepo) CreateOffer(_ context.Context, o *entity.TradeOffer) error {
	cp := *o
	r.s.offers[o.ID] = &cp
	return nil
}

func (r *memOfferRepo) CreateReceived(_ context.Context, rec *entity.ReceivedTradeOffer) error {
	if r.s.failCreateReceived != nil {
		return r.s.failCreateReceived
	}
	cp := *rec
	r.s.received[rec.ID] = &cp
	return nil
}

func (r *memOfferRepo) GetReceivedByID(_ context.Context, id uuid.UUID) (*entity.ReceivedTradeOffer, error) {
	rec, ok := r.s.received[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *memOfferRepo) UpdateReceivedStatus(_ context.Context, id uuid.UUID, status entity.OfferStatus) error {
	rec, ok := r.s.received[id]
	if !ok {
		return repo.ErrNotFound
	}
	rec.Status = status
	return nil
}

func (r *memOfferRepo) UpdateOfferStatus(_ context.Context, id uuid.UUID, status entity.OfferStatus) error {
	o, ok := r.s.offers[id]
	if !ok {
		return repo.ErrNotFound
	}
	o.Status = status
	return nil
}

func (r *memOfferRepo) ListByOfferer(_ context.Context, userID uuid.UUID) ([]entity.TradeOffer, error) {
	var out []entity.TradeOffer
	for _, o := range r.s.offers {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memOfferRepo) ListReceivedByUser(_ context.Context, userID uuid.UUID) ([]entity.ReceivedOfferDetail, error) {
	var out []entity.ReceivedOfferDetail
	for _, rec := range r.s.received {
		if rec.ReceiverUserID != userID {
			continue
		}
		o, ok := r.s.offers[rec.TradeOfferID]
		if !ok {
			continue
		}
		out = append(out, entity.ReceivedOfferDetail{ReceivedTradeOffer: *rec, Offer: *o})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memOfferRepo) CountPendingReceived(_ context.Context, userID uuid.UUID) (int, error) {
	n := 0
	for _, rec := range r.s.received {
		if rec.ReceiverUserID == userID && rec.Status == entity.StatusPending {
			n++
		}
	}
	return n, nil
}

type memAudit struct {
	changes       []*entity.StatusChange
	notifications []*entity.Notification
	err           error
}

func (a *memAudit) SaveStatusChange(doc *entity.StatusChange) error {
	if a.err != nil {
		return a.err
	}
	a.changes = append(a.changes, doc)
	return nil
}

func (a *memAudit) SaveNotification(doc *entity.Notification) error {
	if a.err != nil {
		return a.err
	}
	a.notifications = append(a.notifications, doc)
	return nil
}

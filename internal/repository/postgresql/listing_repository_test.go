package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entity "github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/domain"
)

func newMockListingRepo(t *testing.T) (ListingRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewBarterRepository(db), mock
}

func TestListingCreate_Insert(t *testing.T) {
	repo, mock := newMockListingRepo(t)
	l := &entity.Listing{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Name:      "Alice",
		Mobile:    "12345",
		Item:      "Calculator",
		Hostel:    "Hostel 3",
		CreatedAt: time.Now().UTC(),
		IsActive:  true,
	}

	mock.ExpectExec(`INSERT INTO barters`).
		WithArgs(l.ID, l.UserID, l.Name, l.Mobile, l.Item, l.Hostel, l.CreatedAt, l.IsActive).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), l))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListingUpdate_OwnershipInWhereClause(t *testing.T) {
	repo, mock := newMockListingRepo(t)
	id, owner := uuid.New(), uuid.New()
	in := entity.ListingInput{Name: "Alice", Mobile: "12345", Item: "Lamp", Hostel: "Hostel 3"}

	mock.ExpectExec(`UPDATE barters`).
		WithArgs(in.Name, in.Mobile, in.Item, in.Hostel, id, owner).
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.Update(context.Background(), id, owner, in)
	require.NoError(t, err)
	assert.False(t, updated, "a row not owned by the caller must report no update")
}

func TestListingDeactivate(t *testing.T) {
	repo, mock := newMockListingRepo(t)
	id, owner := uuid.New(), uuid.New()

	mock.ExpectExec(`UPDATE barters`).
		WithArgs(id, owner).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deactivated, err := repo.Deactivate(context.Background(), id, owner)
	require.NoError(t, err)
	assert.True(t, deactivated)
}

func TestListingGetActiveWithOwner_NotFound(t *testing.T) {
	repo, mock := newMockListingRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`(?s)SELECT .+ FROM barters`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetActiveWithOwner(context.Background(), id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListingListActive_JoinsOwnerUsername(t *testing.T) {
	repo, mock := newMockListingRepo(t)
	created := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "name", "mobile", "item", "hostel", "created_at", "is_active", "username",
	}).
		AddRow(uuid.NewString(), uuid.NewString(), "Alice", "12345", "Calculator", "Hostel 3", created, true, "alice").
		AddRow(uuid.NewString(), uuid.NewString(), "Carol", "67890", "Lamp", "Hostel 7", created.Add(-time.Minute), true, "carol")

	mock.ExpectQuery(`(?s)SELECT .+ FROM barters`).
		WillReturnRows(rows)

	listings, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "alice", listings[0].OwnerUsername)
	assert.Equal(t, "Lamp", listings[1].Item)
}

func TestRequestRepositoryTargetsRequestsTable(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := NewRequestRepository(db)

	mock.ExpectExec(`UPDATE requests`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err = repo.Deactivate(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

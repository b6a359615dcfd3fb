package repository

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/dbx"
	"github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/migrations"
)

// Factory vends repositories bound to a DBTX. Services hold a Factory and a
// *sql.DB; inside dbx.WithTx they rebind the repositories to the open
// transaction so multi-row writes commit or roll back together.
type Factory interface {
	Users(db dbx.DBTX) UserRepository
	Barters(db dbx.DBTX) ListingRepository
	Requests(db dbx.DBTX) ListingRepository
	TradeOffers(db dbx.DBTX) TradeOfferRepository
}

type PostgresFactory struct{}

func (PostgresFactory) Users(db dbx.DBTX) UserRepository {
	return NewUserRepository(db)
}

func (PostgresFactory) Barters(db dbx.DBTX) ListingRepository {
	return NewBarterRepository(db)
}

func (PostgresFactory) Requests(db dbx.DBTX) ListingRepository {
	return NewRequestRepository(db)
}

func (PostgresFactory) TradeOffers(db dbx.DBTX) TradeOfferRepository {
	return NewTradeOfferRepository(db)
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/config"
	"github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/delivery/http/route"
	"github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/logging"
	"github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/repository/mongodb"
	repo "github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/repository/postgresql"
)

const (
	dbConnectAttempts = 5
	dbConnectBackoff  = 2 * time.Second
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()

	db, err := connectDB(ctx, log, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repo.RunMigrations(ctx, db); err != nil {
		return err
	}

	audit := mongodb.NewNoopAuditRepository()
	if cfg.MongoURL != "" {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(ctx) }()
		audit = mongodb.NewAuditRepository(client)
	} else {
		log.Warn("MONGO_URL not set, audit log disabled")
	}

	app := gin.New()
	app.Use(gin.Logger(), gin.Recovery())

	route.SetupRoute(app, db, audit, cfg, logging.NewSlogLogger(log))

	log.Info("listening", "addr", cfg.Addr)
	return app.Run(cfg.Addr)
}

// connectDB opens the pool and pings with a short retry loop so the server
// survives the database coming up a moment later than the app container.
func connectDB(ctx context.Context, log *slog.Logger, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		err = db.PingContext(ctx)
		if err == nil {
			return db, nil
		}
		if attempt == dbConnectAttempts {
			_ = db.Close()
			return nil, err
		}
		log.Warn("database not ready, retrying", "attempt", attempt, "error", err)
		time.Sleep(dbConnectBackoff)
	}
}

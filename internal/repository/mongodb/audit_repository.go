// Package mongodb stores side-channel records that are useful for support
// and debugging but carry no business rules: offer status-change history and
// notification records. Writes are best-effort; callers log failures and
// move on.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	entity "github.com/ananyakumar2005/ucs503p-202526odd-team-void/internal/domain"
)

const (
	databaseName = "campustrade"

	collectionStatusHistory = "status_history"
	collectionNotifications = "notifications"
)

const writeTimeout = 5 * time.Second

type AuditRepository interface {
	SaveStatusChange(doc *entity.StatusChange) error
	SaveNotification(doc *entity.Notification) error
}

type auditRepository struct {
	history       *mongo.Collection
	notifications *mongo.Collection
}

func NewAuditRepository(client *mongo.Client) AuditRepository {
	db := client.Database(databaseName)
	return &auditRepository{
		history:       db.Collection(collectionStatusHistory),
		notifications: db.Collection(collectionNotifications),
	}
}

func (r *auditRepository) SaveStatusChange(doc *entity.StatusChange) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if _, err := r.history.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert status change: %w", err)
	}
	return nil
}

func (r *auditRepository) SaveNotification(doc *entity.Notification) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if _, err := r.notifications.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// NewNoopAuditRepository is used when no Mongo URL is configured.
func NewNoopAuditRepository() AuditRepository {
	return noopAuditRepository{}
}

type noopAuditRepository struct{}

func (noopAuditRepository) SaveStatusChange(*entity.StatusChange) error { return nil }
func (noopAuditRepository) SaveNotification(*entity.Notification) error { return nil }

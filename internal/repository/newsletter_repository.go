package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/chinpangura/outreach-api/internal/models"
	appErrors "github.com/chinpangura/outreach-api/pkg/errors"
)

const uniqueViolationCode = "23505"

// NewsletterRepository persists newsletter subscriber rows.
type NewsletterRepository struct {
	db *sqlx.DB
}

// NewNewsletterRepository constructs the repository.
func NewNewsletterRepository(db *sqlx.DB) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

// Insert stores a new subscriber. A duplicate email is rejected with
// ErrDuplicateEmail, relying on the unique index.
func (r *NewsletterRepository) Insert(ctx context.Context, subscriber *models.NewsletterSubscriber) error {
	const query = `INSERT INTO newsletter_subscribers (id, email, subscribed_at)
VALUES (:id, :email, :subscribed_at)`
	subscriber.ID = uuid.NewString()
	subscriber.SubscribedAt = time.Now().UTC()
	if _, err := r.db.NamedExecContext(ctx, query, subscriber); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return appErrors.ErrDuplicateEmail
		}
		return fmt.Errorf("insert subscriber: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/chinpangura/outreach-api/internal/models"
)

// DonationRepository persists donation rows.
type DonationRepository struct {
	db *sqlx.DB
}

// NewDonationRepository constructs the repository.
func NewDonationRepository(db *sqlx.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

// List returns donations newest first, optionally sliced by page/page_size.
// The second return value is the total row count regardless of slicing.
func (r *DonationRepository) List(ctx context.Context, filter models.DonationFilter) ([]models.Donation, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM donations`); err != nil {
		return nil, 0, fmt.Errorf("count donations: %w", err)
	}

	query := `SELECT id, donor_name, email, amount, message, is_anonymous, created_at, updated_at
FROM donations ORDER BY created_at DESC`
	args := []interface{}{}
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, filter.PageSize, (page-1)*filter.PageSize)
	}

	donations := []models.Donation{}
	if err := r.db.SelectContext(ctx, &donations, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list donations: %w", err)
	}
	return donations, total, nil
}

// ListAll returns the full donation set newest first, for stats recomputation.
func (r *DonationRepository) ListAll(ctx context.Context) ([]models.Donation, error) {
	const query = `SELECT id, donor_name, email, amount, message, is_anonymous, created_at, updated_at
FROM donations ORDER BY created_at DESC`
	donations := []models.Donation{}
	if err := r.db.SelectContext(ctx, &donations, query); err != nil {
		return nil, fmt.Errorf("list all donations: %w", err)
	}
	return donations, nil
}

// Insert stores a new donation, generating its identifier and timestamps.
func (r *DonationRepository) Insert(ctx context.Context, donation *models.Donation) error {
	const query = `INSERT INTO donations (id, donor_name, email, amount, message, is_anonymous, created_at, updated_at)
VALUES (:id, :donor_name, :email, :amount, :message, :is_anonymous, :created_at, :updated_at)`
	now := time.Now().UTC()
	donation.ID = uuid.NewString()
	donation.CreatedAt = now
	donation.UpdatedAt = now
	if _, err := r.db.NamedExecContext(ctx, query, donation); err != nil {
		return fmt.Errorf("insert donation: %w", err)
	}
	return nil
}

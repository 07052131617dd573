package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/chinpangura/outreach-api/internal/models"
)

// CampaignRepository persists campaign settings rows.
type CampaignRepository struct {
	db *sqlx.DB
}

// NewCampaignRepository constructs the repository.
func NewCampaignRepository(db *sqlx.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// GetActive fetches the single active campaign. Returns sql.ErrNoRows when
// none is configured.
func (r *CampaignRepository) GetActive(ctx context.Context) (*models.CampaignSettings, error) {
	const query = `SELECT id, target_amount, campaign_title, end_date, is_active, created_at
FROM campaign_settings WHERE is_active = TRUE ORDER BY created_at DESC LIMIT 1`
	var campaign models.CampaignSettings
	if err := r.db.GetContext(ctx, &campaign, query); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// Insert stores a new active campaign row.
func (r *CampaignRepository) Insert(ctx context.Context, campaign *models.CampaignSettings) error {
	const query = `INSERT INTO campaign_settings (id, target_amount, campaign_title, end_date, is_active, created_at)
VALUES (:id, :target_amount, :campaign_title, :end_date, :is_active, :created_at)`
	campaign.ID = uuid.NewString()
	campaign.IsActive = true
	campaign.CreatedAt = time.Now().UTC()
	if _, err := r.db.NamedExecContext(ctx, query, campaign); err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// UpdateActive rewrites the editable fields of the active campaign row.
func (r *CampaignRepository) UpdateActive(ctx context.Context, campaign *models.CampaignSettings) error {
	const query = `UPDATE campaign_settings
SET target_amount = :target_amount, campaign_title = :campaign_title, end_date = :end_date
WHERE id = :id AND is_active = TRUE`
	if _, err := r.db.NamedExecContext(ctx, query, campaign); err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	return nil
}

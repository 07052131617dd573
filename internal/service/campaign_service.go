package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chinpangura/outreach-api/internal/dto"
	"github.com/chinpangura/outreach-api/internal/models"
	"github.com/chinpangura/outreach-api/pkg/config"
	appErrors "github.com/chinpangura/outreach-api/pkg/errors"
)

type campaignRepository interface {
	GetActive(ctx context.Context) (*models.CampaignSettings, error)
	Insert(ctx context.Context, campaign *models.CampaignSettings) error
	UpdateActive(ctx context.Context, campaign *models.CampaignSettings) error
}

type statsProvider interface {
	Stats(ctx context.Context) (*dto.DonationStatsResponse, error)
}

// CampaignService reads and edits the active campaign and derives its
// progress and countdown display values.
type CampaignService struct {
	repo      campaignRepository
	stats     statsProvider
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewCampaignService constructs a CampaignService.
func NewCampaignService(repo campaignRepository, stats statsProvider, validate *validator.Validate, logger *zap.Logger) *CampaignService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CampaignService{repo: repo, stats: stats, validator: validate, logger: logger, now: time.Now}
}

// Get returns the active campaign with progress and countdown attached.
// Absence of a configured campaign is a 404, not an internal failure.
func (s *CampaignService) Get(ctx context.Context) (*dto.CampaignResponse, error) {
	campaign, err := s.repo.GetActive(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "campaign not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch campaign")
	}
	return s.toResponse(ctx, campaign)
}

// Update applies the admin settings form: it rewrites the active campaign
// when one exists, otherwise inserts a new active row.
func (s *CampaignService) Update(ctx context.Context, req dto.UpdateCampaignRequest) (*dto.CampaignResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid campaign payload")
	}
	if !req.TargetAmount.IsPositive() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "target amount must be greater than zero")
	}

	current, err := s.repo.GetActive(ctx)
	if err != nil && err != sql.ErrNoRows {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch campaign")
	}

	if current != nil {
		current.CampaignTitle = req.CampaignTitle
		current.TargetAmount = req.TargetAmount
		current.EndDate = req.EndDate
		if err := s.repo.UpdateActive(ctx, current); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update campaign")
		}
		return s.toResponse(ctx, current)
	}

	campaign := &models.CampaignSettings{
		CampaignTitle: req.CampaignTitle,
		TargetAmount:  req.TargetAmount,
		EndDate:       req.EndDate,
	}
	if err := s.repo.Insert(ctx, campaign); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create campaign")
	}
	return s.toResponse(ctx, campaign)
}

// Seed creates the active campaign from configured defaults when none exists
// yet. Called once at startup.
func (s *CampaignService) Seed(ctx context.Context, cfg config.CampaignConfig) error {
	if _, err := s.repo.GetActive(ctx); err == nil {
		return nil
	} else if err != sql.ErrNoRows {
		return err
	}

	target, err := decimal.NewFromString(cfg.TargetAmount)
	if err != nil || !target.IsPositive() {
		target = decimal.NewFromInt(1000)
	}

	campaign := &models.CampaignSettings{
		CampaignTitle: cfg.Title,
		TargetAmount:  target,
	}
	if cfg.EndDate != "" {
		if endDate, err := time.Parse(time.RFC3339, cfg.EndDate); err == nil {
			campaign.EndDate = &endDate
		} else {
			s.logger.Warn("invalid campaign end date, seeding without one", zap.String("end_date", cfg.EndDate))
		}
	}

	if err := s.repo.Insert(ctx, campaign); err != nil {
		return err
	}
	s.logger.Info("seeded active campaign",
		zap.String("title", campaign.CampaignTitle),
		zap.String("target", campaign.TargetAmount.String()),
	)
	return nil
}

func (s *CampaignService) toResponse(ctx context.Context, campaign *models.CampaignSettings) (*dto.CampaignResponse, error) {
	stats, err := s.stats.Stats(ctx)
	if err != nil {
		return nil, err
	}

	progress := Progress(campaign.TargetAmount, stats.TotalRaised)
	countdown := CountdownUntil(campaign.EndDate, s.now().UTC())

	return &dto.CampaignResponse{
		ID:            campaign.ID,
		CampaignTitle: campaign.CampaignTitle,
		TargetAmount:  campaign.TargetAmount,
		EndDate:       campaign.EndDate,
		IsActive:      campaign.IsActive,
		CreatedAt:     campaign.CreatedAt,
		Progress: dto.CampaignProgressPayload{
			TotalRaised:        stats.TotalRaised,
			ProgressPercentage: progress.ProgressPercentage,
			RemainingAmount:    progress.RemainingAmount,
		},
		Countdown: dto.CountdownPayload{
			Days:    countdown.Days,
			Hours:   countdown.Hours,
			Minutes: countdown.Minutes,
			Seconds: countdown.Seconds,
		},
	}, nil
}

// Progress derives percent-complete and the remaining amount. The percentage
// is clamped to [0, 100] and a zero target yields zero progress; the
// remaining amount is never negative.
func Progress(targetAmount, totalRaised decimal.Decimal) models.CampaignProgress {
	progress := models.CampaignProgress{RemainingAmount: decimal.Zero}

	if targetAmount.IsPositive() {
		pct := totalRaised.Div(targetAmount).Mul(decimal.NewFromInt(100))
		if pct.GreaterThan(decimal.NewFromInt(100)) {
			pct = decimal.NewFromInt(100)
		}
		if pct.IsNegative() {
			pct = decimal.Zero
		}
		progress.ProgressPercentage, _ = pct.Round(2).Float64()
	}

	remaining := targetAmount.Sub(totalRaised)
	if remaining.IsPositive() {
		progress.RemainingAmount = remaining
	}
	return progress
}

// CountdownUntil derives the non-negative remaining duration until endDate,
// truncated at each unit boundary. A nil or already passed end date yields
// all zeros.
func CountdownUntil(endDate *time.Time, now time.Time) models.Countdown {
	if endDate == nil {
		return models.Countdown{}
	}

	remaining := endDate.Sub(now)
	if remaining <= 0 {
		return models.Countdown{}
	}

	totalSeconds := int(remaining / time.Second)
	return models.Countdown{
		Days:    totalSeconds / 86400,
		Hours:   (totalSeconds % 86400) / 3600,
		Minutes: (totalSeconds % 3600) / 60,
		Seconds: totalSeconds % 60,
	}
}

package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chinpangura/outreach-api/internal/dto"
	"github.com/chinpangura/outreach-api/internal/models"
	appErrors "github.com/chinpangura/outreach-api/pkg/errors"
)

const statsCacheKey = "donations:stats"

type donationRepository interface {
	List(ctx context.Context, filter models.DonationFilter) ([]models.Donation, int, error)
	ListAll(ctx context.Context) ([]models.Donation, error)
	Insert(ctx context.Context, donation *models.Donation) error
}

// DonationService records donations and derives their summary statistics.
type DonationService struct {
	repo      donationRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDonationService constructs a DonationService.
func NewDonationService(repo donationRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *DonationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DonationService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// Create validates and records a new donation. The stats cache is invalidated
// so the next read recomputes over the full set.
func (s *DonationService) Create(ctx context.Context, req dto.CreateDonationRequest) (*dto.DonationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid donation payload")
	}
	if !req.Amount.IsPositive() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "amount must be greater than zero")
	}

	donation := &models.Donation{
		DonorName:   normalizeOptional(req.DonorName),
		Email:       normalizeOptional(req.Email),
		Amount:      req.Amount,
		Message:     normalizeOptional(req.Message),
		IsAnonymous: req.IsAnonymous,
	}
	if err := s.repo.Insert(ctx, donation); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create donation")
	}

	if err := s.cache.Invalidate(ctx, statsCacheKey); err != nil {
		s.logger.Warn("failed to invalidate stats cache", zap.Error(err))
	}

	resp := toDonationResponse(*donation)
	return &resp, nil
}

// List returns donations newest first, optionally sliced for the admin table.
func (s *DonationService) List(ctx context.Context, page, pageSize int) ([]dto.DonationResponse, *models.Pagination, error) {
	donations, total, err := s.repo.List(ctx, models.DonationFilter{Page: page, PageSize: pageSize})
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list donations")
	}

	items := make([]dto.DonationResponse, 0, len(donations))
	for _, donation := range donations {
		items = append(items, toDonationResponse(donation))
	}

	var pagination *models.Pagination
	if pageSize > 0 {
		if page < 1 {
			page = 1
		}
		pagination = &models.Pagination{Page: page, PageSize: pageSize, TotalCount: total}
	}
	return items, pagination, nil
}

// Stats returns the aggregated donation statistics. The cache, when enabled,
// only memoizes the last full recomputation; a miss always recomputes over
// the entire donation set.
func (s *DonationService) Stats(ctx context.Context) (*dto.DonationStatsResponse, error) {
	var cached dto.DonationStatsResponse
	if hit, err := s.cache.Get(ctx, statsCacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	donations, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to compute donation stats")
	}

	stats := ComputeStats(donations)
	resp := &dto.DonationStatsResponse{
		TotalRaised:     stats.TotalRaised,
		DonorCount:      stats.DonorCount,
		AverageDonation: stats.AverageDonation,
	}

	if err := s.cache.Set(ctx, statsCacheKey, resp, 0); err != nil {
		s.logger.Warn("failed to cache donation stats", zap.Error(err))
	}
	return resp, nil
}

// RefreshStats recomputes the statistics and rewrites the cache entry. Used
// by the background refresher to keep polled reads warm.
func (s *DonationService) RefreshStats(ctx context.Context) error {
	if !s.cache.Enabled() {
		return nil
	}

	donations, err := s.repo.ListAll(ctx)
	if err != nil {
		return err
	}

	stats := ComputeStats(donations)
	resp := &dto.DonationStatsResponse{
		TotalRaised:     stats.TotalRaised,
		DonorCount:      stats.DonorCount,
		AverageDonation: stats.AverageDonation,
	}
	return s.cache.Set(ctx, statsCacheKey, resp, 0)
}

// ComputeStats aggregates the full donation set with exact decimal
// arithmetic. Every record counts once regardless of anonymity; an empty set
// yields zero values rather than a division fault.
func ComputeStats(donations []models.Donation) models.DonationStats {
	total := decimal.Zero
	for _, donation := range donations {
		total = total.Add(donation.Amount)
	}

	count := len(donations)
	average := decimal.Zero
	if count > 0 {
		average = total.Div(decimal.NewFromInt(int64(count))).Round(2)
	}

	return models.DonationStats{
		TotalRaised:     total,
		DonorCount:      count,
		AverageDonation: average,
	}
}

func toDonationResponse(donation models.Donation) dto.DonationResponse {
	return dto.DonationResponse{
		ID:          donation.ID,
		DonorName:   donation.DonorName,
		Email:       donation.Email,
		Amount:      donation.Amount,
		Message:     donation.Message,
		IsAnonymous: donation.IsAnonymous,
		CreatedAt:   donation.CreatedAt,
		UpdatedAt:   donation.UpdatedAt,
	}
}

func normalizeOptional(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	return value
}

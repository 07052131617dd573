package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinpangura/outreach-api/internal/dto"
	"github.com/chinpangura/outreach-api/internal/models"
	appErrors "github.com/chinpangura/outreach-api/pkg/errors"
)

type fakeDonationRepo struct {
	donations []models.Donation
	insertErr error
	listErr   error
}

func (f *fakeDonationRepo) List(ctx context.Context, filter models.DonationFilter) ([]models.Donation, int, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.donations, len(f.donations), nil
}

func (f *fakeDonationRepo) ListAll(ctx context.Context) ([]models.Donation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.donations, nil
}

func (f *fakeDonationRepo) Insert(ctx context.Context, donation *models.Donation) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	now := time.Now().UTC()
	donation.ID = uuid.NewString()
	donation.CreatedAt = now
	donation.UpdatedAt = now
	f.donations = append([]models.Donation{*donation}, f.donations...)
	return nil
}

func amount(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestComputeStats(t *testing.T) {
	donations := []models.Donation{
		{Amount: amount("25.00")},
		{Amount: amount("50.00")},
		{Amount: amount("100.00")},
	}

	stats := ComputeStats(donations)

	assert.True(t, stats.TotalRaised.Equal(amount("175.00")), "total = %s", stats.TotalRaised)
	assert.Equal(t, 3, stats.DonorCount)
	assert.True(t, stats.AverageDonation.Equal(amount("58.33")), "average = %s", stats.AverageDonation)
}

func TestComputeStatsEmptySet(t *testing.T) {
	stats := ComputeStats(nil)

	assert.True(t, stats.TotalRaised.IsZero())
	assert.Equal(t, 0, stats.DonorCount)
	assert.True(t, stats.AverageDonation.IsZero())
}

func TestComputeStatsExactCents(t *testing.T) {
	donations := []models.Donation{
		{Amount: amount("0.01")},
		{Amount: amount("0.02")},
	}

	stats := ComputeStats(donations)

	assert.True(t, stats.TotalRaised.Equal(amount("0.03")))
	assert.True(t, stats.AverageDonation.Equal(amount("0.02")), "average = %s", stats.AverageDonation)
}

func TestDonationServiceCreate(t *testing.T) {
	repo := &fakeDonationRepo{}
	svc := NewDonationService(repo, nil, nil, nil)

	name := "Jane"
	resp, err := svc.Create(context.Background(), dto.CreateDonationRequest{
		DonorName: &name,
		Amount:    amount("25.00"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.ID)
	assert.True(t, resp.Amount.Equal(amount("25.00")))
	assert.False(t, resp.CreatedAt.IsZero())
	require.Len(t, repo.donations, 1)
}

func TestDonationServiceCreateRejectsNonPositiveAmount(t *testing.T) {
	svc := NewDonationService(&fakeDonationRepo{}, nil, nil, nil)

	for _, raw := range []string{"0", "-5.00"} {
		_, err := svc.Create(context.Background(), dto.CreateDonationRequest{Amount: amount(raw)})
		require.Error(t, err, "amount %s", raw)
		appErr := appErrors.FromError(err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	}
}

func TestDonationServiceCreateRejectsMalformedEmail(t *testing.T) {
	svc := NewDonationService(&fakeDonationRepo{}, nil, nil, nil)

	email := "not-an-email"
	_, err := svc.Create(context.Background(), dto.CreateDonationRequest{
		Email:  &email,
		Amount: amount("10.00"),
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestDonationServiceStats(t *testing.T) {
	repo := &fakeDonationRepo{donations: []models.Donation{
		{Amount: amount("25.00")},
		{Amount: amount("50.00")},
		{Amount: amount("100.00")},
	}}
	svc := NewDonationService(repo, nil, nil, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.True(t, stats.TotalRaised.Equal(amount("175.00")))
	assert.Equal(t, 3, stats.DonorCount)
	assert.True(t, stats.AverageDonation.Equal(amount("58.33")))
}

func TestDonationServiceStatsRecomputedAfterInsert(t *testing.T) {
	repo := &fakeDonationRepo{}
	svc := NewDonationService(repo, nil, nil, nil)

	first, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, first.DonorCount)

	_, err = svc.Create(context.Background(), dto.CreateDonationRequest{Amount: amount("40.00")})
	require.NoError(t, err)

	second, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, second.DonorCount)
	assert.True(t, second.TotalRaised.Equal(amount("40.00")))
}

func TestDonationServiceListPagination(t *testing.T) {
	repo := &fakeDonationRepo{donations: []models.Donation{
		{ID: "a", Amount: amount("10.00")},
		{ID: "b", Amount: amount("20.00")},
	}}
	svc := NewDonationService(repo, nil, nil, nil)

	items, pagination, err := svc.List(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.NotNil(t, pagination)
	assert.Equal(t, 2, pagination.TotalCount)

	_, pagination, err = svc.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Nil(t, pagination)
}

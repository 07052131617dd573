package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinpangura/outreach-api/internal/models"
	appErrors "github.com/chinpangura/outreach-api/pkg/errors"
)

func TestExportServiceRenderCSV(t *testing.T) {
	name := "Jane"
	email := "jane@example.com"
	repo := &fakeDonationRepo{donations: []models.Donation{
		{
			DonorName: &name,
			Email:     &email,
			Amount:    amount("25.00"),
			CreatedAt: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			DonorName:   &name,
			Email:       &email,
			Amount:      amount("10.00"),
			IsAnonymous: true,
			CreatedAt:   time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC),
		},
	}}
	svc := NewExportService(repo, nil)

	result, err := svc.Render(context.Background(), ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.True(t, strings.HasSuffix(result.Filename, ".csv"))

	body := string(result.Data)
	assert.Contains(t, body, "Date,Donor,Email,Amount,Message")
	assert.Contains(t, body, "Jane")
	assert.Contains(t, body, "25.00")
	// Anonymous rows hide donor identity.
	assert.Contains(t, body, "Anonymous")
	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 3)
	assert.NotContains(t, lines[2], "jane@example.com")
}

func TestExportServiceRenderPDF(t *testing.T) {
	repo := &fakeDonationRepo{donations: []models.Donation{
		{Amount: amount("25.00"), CreatedAt: time.Now().UTC()},
	}}
	svc := NewExportService(repo, nil)

	result, err := svc.Render(context.Background(), ExportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasPrefix(string(result.Data), "%PDF"))
}

func TestExportServiceRenderUnsupportedFormat(t *testing.T) {
	svc := NewExportService(&fakeDonationRepo{}, nil)

	_, err := svc.Render(context.Background(), "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

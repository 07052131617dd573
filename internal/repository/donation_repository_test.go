package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinpangura/outreach-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func donationColumns() []string {
	return []string{"id", "donor_name", "email", "amount", "message", "is_anonymous", "created_at", "updated_at"}
}

func TestDonationRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewDonationRepository(db)
	now := time.Now()
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("SELECT id, donor_name").
		WillReturnRows(sqlmock.NewRows(donationColumns()).
			AddRow("d2", nil, nil, "50.00", nil, true, now, now).
			AddRow("d1", "Jane", "jane@example.com", "25.00", "keep going", false, now.Add(-time.Hour), now.Add(-time.Hour)))

	donations, total, err := repo.List(context.Background(), models.DonationFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, donations, 2)
	assert.Equal(t, "d2", donations[0].ID)
	assert.True(t, donations[0].IsAnonymous)
	assert.True(t, donations[1].Amount.Equal(decimal.RequireFromString("25.00")))
}

func TestDonationRepositoryListPaged(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewDonationRepository(db)
	now := time.Now()
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery("SELECT id, donor_name").
		WithArgs(2, 2).
		WillReturnRows(sqlmock.NewRows(donationColumns()).
			AddRow("d3", nil, nil, "10.00", nil, false, now, now))

	donations, total, err := repo.List(context.Background(), models.DonationFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, donations, 1)
}

func TestDonationRepositoryInsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewDonationRepository(db)
	mock.ExpectExec("INSERT INTO donations").
		WithArgs(sqlmock.AnyArg(), "Jane", "jane@example.com", sqlmock.AnyArg(), nil, false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	name := "Jane"
	email := "jane@example.com"
	donation := &models.Donation{
		DonorName: &name,
		Email:     &email,
		Amount:    decimal.RequireFromString("25.00"),
	}
	require.NoError(t, repo.Insert(context.Background(), donation))
	assert.NotEmpty(t, donation.ID)
	assert.False(t, donation.CreatedAt.IsZero())
	assert.Equal(t, donation.CreatedAt, donation.UpdatedAt)
}

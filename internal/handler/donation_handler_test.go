package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinpangura/outreach-api/internal/dto"
	"github.com/chinpangura/outreach-api/internal/models"
	"github.com/chinpangura/outreach-api/internal/service"
	appErrors "github.com/chinpangura/outreach-api/pkg/errors"
)

type donationServiceMock struct {
	createResp *dto.DonationResponse
	createErr  error
	listResp   []dto.DonationResponse
	listPage   *models.Pagination
	statsResp  *dto.DonationStatsResponse
	statsErr   error
}

func (m *donationServiceMock) Create(ctx context.Context, req dto.CreateDonationRequest) (*dto.DonationResponse, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.createResp, nil
}

func (m *donationServiceMock) List(ctx context.Context, page, pageSize int) ([]dto.DonationResponse, *models.Pagination, error) {
	return m.listResp, m.listPage, nil
}

func (m *donationServiceMock) Stats(ctx context.Context) (*dto.DonationStatsResponse, error) {
	if m.statsErr != nil {
		return nil, m.statsErr
	}
	return m.statsResp, nil
}

type exportServiceMock struct {
	result *service.ExportResult
	err    error
}

func (m *exportServiceMock) Render(ctx context.Context, format string) (*service.ExportResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func TestDonationHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &donationServiceMock{createResp: &dto.DonationResponse{
		ID:     "d1",
		Amount: decimal.RequireFromString("25.00"),
	}}
	handler := NewDonationHandler(mock, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(dto.CreateDonationRequest{Amount: decimal.RequireFromString("25.00")})
	req, _ := http.NewRequest(http.MethodPost, "/donations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"d1"`)
}

func TestDonationHandlerCreateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDonationHandler(&donationServiceMock{}, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/donations", bytes.NewReader([]byte(`invalid`)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDonationHandlerCreateServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &donationServiceMock{createErr: appErrors.Clone(appErrors.ErrValidation, "donation amount must be greater than zero")}
	handler := NewDonationHandler(mock, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(dto.CreateDonationRequest{Amount: decimal.Zero})
	req, _ := http.NewRequest(http.MethodPost, "/donations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "greater than zero")
}

func TestDonationHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &donationServiceMock{
		listResp: []dto.DonationResponse{{ID: "d1", Amount: decimal.RequireFromString("25.00")}},
		listPage: &models.Pagination{Page: 1, PageSize: 10, TotalCount: 1},
	}
	handler := NewDonationHandler(mock, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/donations?page=1&page_size=10", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"pagination"`)
}

func TestDonationHandlerStats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &donationServiceMock{statsResp: &dto.DonationStatsResponse{
		TotalRaised:     decimal.RequireFromString("175.00"),
		DonorCount:      3,
		AverageDonation: decimal.RequireFromString("58.33"),
	}}
	handler := NewDonationHandler(mock, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/donations/stats", nil)
	c.Request = req

	handler.Stats(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"donorCount":3`)
}

func TestDonationHandlerExport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	exports := &exportServiceMock{result: &service.ExportResult{
		Filename:    "donations.csv",
		ContentType: "text/csv",
		Data:        []byte("Date,Donor,Email,Amount,Message\n"),
	}}
	handler := NewDonationHandler(&donationServiceMock{}, exports)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/donations/export?format=csv", nil)
	c.Request = req

	handler.Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "donations.csv")
}

func TestDonationHandlerExportDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDonationHandler(&donationServiceMock{}, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/donations/export", nil)
	c.Request = req

	handler.Export(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chinpangura/outreach-api/internal/dto"
	"github.com/chinpangura/outreach-api/internal/models"
	"github.com/chinpangura/outreach-api/internal/service"
	appErrors "github.com/chinpangura/outreach-api/pkg/errors"
	"github.com/chinpangura/outreach-api/pkg/response"
)

type donationService interface {
	Create(ctx context.Context, req dto.CreateDonationRequest) (*dto.DonationResponse, error)
	List(ctx context.Context, page, pageSize int) ([]dto.DonationResponse, *models.Pagination, error)
	Stats(ctx context.Context) (*dto.DonationStatsResponse, error)
}

type exportService interface {
	Render(ctx context.Context, format string) (*service.ExportResult, error)
}

// DonationHandler exposes the donation endpoints.
type DonationHandler struct {
	service donationService
	exports exportService
}

// NewDonationHandler builds a new handler. The export service may be nil when
// the export endpoint is disabled.
func NewDonationHandler(service donationService, exports exportService) *DonationHandler {
	return &DonationHandler{service: service, exports: exports}
}

// List godoc
// @Summary List donations newest first
// @Tags Donations
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /donations [get]
func (h *DonationHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))

	items, pagination, err := h.service.List(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, pagination)
}

// Create godoc
// @Summary Record a new donation
// @Tags Donations
// @Accept json
// @Produce json
// @Param payload body dto.CreateDonationRequest true "Donation payload"
// @Success 201 {object} response.Envelope
// @Router /donations [post]
func (h *DonationHandler) Create(c *gin.Context) {
	var req dto.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid donation payload"))
		return
	}
	donation, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, donation)
}

// Stats godoc
// @Summary Donation statistics
// @Tags Donations
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /donations/stats [get]
func (h *DonationHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, nil)
}

// Export godoc
// @Summary Export donation records
// @Tags Donations
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "Export format (csv or pdf)" default(csv)
// @Success 200 {file} file
// @Router /donations/export [get]
func (h *DonationHandler) Export(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "donation export is disabled"))
		return
	}

	format := c.DefaultQuery("format", service.ExportFormatCSV)
	result, err := h.exports.Render(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Data)
}

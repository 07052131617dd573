package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chinpangura/outreach-api/internal/dto"
	appErrors "github.com/chinpangura/outreach-api/pkg/errors"
	"github.com/chinpangura/outreach-api/pkg/response"
)

type campaignService interface {
	Get(ctx context.Context) (*dto.CampaignResponse, error)
	Update(ctx context.Context, req dto.UpdateCampaignRequest) (*dto.CampaignResponse, error)
}

// CampaignHandler exposes the campaign settings endpoints.
type CampaignHandler struct {
	service campaignService
}

// NewCampaignHandler builds a new handler.
func NewCampaignHandler(service campaignService) *CampaignHandler {
	return &CampaignHandler{service: service}
}

// Get godoc
// @Summary Active campaign with progress and countdown
// @Tags Campaign
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /campaign [get]
func (h *CampaignHandler) Get(c *gin.Context) {
	campaign, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, campaign, nil)
}

// Update godoc
// @Summary Update campaign settings
// @Tags Campaign
// @Accept json
// @Produce json
// @Param payload body dto.UpdateCampaignRequest true "Campaign payload"
// @Success 200 {object} response.Envelope
// @Router /campaign [put]
func (h *CampaignHandler) Update(c *gin.Context) {
	var req dto.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid campaign payload"))
		return
	}
	campaign, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, campaign, nil)
}

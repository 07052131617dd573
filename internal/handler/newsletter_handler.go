package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chinpangura/outreach-api/internal/dto"
	appErrors "github.com/chinpangura/outreach-api/pkg/errors"
	"github.com/chinpangura/outreach-api/pkg/response"
)

type newsletterService interface {
	Subscribe(ctx context.Context, req dto.SubscribeNewsletterRequest) (*dto.SubscriberResponse, error)
}

// NewsletterHandler exposes the newsletter signup endpoint.
type NewsletterHandler struct {
	service newsletterService
}

// NewNewsletterHandler builds a new handler.
func NewNewsletterHandler(service newsletterService) *NewsletterHandler {
	return &NewsletterHandler{service: service}
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param payload body dto.SubscribeNewsletterRequest true "Subscription payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /newsletter/subscribe [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeNewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid email address"))
		return
	}
	subscriber, err := h.service.Subscribe(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, subscriber)
}

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/chinpangura/outreach-api/internal/dto"
	"github.com/chinpangura/outreach-api/internal/models"
	appErrors "github.com/chinpangura/outreach-api/pkg/errors"
)

type newsletterRepository interface {
	Insert(ctx context.Context, subscriber *models.NewsletterSubscriber) error
}

// NewsletterService records newsletter signups. Each distinct email
// subscribes once; duplicates are rejected with a conflict.
type NewsletterService struct {
	repo      newsletterRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNewsletterService constructs a NewsletterService.
func NewNewsletterService(repo newsletterRepository, validate *validator.Validate, logger *zap.Logger) *NewsletterService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NewsletterService{repo: repo, validator: validate, logger: logger}
}

// Subscribe validates and stores a newsletter signup.
func (s *NewsletterService) Subscribe(ctx context.Context, req dto.SubscribeNewsletterRequest) (*dto.SubscriberResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid email address")
	}

	subscriber := &models.NewsletterSubscriber{Email: req.Email}
	if err := s.repo.Insert(ctx, subscriber); err != nil {
		if errors.Is(err, appErrors.ErrDuplicateEmail) {
			return nil, appErrors.ErrDuplicateEmail
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to subscribe to newsletter")
	}

	return &dto.SubscriberResponse{
		ID:           subscriber.ID,
		Email:        subscriber.Email,
		SubscribedAt: subscriber.SubscribedAt,
	}, nil
}

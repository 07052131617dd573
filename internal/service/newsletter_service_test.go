package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinpangura/outreach-api/internal/dto"
	"github.com/chinpangura/outreach-api/internal/models"
	appErrors "github.com/chinpangura/outreach-api/pkg/errors"
)

type fakeNewsletterRepo struct {
	subscribers map[string]models.NewsletterSubscriber
}

func (f *fakeNewsletterRepo) Insert(ctx context.Context, subscriber *models.NewsletterSubscriber) error {
	if f.subscribers == nil {
		f.subscribers = make(map[string]models.NewsletterSubscriber)
	}
	if _, exists := f.subscribers[subscriber.Email]; exists {
		return appErrors.ErrDuplicateEmail
	}
	subscriber.ID = uuid.NewString()
	subscriber.SubscribedAt = time.Now().UTC()
	f.subscribers[subscriber.Email] = *subscriber
	return nil
}

func TestNewsletterServiceSubscribe(t *testing.T) {
	repo := &fakeNewsletterRepo{}
	svc := NewNewsletterService(repo, nil, nil)

	resp, err := svc.Subscribe(context.Background(), dto.SubscribeNewsletterRequest{Email: "Reader@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", resp.Email)
	assert.NotEmpty(t, resp.ID)
}

func TestNewsletterServiceSubscribeDuplicateConflicts(t *testing.T) {
	repo := &fakeNewsletterRepo{}
	svc := NewNewsletterService(repo, nil, nil)

	first, err := svc.Subscribe(context.Background(), dto.SubscribeNewsletterRequest{Email: "reader@example.com"})
	require.NoError(t, err)

	_, err = svc.Subscribe(context.Background(), dto.SubscribeNewsletterRequest{Email: "reader@example.com"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrDuplicateEmail.Code, appErr.Code)

	// First record is unaffected by the rejected duplicate.
	stored, ok := repo.subscribers["reader@example.com"]
	require.True(t, ok)
	assert.Equal(t, first.ID, stored.ID)
}

func TestNewsletterServiceSubscribeInvalidEmail(t *testing.T) {
	svc := NewNewsletterService(&fakeNewsletterRepo{}, nil, nil)

	for _, email := range []string{"", "   ", "not-an-email"} {
		_, err := svc.Subscribe(context.Background(), dto.SubscribeNewsletterRequest{Email: email})
		require.Error(t, err, "email %q", email)
		assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	}
}

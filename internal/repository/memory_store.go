package repository

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chinpangura/outreach-api/internal/models"
	appErrors "github.com/chinpangura/outreach-api/pkg/errors"
)

// MemoryStore is the volatile record store. Its per-entity views satisfy the
// same contracts as the Postgres repositories but keep everything in process
// memory, so callers must not assume durability across restarts. Concurrent
// writers may interleave; each insert appears in subsequent reads.
type MemoryStore struct {
	mu          sync.RWMutex
	donations   map[string]models.Donation
	campaign    *models.CampaignSettings
	subscribers map[string]models.NewsletterSubscriber
}

// NewMemoryStore constructs an empty volatile store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		donations:   make(map[string]models.Donation),
		subscribers: make(map[string]models.NewsletterSubscriber),
	}
}

// Donations returns the donation view of the store.
func (s *MemoryStore) Donations() *MemoryDonationStore {
	return &MemoryDonationStore{store: s}
}

// Campaigns returns the campaign settings view of the store.
func (s *MemoryStore) Campaigns() *MemoryCampaignStore {
	return &MemoryCampaignStore{store: s}
}

// Newsletter returns the subscriber view of the store.
func (s *MemoryStore) Newsletter() *MemoryNewsletterStore {
	return &MemoryNewsletterStore{store: s}
}

// MemoryDonationStore implements the donation repository contract in memory.
type MemoryDonationStore struct {
	store *MemoryStore
}

// List returns donations newest first with the same slicing semantics as the
// Postgres repository.
func (r *MemoryDonationStore) List(ctx context.Context, filter models.DonationFilter) ([]models.Donation, int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	all := r.store.sortedDonationsLocked()
	total := len(all)
	if filter.PageSize <= 0 {
		return all, total, nil
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * filter.PageSize
	if start >= total {
		return []models.Donation{}, total, nil
	}
	end := start + filter.PageSize
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

// ListAll returns the full donation set newest first.
func (r *MemoryDonationStore) ListAll(ctx context.Context) ([]models.Donation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.sortedDonationsLocked(), nil
}

// Insert stores a new donation with a generated ID and timestamps.
func (r *MemoryDonationStore) Insert(ctx context.Context, donation *models.Donation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now().UTC()
	donation.ID = uuid.NewString()
	donation.CreatedAt = now
	donation.UpdatedAt = now
	r.store.donations[donation.ID] = *donation
	return nil
}

// MemoryCampaignStore implements the campaign repository contract in memory.
type MemoryCampaignStore struct {
	store *MemoryStore
}

// GetActive returns the active campaign, or sql.ErrNoRows when absent to
// match the Postgres repository sentinel.
func (r *MemoryCampaignStore) GetActive(ctx context.Context) (*models.CampaignSettings, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if r.store.campaign == nil || !r.store.campaign.IsActive {
		return nil, sql.ErrNoRows
	}
	campaign := *r.store.campaign
	return &campaign, nil
}

// Insert stores a new active campaign.
func (r *MemoryCampaignStore) Insert(ctx context.Context, campaign *models.CampaignSettings) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	campaign.ID = uuid.NewString()
	campaign.IsActive = true
	campaign.CreatedAt = time.Now().UTC()
	stored := *campaign
	r.store.campaign = &stored
	return nil
}

// UpdateActive rewrites the editable fields of the active campaign.
func (r *MemoryCampaignStore) UpdateActive(ctx context.Context, campaign *models.CampaignSettings) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current := r.store.campaign
	if current == nil || !current.IsActive || current.ID != campaign.ID {
		return sql.ErrNoRows
	}
	current.TargetAmount = campaign.TargetAmount
	current.CampaignTitle = campaign.CampaignTitle
	current.EndDate = campaign.EndDate
	return nil
}

// MemoryNewsletterStore implements the subscriber repository contract in
// memory.
type MemoryNewsletterStore struct {
	store *MemoryStore
}

// Insert stores a new subscriber, rejecting duplicate emails just like the
// unique index does in Postgres.
func (r *MemoryNewsletterStore) Insert(ctx context.Context, subscriber *models.NewsletterSubscriber) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := strings.ToLower(subscriber.Email)
	if _, exists := r.store.subscribers[key]; exists {
		return appErrors.ErrDuplicateEmail
	}
	subscriber.ID = uuid.NewString()
	subscriber.SubscribedAt = time.Now().UTC()
	r.store.subscribers[key] = *subscriber
	return nil
}

func (s *MemoryStore) sortedDonationsLocked() []models.Donation {
	all := make([]models.Donation, 0, len(s.donations))
	for _, donation := range s.donations {
		all = append(all, donation)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all
}

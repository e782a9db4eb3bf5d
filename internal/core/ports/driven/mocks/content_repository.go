package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/custodia-labs/sercha-feed/internal/core/domain"
)

// Item is a ContentItem backed by plain fields for testing.
type Item struct {
	Type    string
	SubType string
	ItemID  int64
	Label   string
	Created time.Time
	Changed time.Time
	URL     string

	// Body fields consumed by renderers via driven.BodySource
	RawBody string
	Format  string

	// Eligibility flags evaluated by MockContentRepository
	Published         bool
	AnonymousReadable bool
}

func (i Item) EntityType() string   { return i.Type }
func (i Item) Bundle() string       { return i.SubType }
func (i Item) ID() int64            { return i.ItemID }
func (i Item) Title() string        { return i.Label }
func (i Item) CreatedAt() time.Time { return i.Created }
func (i Item) ChangedAt() time.Time { return i.Changed }
func (i Item) CanonicalURL() string { return i.URL }
func (i Item) Body() string         { return i.RawBody }
func (i Item) BodyFormat() string   { return i.Format }

// MockContentRepository is a mock implementation of ContentRepository for testing
type MockContentRepository struct {
	mu      sync.RWMutex
	items   []Item
	listErr error
}

// NewMockContentRepository creates a new MockContentRepository
func NewMockContentRepository() *MockContentRepository {
	return &MockContentRepository{}
}

// Add appends items to the repository
func (m *MockContentRepository) Add(items ...Item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, items...)
}

// FailWith makes ListPublished return err
func (m *MockContentRepository) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listErr = err
}

func (m *MockContentRepository) ListPublished(ctx context.Context) ([]domain.ContentItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.listErr != nil {
		return nil, m.listErr
	}

	eligible := lo.Filter(m.items, func(it Item, _ int) bool {
		return it.Published && it.AnonymousReadable
	})
	return lo.Map(eligible, func(it Item, _ int) domain.ContentItem {
		return it
	}), nil
}

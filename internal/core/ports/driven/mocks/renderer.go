package mocks

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sercha-feed/internal/core/domain"
)

// MockRenderer is a mock implementation of Renderer for testing.
// By default it wraps the item title in a div; set RenderFn to override.
type MockRenderer struct {
	RenderFn func(ctx context.Context, item domain.ContentItem, displayMode string) (string, error)

	// Calls records every (item id, display mode) pair rendered
	Calls []string
}

// NewMockRenderer creates a new MockRenderer
func NewMockRenderer() *MockRenderer {
	return &MockRenderer{}
}

func (m *MockRenderer) Render(ctx context.Context, item domain.ContentItem, displayMode string) (string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("%s-%d:%s", item.EntityType(), item.ID(), displayMode))
	if m.RenderFn != nil {
		return m.RenderFn(ctx, item, displayMode)
	}
	return fmt.Sprintf("<div>%s</div>", item.Title()), nil
}

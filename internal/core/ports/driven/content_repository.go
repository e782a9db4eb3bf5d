package driven

import (
	"context"

	"github.com/custodia-labs/sercha-feed/internal/core/domain"
)

// ContentRepository queries the content repository for feed-eligible items.
type ContentRepository interface {
	// ListPublished returns every item that is in the published state
	// AND readable under anonymous-user access rules, in repository
	// query order (not contractually meaningful). Access evaluation
	// belongs to the repository's query layer; callers only assert the
	// filter condition.
	ListPublished(ctx context.Context) ([]domain.ContentItem, error)
}

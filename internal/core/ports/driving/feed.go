package driving

import (
	"context"

	"github.com/custodia-labs/sercha-feed/internal/core/domain"
)

// FeedService produces the canonical record feed consumed by the
// search/embedding pipeline.
type FeedService interface {
	// FetchAll returns one record per item that is published and
	// anonymous-readable at query time. The host is the inbound
	// request's Host header; it seeds record id derivation and nothing
	// else. A repository or rendering failure aborts the whole fetch -
	// the feed never returns partial results.
	FetchAll(ctx context.Context, host string) ([]domain.Record, error)
}

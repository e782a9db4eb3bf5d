package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/sercha-feed/internal/core/domain"
	"github.com/custodia-labs/sercha-feed/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.ContentRepository = (*ContentRepository)(nil)

// ContentRepository implements driven.ContentRepository using PostgreSQL.
// Canonical URLs are composed from a configured absolute base URL and the
// item's stored path.
type ContentRepository struct {
	db      *DB
	baseURL string
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db *DB, baseURL string) *ContentRepository {
	return &ContentRepository{
		db:      db,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// ListPublished returns all items that are published and anonymous-readable
func (r *ContentRepository) ListPublished(ctx context.Context) ([]domain.ContentItem, error) {
	query := `
		SELECT entity_type, entity_id, bundle, title, body, body_format, path, created, changed
		FROM content_items
		WHERE published AND anonymous_readable
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query published items: %w", err)
	}
	defer rows.Close()

	var items []domain.ContentItem
	for rows.Next() {
		var it item
		var path string
		var created, changed int64

		err := rows.Scan(
			&it.entityType,
			&it.entityID,
			&it.bundle,
			&it.title,
			&it.body,
			&it.bodyFormat,
			&path,
			&created,
			&changed,
		)
		if err != nil {
			return nil, fmt.Errorf("scan content item: %w", err)
		}

		it.created = time.Unix(created, 0).UTC()
		it.changed = time.Unix(changed, 0).UTC()
		it.url = joinURL(r.baseURL, path)
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate content items: %w", err)
	}

	return items, nil
}

// joinURL composes an absolute canonical URL from base and path
func joinURL(base, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// item is the repository-side ContentItem. It also satisfies
// driven.BodySource so renderers can reach the stored body.
type item struct {
	entityType string
	entityID   int64
	bundle     string
	title      string
	body       string
	bodyFormat string
	url        string
	created    time.Time
	changed    time.Time
}

var (
	_ domain.ContentItem = (*item)(nil)
	_ driven.BodySource  = (*item)(nil)
)

func (i *item) EntityType() string   { return i.entityType }
func (i *item) Bundle() string       { return i.bundle }
func (i *item) ID() int64            { return i.entityID }
func (i *item) Title() string        { return i.title }
func (i *item) CreatedAt() time.Time { return i.created }
func (i *item) ChangedAt() time.Time { return i.changed }
func (i *item) CanonicalURL() string { return i.url }
func (i *item) Body() string         { return i.body }
func (i *item) BodyFormat() string   { return i.bodyFormat }

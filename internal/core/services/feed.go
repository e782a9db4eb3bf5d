package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/custodia-labs/sercha-feed/internal/core/domain"
	"github.com/custodia-labs/sercha-feed/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-feed/internal/core/ports/driving"
)

// Ensure feedService implements FeedService
var _ driving.FeedService = (*feedService)(nil)

// feedService implements the FeedService interface
type feedService struct {
	repository driven.ContentRepository
	renderer   driven.Renderer
	logger     *slog.Logger
	now        func() time.Time
}

// FeedServiceConfig holds feed service dependencies
type FeedServiceConfig struct {
	Repository driven.ContentRepository
	Renderer   driven.Renderer
	Logger     *slog.Logger

	// Now supplies the clock for dateProcessed. Defaults to time.Now.
	Now func() time.Time
}

// NewFeedService creates a new FeedService
func NewFeedService(cfg FeedServiceConfig) driving.FeedService {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &feedService{
		repository: cfg.Repository,
		renderer:   cfg.Renderer,
		logger:     cfg.Logger,
		now:        cfg.Now,
	}
}

// FetchAll builds one record per eligible item. Construction is
// all-or-nothing per fetch: a repository or rendering failure propagates
// and no partial result is returned.
func (s *feedService) FetchAll(ctx context.Context, host string) ([]domain.Record, error) {
	items, err := s.repository.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("list published items: %w", err)
	}

	processed := domain.AtomTime(s.now())

	records := make([]domain.Record, 0, len(items))
	for _, item := range items {
		content, err := s.renderer.Render(ctx, item, driven.DisplayModeDefault)
		if err != nil {
			return nil, fmt.Errorf("render %s %d: %w", item.EntityType(), item.ID(), err)
		}

		records = append(records, domain.Record{
			ID:              domain.SearchIndexID(host, item.EntityType(), item.ID()),
			Source:          domain.SourceName,
			DocumentType:    domain.DocumentTypeOf(item),
			DocumentID:      item.ID(),
			DocumentTitle:   item.Title(),
			DocumentURL:     item.CanonicalURL(),
			DocumentContent: content,
			DateCreated:     domain.AtomTime(item.CreatedAt()),
			DateModified:    domain.AtomTime(item.ChangedAt()),
			DateProcessed:   processed,
		})
	}

	s.logger.Debug("feed assembled", "host", host, "records", len(records))
	return records, nil
}

package domain

import "time"

// ContentItem is the capability set the feed needs from any repository
// entity kind. Pages, media assets, and profiles all surface through
// this one interface; the core never branches on a concrete item type.
type ContentItem interface {
	// EntityType returns the repository entity type id (e.g. "node").
	EntityType() string

	// Bundle returns the sub-type within the entity type ("page"
	// within "node"). Empty when the entity type has no bundles.
	Bundle() string

	// ID returns the repository-assigned numeric identifier, unique
	// within the entity type.
	ID() int64

	// Title returns the human-readable label.
	Title() string

	// CreatedAt returns the item creation time.
	CreatedAt() time.Time

	// ChangedAt returns the last modification time.
	ChangedAt() time.Time

	// CanonicalURL returns the primary, stable, absolute URL for
	// viewing the item.
	CanonicalURL() string
}

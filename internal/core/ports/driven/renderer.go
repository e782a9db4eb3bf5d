package driven

import (
	"context"

	"github.com/custodia-labs/sercha-feed/internal/core/domain"
)

// DisplayModeDefault is the display configuration used to produce an
// item's standard HTML representation.
const DisplayModeDefault = "default"

// Renderer produces display markup for a content item.
type Renderer interface {
	// Render returns the markup for the item in the named display
	// mode. Unknown display modes are an error, not a fallback.
	Render(ctx context.Context, item domain.ContentItem, displayMode string) (string, error)
}

// BodySource is implemented by items that carry raw body text alongside
// the feed capability set. Renderers consume it; the feed core does not.
type BodySource interface {
	// Body returns the raw body text.
	Body() string

	// BodyFormat returns the text format the body is stored in
	// (e.g. "markdown", "basic_html", "plain_text").
	BodyFormat() string
}

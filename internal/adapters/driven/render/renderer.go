package render

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/samber/lo"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/custodia-labs/sercha-feed/internal/core/domain"
	"github.com/custodia-labs/sercha-feed/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.Renderer = (*Renderer)(nil)

// htmlFormats are body formats whose markup passes through untouched.
// Sanitization happens upstream when the body is authored.
var htmlFormats = []string{"basic_html", "full_html"}

// Renderer builds the default-display markup for content items.
type Renderer struct {
	markdown goldmark.Markdown
}

// New creates a new Renderer
func New() *Renderer {
	return &Renderer{
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// Render produces the item's markup for the named display mode. Only the
// default display is configured; anything else is an error. The body is
// converted according to its stored text format and wrapped in the
// item's display container.
func (r *Renderer) Render(ctx context.Context, item domain.ContentItem, displayMode string) (string, error) {
	if displayMode != driven.DisplayModeDefault {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownDisplayMode, displayMode)
	}

	src, ok := item.(driven.BodySource)
	if !ok {
		return "", fmt.Errorf("%w: %T exposes no body", domain.ErrNotRenderable, item)
	}

	body, err := r.renderBody(src.Body(), src.BodyFormat())
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("<div class=%q>\n%s</div>", itemClass(item), body), nil
}

func (r *Renderer) renderBody(body, format string) (string, error) {
	switch {
	case format == "markdown":
		var buf bytes.Buffer
		if err := r.markdown.Convert([]byte(body), &buf); err != nil {
			return "", fmt.Errorf("convert markdown: %w", err)
		}
		return buf.String(), nil

	case lo.Contains(htmlFormats, format):
		if !strings.HasSuffix(body, "\n") {
			body += "\n"
		}
		return body, nil

	case format == "plain_text":
		escaped := html.EscapeString(body)
		return "<p>" + strings.ReplaceAll(escaped, "\n", "<br>\n") + "</p>\n", nil

	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownBodyFormat, format)
	}
}

// itemClass mirrors the CMS display container class: entity type,
// doubled-dash bundle qualifier when present.
func itemClass(item domain.ContentItem) string {
	if bundle := item.Bundle(); bundle != "" {
		return item.EntityType() + " " + item.EntityType() + "--" + bundle
	}
	return item.EntityType()
}

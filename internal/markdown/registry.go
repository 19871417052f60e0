package markdown

import (
	"errors"
	"fmt"
	"strings"

	"github.com/strogo/wok/pkg/interfaces"
)

// ErrUnknownMarkup is returned when a markup name has no registered renderer.
var ErrUnknownMarkup = errors.New("markdown: unknown markup")

// Markup names accepted by NewRenderer.
const (
	MarkupPlain    = "plain"
	MarkupMarkdown = "markdown"
)

var markupAliases = map[string]string{
	"":         MarkupPlain,
	"plain":    MarkupPlain,
	"text":     MarkupPlain,
	"markdown": MarkupMarkdown,
	"md":       MarkupMarkdown,
}

// CanonicalMarkup resolves aliases to a canonical markup name.
func CanonicalMarkup(name string) (string, bool) {
	canonical, ok := markupAliases[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}

// NewRenderer builds the markup renderer registered under name.
func NewRenderer(name string, opts interfaces.MarkupOptions) (interfaces.MarkupRenderer, error) {
	canonical, ok := CanonicalMarkup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMarkup, name)
	}
	switch canonical {
	case MarkupMarkdown:
		return NewGoldmarkRenderer(opts), nil
	default:
		return Plain{}, nil
	}
}

package markdown

import (
	"bytes"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/strogo/wok/pkg/interfaces"
)

// DefaultHighlightStyle is the chroma style used when highlighting is enabled
// without an explicit style.
const DefaultHighlightStyle = "github"

// GoldmarkRenderer implements interfaces.MarkupRenderer using the goldmark
// engine. The engine is built once at construction, so a single instance can
// be shared across pages without additional locking.
type GoldmarkRenderer struct {
	engine goldmark.Markdown
	policy *bluemonday.Policy
}

var _ interfaces.MarkupRenderer = (*GoldmarkRenderer)(nil)

// NewGoldmarkRenderer constructs a renderer with GFM extensions by default.
func NewGoldmarkRenderer(opts interfaces.MarkupOptions) *GoldmarkRenderer {
	r := &GoldmarkRenderer{engine: newGoldmarkEngine(opts)}
	if opts.Sanitize {
		r.policy = bluemonday.UGCPolicy()
		if opts.Highlight {
			r.policy.AllowAttrs("style").OnElements("pre", "span", "code")
		}
	}
	return r
}

// Render converts Markdown source into an HTML fragment.
func (r *GoldmarkRenderer) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	if r.policy != nil {
		return r.policy.Sanitize(buf.String()), nil
	}
	return buf.String(), nil
}

func newGoldmarkEngine(opts interfaces.MarkupOptions) goldmark.Markdown {
	exts := collectExtensions(opts.Extensions)
	if opts.Highlight {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithStyle(highlightStyle(opts.HighlightStyle)),
			highlighting.WithFormatOptions(chromahtml.TabWidth(4)),
		))
	}

	parserOptions := []parser.Option{
		parser.WithAutoHeadingID(),
	}

	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	// Sanitized output is scrubbed after rendering, so raw HTML may pass
	// through goldmark and be filtered by the policy instead of dropped.
	if opts.Unsafe || opts.Sanitize {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parserOptions...),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}
	if len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

func highlightStyle(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultHighlightStyle
	}
	if _, ok := styles.Registry[name]; !ok {
		return DefaultHighlightStyle
	}
	return name
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
	"typographer":   extension.Typographer,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.Linkify,
			extension.TaskList,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}

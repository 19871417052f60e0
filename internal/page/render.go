package page

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/strogo/wok/internal/logging"
	"github.com/strogo/wok/internal/metadata"
	"github.com/strogo/wok/internal/templates"
	"github.com/strogo/wok/pkg/interfaces"
)

const (
	// KeyType selects the template for a page.
	KeyType = "type"
	// DefaultType is used when a page has no type.
	DefaultType = "default"
	// TemplateSuffix is appended to the type to form the template name.
	TemplateSuffix = ".html"
	// DefaultSiteTitle is used when the site has no title.
	DefaultSiteTitle = "Untitled"
)

// pongo2 only accepts identifier-shaped context keys.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SiteInfo is the site section of every render context.
type SiteInfo struct {
	Title    string
	DateTime time.Time
}

// RenderContext is the variable bundle handed to a template.
type RenderContext struct {
	Page    map[string]any
	Site    SiteInfo
	Content string
}

// Vars flattens the context into template variables. Page attributes are
// exposed under "page" and, when their names allow it, at the top level.
// Authors resolve {{ page.author.name }} and {{ page.author.email }};
// categories print as "a/b" and iterate per segment.
func (c RenderContext) Vars() map[string]any {
	content := templates.Safe(c.Content)

	page := make(map[string]any, len(c.Page)+1)
	vars := make(map[string]any, len(c.Page)+3)
	for name, value := range c.Page {
		page[name] = value
		if identifierPattern.MatchString(name) {
			vars[name] = value
		}
	}
	page[AttrContent] = content

	vars["page"] = page
	vars["site"] = map[string]any{
		"title":    c.Site.Title,
		"datetime": c.Site.DateTime,
	}
	vars[AttrContent] = content
	return vars
}

// Renderer binds a markup renderer and a shared template engine. It holds
// no per-page state and may be reused across pages.
type Renderer struct {
	markup interfaces.MarkupRenderer
	engine interfaces.TemplateEngine
	site   SiteInfo
	logger interfaces.Logger
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithLogger sets the render logger.
func WithLogger(logger interfaces.Logger) RendererOption {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithSiteTime pins the site datetime instead of using the construction time.
func WithSiteTime(t time.Time) RendererOption {
	return func(r *Renderer) {
		if !t.IsZero() {
			r.site.DateTime = t
		}
	}
}

// NewRenderer builds a Renderer. The site datetime is captured once so that
// rendering the same page twice yields identical output.
func NewRenderer(markup interfaces.MarkupRenderer, engine interfaces.TemplateEngine, siteTitle string, opts ...RendererOption) *Renderer {
	if strings.TrimSpace(siteTitle) == "" {
		siteTitle = DefaultSiteTitle
	}
	r := &Renderer{
		markup: markup,
		engine: engine,
		site:   SiteInfo{Title: siteTitle, DateTime: time.Now()},
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Site returns the site section shared by every render.
func (r *Renderer) Site() SiteInfo { return r.site }

// TemplateName resolves the template for p from its type attribute.
func TemplateName(p *Page) (string, error) {
	v, ok := p.metadata.Get(KeyType)
	if !ok {
		return DefaultType + TemplateSuffix, nil
	}
	s, ok := v.(metadata.String)
	if !ok {
		return "", fmt.Errorf("%w: %s is %s, want string", metadata.ErrUnexpectedKind, KeyType, v.Kind())
	}
	name := strings.TrimSpace(string(s))
	if name == "" {
		name = DefaultType
	}
	return name + TemplateSuffix, nil
}

// Render converts the body to HTML, binds it into the page template and
// stores the result on p.
func (r *Renderer) Render(p *Page) (string, error) {
	if missing := p.metadata.Missing(); len(missing) > 0 {
		return "", &RenderError{
			Path:  p.path,
			Stage: StageMetadata,
			Err:   fmt.Errorf("missing guaranteed keys %s", strings.Join(missing, ", ")),
		}
	}
	logger := logging.WithPageContext(r.logger, p.path, p.Slug())

	name, err := TemplateName(p)
	if err != nil {
		return "", &RenderError{Path: p.path, Stage: StageTemplate, Err: err}
	}

	content, err := r.markup.Render(p.body)
	if err != nil {
		logger.Error("markup render failed", "error", err)
		return "", &RenderError{Path: p.path, Stage: StageMarkup, Err: err}
	}

	tpl, err := r.engine.Load(name)
	if err != nil {
		logger.Error("template load failed", "template", name, "error", err)
		return "", &RenderError{Path: p.path, Stage: StageTemplate, Err: err}
	}

	ctx := RenderContext{Page: p.Attributes(), Site: r.site, Content: content}
	html, err := tpl.Render(ctx.Vars())
	if err != nil {
		logger.Error("template render failed", "template", name, "error", err)
		return "", &RenderError{Path: p.path, Stage: StageTemplate, Err: err}
	}

	p.setRendered(content, html)
	logger.Debug("page rendered", "template", name, "bytes", len(html))
	return html, nil
}

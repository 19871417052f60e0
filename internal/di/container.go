package di

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/strogo/wok/internal/diagnostics"
	"github.com/strogo/wok/internal/logging"
	"github.com/strogo/wok/internal/logging/console"
	"github.com/strogo/wok/internal/logging/gologger"
	"github.com/strogo/wok/internal/markdown"
	"github.com/strogo/wok/internal/metadata"
	"github.com/strogo/wok/internal/page"
	"github.com/strogo/wok/internal/runtimeconfig"
	"github.com/strogo/wok/internal/templates"
	"github.com/strogo/wok/pkg/interfaces"
)

// Container wires the collaborators shared by every page in a build: one
// template engine, one markup renderer and one diagnostic sink.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	logWriter      io.Writer
	sink           interfaces.DiagnosticSink
	extraSinks     []interfaces.DiagnosticSink
	engine         interfaces.TemplateEngine
	markup         interfaces.MarkupRenderer
	clock          func() time.Time
	siteTime       time.Time

	builder  *metadata.Builder
	renderer *page.Renderer
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider selected from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithLogWriter redirects the console provider output.
func WithLogWriter(w io.Writer) Option {
	return func(c *Container) {
		c.logWriter = w
	}
}

// WithDiagnostics adds a sink receiving every diagnostic alongside the
// logger provider.
func WithDiagnostics(sink interfaces.DiagnosticSink) Option {
	return func(c *Container) {
		if sink != nil {
			c.extraSinks = append(c.extraSinks, sink)
		}
	}
}

// WithTemplateEngine overrides the engine built from TemplateDir.
func WithTemplateEngine(engine interfaces.TemplateEngine) Option {
	return func(c *Container) {
		if engine != nil {
			c.engine = engine
		}
	}
}

// WithMarkupRenderer overrides the renderer selected by Markup.
func WithMarkupRenderer(markup interfaces.MarkupRenderer) Option {
	return func(c *Container) {
		if markup != nil {
			c.markup = markup
		}
	}
}

// WithClock overrides the clock used for default page datetimes and the site datetime.
func WithClock(now func() time.Time) Option {
	return func(c *Container) {
		if now != nil {
			c.clock = now
		}
	}
}

// NewContainer validates cfg and builds the shared collaborators.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg, clock: time.Now}
	for _, opt := range opts {
		opt(c)
	}

	if c.loggerProvider == nil {
		provider, err := newLoggerProvider(cfg.Logging, c.logWriter)
		if err != nil {
			return nil, err
		}
		c.loggerProvider = provider
	}
	c.sink = diagnostics.Tee(append([]interfaces.DiagnosticSink{diagnostics.FromProvider(c.loggerProvider)}, c.extraSinks...)...)

	if c.engine == nil {
		engine, err := templates.NewEngine(cfg.TemplateDir)
		if err != nil {
			return nil, err
		}
		c.engine = engine
	}
	if c.markup == nil {
		markup, err := markdown.NewRenderer(cfg.Markup, markupOptions(cfg.Markdown))
		if err != nil {
			return nil, err
		}
		c.markup = markup
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	c.builder = metadata.NewBuilder(
		metadata.WithSink(c.sink),
		metadata.WithClock(c.clock),
		metadata.WithLocation(loc),
	)
	c.siteTime = c.clock()
	c.renderer = page.NewRenderer(c.markup, c.engine, cfg.SiteTitle,
		page.WithLogger(logging.RenderLogger(c.loggerProvider)),
		page.WithSiteTime(c.siteTime),
	)
	return c, nil
}

func (c *Container) LoggerProvider() interfaces.LoggerProvider { return c.loggerProvider }

func (c *Container) Diagnostics() interfaces.DiagnosticSink { return c.sink }

func (c *Container) TemplateEngine() interfaces.TemplateEngine { return c.engine }

func (c *Container) MarkupRenderer() interfaces.MarkupRenderer { return c.markup }

func (c *Container) MetadataBuilder() *metadata.Builder { return c.builder }

func (c *Container) Renderer() *page.Renderer { return c.renderer }

// PageOptions returns the load options derived from configuration.
func (c *Container) PageOptions() page.Options {
	return page.Options{
		Builder:      c.builder,
		FencedHeader: c.Config.FencedHeader,
		OutputDir:    c.Config.OutputDir,
	}
}

func newLoggerProvider(cfg runtimeconfig.LoggingConfig, w io.Writer) (interfaces.LoggerProvider, error) {
	switch normalized := normalize(cfg.Provider); normalized {
	case "", "console":
		opts := console.Options{Writer: w}
		if level, ok := console.ParseLevel(cfg.Level); ok {
			opts.MinLevel = &level
		}
		return console.NewProvider(opts), nil
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	default:
		return nil, fmt.Errorf("di: unsupported logging provider %q", cfg.Provider)
	}
}

func markupOptions(cfg runtimeconfig.MarkdownConfig) interfaces.MarkupOptions {
	return interfaces.MarkupOptions{
		Extensions:     cfg.Extensions,
		HardWraps:      cfg.HardWraps,
		Unsafe:         cfg.Unsafe,
		Sanitize:       cfg.Sanitize,
		Highlight:      cfg.Highlight.Enabled,
		HighlightStyle: cfg.Highlight.Style,
	}
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

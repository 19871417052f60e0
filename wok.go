// Package wok builds static HTML pages from text files carrying an optional
// metadata header. A Module owns the collaborators shared across pages and
// exposes the load, render and write steps for a single page.
package wok

import (
	"context"

	"github.com/strogo/wok/internal/commands"
	buildcmd "github.com/strogo/wok/internal/commands/build"
	"github.com/strogo/wok/internal/di"
	"github.com/strogo/wok/internal/logging"
	"github.com/strogo/wok/internal/page"
	"github.com/strogo/wok/pkg/interfaces"
)

// Page exports the page aggregate.
type Page = page.Page

// BuildPageCommand exports the single page build message.
type BuildPageCommand = buildcmd.BuildPageCommand

// BuildResult exports the outcome of a page build.
type BuildResult = buildcmd.Result

// Option exports container overrides.
type Option = di.Option

var (
	WithLoggerProvider = di.WithLoggerProvider
	WithLogWriter      = di.WithLogWriter
	WithDiagnostics    = di.WithDiagnostics
	WithTemplateEngine = di.WithTemplateEngine
	WithMarkupRenderer = di.WithMarkupRenderer
	WithClock          = di.WithClock
)

// Module represents the top level runtime façade.
type Module struct {
	container *di.Container
	logger    interfaces.Logger
}

// New constructs a module using the provided configuration and optional overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{
		container: container,
		logger:    logging.PageLogger(container.LoggerProvider()),
	}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Config returns the validated configuration.
func (m *Module) Config() Config {
	return m.container.Config
}

// LoadPage reads and normalizes the page at path.
func (m *Module) LoadPage(path string) (*Page, error) {
	p, err := page.Load(path, m.container.PageOptions())
	if err != nil {
		m.logger.Error("page load failed", "page_path", path, "error", err)
		return nil, err
	}
	logging.WithPageContext(m.logger, path, p.Slug()).Debug("page loaded")
	return p, nil
}

// RenderPage renders p with the shared markup renderer and template engine.
func (m *Module) RenderPage(p *Page) (string, error) {
	return m.container.Renderer().Render(p)
}

// WritePage writes the rendered page into dir, or the configured output
// directory when dir is empty, and returns the file path.
func (m *Module) WritePage(p *Page, dir string) (string, error) {
	target, err := p.Write(dir)
	if err != nil {
		m.logger.Error("page write failed", "page_path", p.Path(), "error", err)
		return "", err
	}
	logging.WithPageContext(m.logger, p.Path(), p.Slug()).Info("page written", "target", target)
	return target, nil
}

// BuildPageHandler returns the command handler driving this module.
func (m *Module) BuildPageHandler(onBuilt func(BuildResult)) *buildcmd.BuildPageHandler {
	return buildcmd.NewBuildPageHandler(m, commands.CommandLogger(m.container.LoggerProvider(), "build"), onBuilt)
}

// BuildPage loads, renders and writes the page at path through the command
// handler and returns the build result.
func (m *Module) BuildPage(ctx context.Context, cmd BuildPageCommand) (BuildResult, error) {
	var result BuildResult
	err := m.BuildPageHandler(func(r BuildResult) { result = r }).Execute(ctx, cmd)
	return result, err
}

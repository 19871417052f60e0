package buildcmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/strogo/wok/internal/commands"
	"github.com/strogo/wok/internal/logging"
	"github.com/strogo/wok/internal/page"
	"github.com/strogo/wok/pkg/interfaces"
)

const buildOperation = "page.build"

// Service is the page pipeline the handler drives.
type Service interface {
	LoadPage(path string) (*page.Page, error)
	RenderPage(p *page.Page) (string, error)
	WritePage(p *page.Page, dir string) (string, error)
}

// Result describes a completed build.
type Result struct {
	Path   string
	Slug   string
	Target string
	Bytes  int
	DryRun bool
}

var _ command.Commander[BuildPageCommand] = (*BuildPageHandler)(nil)

// BuildPageHandler runs load, render and write for one page.
type BuildPageHandler struct {
	inner *commands.Handler[BuildPageCommand]
}

// NewBuildPageHandler creates a handler bound to service. onBuilt, when set,
// receives the result of each successful build.
func NewBuildPageHandler(service Service, logger interfaces.Logger, onBuilt func(Result), opts ...commands.HandlerOption[BuildPageCommand]) *BuildPageHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg BuildPageCommand) error {
		p, err := service.LoadPage(msg.Path)
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		html, err := service.RenderPage(p)
		if err != nil {
			return err
		}

		result := Result{Path: msg.Path, Slug: p.Slug(), Bytes: len(html), DryRun: msg.DryRun}
		if msg.DryRun {
			result.Target, err = p.OutputPath(msg.OutputDir)
		} else {
			result.Target, err = service.WritePage(p, msg.OutputDir)
		}
		if err != nil {
			return err
		}

		logging.WithFields(baseLogger.WithContext(ctx), map[string]any{
			"target":  result.Target,
			"bytes":   result.Bytes,
			"dry_run": msg.DryRun,
		}).Info("page.command.build.completed")
		if onBuilt != nil {
			onBuilt(result)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[BuildPageCommand]{
		commands.WithLogger[BuildPageCommand](baseLogger),
		commands.WithOperation[BuildPageCommand](buildOperation),
		commands.WithMessageFields(func(msg BuildPageCommand) map[string]any {
			fields := map[string]any{"path": msg.Path}
			if msg.OutputDir != "" {
				fields["output_dir"] = msg.OutputDir
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildPageHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[BuildPageCommand].
func (h *BuildPageHandler) Execute(ctx context.Context, msg BuildPageCommand) error {
	return h.inner.Execute(ctx, msg)
}

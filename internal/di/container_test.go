package di

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/strogo/wok/internal/diagnostics"
	"github.com/strogo/wok/internal/markdown"
	"github.com/strogo/wok/internal/runtimeconfig"
	"github.com/strogo/wok/internal/templates"
)

func testConfig(t *testing.T) runtimeconfig.Config {
	t.Helper()
	cfg := runtimeconfig.Default()
	cfg.TemplateDir = t.TempDir()
	cfg.OutputDir = t.TempDir()
	return cfg
}

func TestNewContainerBuildsDefaults(t *testing.T) {
	cfg := testConfig(t)

	c, err := NewContainer(cfg, WithLogWriter(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	if _, ok := c.MarkupRenderer().(markdown.Plain); !ok {
		t.Fatalf("expected plain renderer, got %T", c.MarkupRenderer())
	}
	if _, ok := c.TemplateEngine().(*templates.Engine); !ok {
		t.Fatalf("expected pongo2 engine, got %T", c.TemplateEngine())
	}
	if c.Renderer().Site().Title != "Untitled" {
		t.Fatalf("unexpected site %+v", c.Renderer().Site())
	}
	if opts := c.PageOptions(); opts.OutputDir != cfg.OutputDir || opts.Builder != c.MetadataBuilder() {
		t.Fatalf("unexpected page options %+v", opts)
	}
}

func TestNewContainerSelectsMarkdown(t *testing.T) {
	cfg := testConfig(t)
	cfg.Markup = "md"

	c, err := NewContainer(cfg, WithLogWriter(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	if _, ok := c.MarkupRenderer().(*markdown.GoldmarkRenderer); !ok {
		t.Fatalf("expected goldmark renderer, got %T", c.MarkupRenderer())
	}
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Markup = "asciidoc"

	if _, err := NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewContainerMissingTemplateDir(t *testing.T) {
	cfg := testConfig(t)
	cfg.TemplateDir = filepath.Join(t.TempDir(), "missing")

	if _, err := NewContainer(cfg); !errors.Is(err, templates.ErrTemplateDir) {
		t.Fatalf("expected ErrTemplateDir, got %v", err)
	}
}

func TestDiagnosticsForwardToConsoleLogger(t *testing.T) {
	cfg := testConfig(t)
	var buf bytes.Buffer

	c, err := NewContainer(cfg, WithLogWriter(&buf))
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	c.Diagnostics().Warn("metadata", "guessed title")

	if !strings.Contains(buf.String(), "guessed title") || !strings.Contains(buf.String(), "wok.metadata") {
		t.Fatalf("expected warning in log output, got %q", buf.String())
	}
}

func TestContainerUsesInjectedCollaborators(t *testing.T) {
	cfg := testConfig(t)
	rec := &diagnostics.Recorder{}
	fixed := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	c, err := NewContainer(cfg, WithDiagnostics(rec), WithLogWriter(&bytes.Buffer{}), WithClock(func() time.Time { return fixed }))
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	if !c.Renderer().Site().DateTime.Equal(fixed) {
		t.Fatalf("expected fixed site time, got %v", c.Renderer().Site().DateTime)
	}

	store, err := c.MetadataBuilder().Build("notes.txt", nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if ts, _ := store.Time("datetime"); !ts.Equal(fixed) {
		t.Fatalf("expected builder to share the clock, got %v", ts)
	}
	if len(rec.Filter(diagnostics.SeverityWarn)) == 0 {
		t.Fatal("expected title warning routed to injected sink")
	}
}

package page

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/strogo/wok/internal/markdown"
	"github.com/strogo/wok/internal/templates"
	"github.com/strogo/wok/pkg/interfaces"
)

type recordingMarkup struct {
	calls []string
	err   error
}

func (m *recordingMarkup) Render(source string) (string, error) {
	m.calls = append(m.calls, source)
	if m.err != nil {
		return "", m.err
	}
	return "<p>" + source + "</p>", nil
}

type recordingEngine struct {
	loads []string
	vars  map[string]any
	err   error
}

func (e *recordingEngine) Load(name string) (interfaces.Template, error) {
	e.loads = append(e.loads, name)
	if e.err != nil {
		return nil, e.err
	}
	return recordingTemplate{engine: e}, nil
}

type recordingTemplate struct {
	engine *recordingEngine
}

func (t recordingTemplate) Render(vars map[string]any) (string, error) {
	t.engine.vars = vars
	return "rendered", nil
}

func newTemplateEngine(t *testing.T, files map[string]string) *templates.Engine {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write template: %v", err)
		}
	}
	engine, err := templates.NewEngine(dir)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return engine
}

func TestRenderAndWriteEndToEnd(t *testing.T) {
	engine := newTemplateEngine(t, map[string]string{
		"default.html": "<h1>{{title}}</h1>{{content}}",
	})
	p, err := LoadSource("hello.txt", "title: Hello\nslug: hello\n---\nHi there", Options{})
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}

	html, err := NewRenderer(markdown.Plain{}, engine, "Site").Render(p)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if html != "<h1>Hello</h1>Hi there" {
		t.Fatalf("unexpected html %q", html)
	}

	out := filepath.Join(t.TempDir(), "out")
	target, err := p.Write(out)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if target != filepath.Join(out, "hello.html") {
		t.Fatalf("unexpected target %q", target)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "<h1>Hello</h1>Hi there" {
		t.Fatalf("unexpected file content %q", data)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	engine := newTemplateEngine(t, map[string]string{
		"default.html": "{{ site.title }}|{{ site.datetime }}|{{ page.title }}|{{ content }}",
	})
	p, err := LoadSource("a.md", "title: A\n---\n# Heading", Options{})
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}
	r := NewRenderer(markdown.NewGoldmarkRenderer(interfaces.MarkupOptions{}), engine, "")

	first, err := r.Render(p)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := r.Render(p)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical renders, got %q and %q", first, second)
	}
	if !strings.HasPrefix(first, DefaultSiteTitle+"|") || !strings.Contains(first, "Heading</h1>") {
		t.Fatalf("unexpected html %q", first)
	}
}

func TestRenderContextBinding(t *testing.T) {
	markup := &recordingMarkup{}
	engine := &recordingEngine{}
	siteTime := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	p, err := LoadSource("x.txt", "title: X\ntype: post\nog-image: a.png\n---\nbody", Options{})
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}

	if _, err := NewRenderer(markup, engine, "Blog", WithSiteTime(siteTime)).Render(p); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if len(markup.calls) != 1 || markup.calls[0] != "body" {
		t.Fatalf("expected markup to render the body, got %v", markup.calls)
	}
	if len(engine.loads) != 1 || engine.loads[0] != "post.html" {
		t.Fatalf("expected post.html template, got %v", engine.loads)
	}
	site, ok := engine.vars["site"].(map[string]any)
	if !ok || site["title"] != "Blog" || site["datetime"] != siteTime {
		t.Fatalf("unexpected site vars %#v", engine.vars["site"])
	}
	if engine.vars["title"] != "X" {
		t.Fatalf("expected flattened title, got %#v", engine.vars["title"])
	}
	if _, ok := engine.vars["og-image"]; ok {
		t.Fatal("expected non-identifier keys to stay under page only")
	}
	page, ok := engine.vars["page"].(map[string]any)
	if !ok || page["og-image"] != "a.png" || page["path"] != "x.txt" {
		t.Fatalf("unexpected page vars %#v", engine.vars["page"])
	}
	if p.Content() != "<p>body</p>" {
		t.Fatalf("unexpected content %q", p.Content())
	}
	if html, ok := p.HTML(); !ok || html != "rendered" {
		t.Fatalf("expected stored html, got %q %v", html, ok)
	}
}

func TestRenderMissingTemplate(t *testing.T) {
	engine := newTemplateEngine(t, nil)
	p, err := LoadSource("x.txt", "type: article\n---\nbody", Options{})
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}

	_, err = NewRenderer(markdown.Plain{}, engine, "").Render(p)
	if !errors.Is(err, templates.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
	var notFound *templates.TemplateNotFoundError
	if !errors.As(err, &notFound) || notFound.Name != "article.html" {
		t.Fatalf("expected TemplateNotFoundError for article.html, got %v", err)
	}
	if _, ok := p.HTML(); ok {
		t.Fatal("expected failed render to leave page unrendered")
	}
}

func TestRenderWrapsMarkupFailure(t *testing.T) {
	cause := errors.New("boom")
	p, err := LoadSource("x.txt", "body", Options{})
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}

	_, err = NewRenderer(&recordingMarkup{err: cause}, &recordingEngine{}, "").Render(p)
	if !errors.Is(err, ErrRender) || !errors.Is(err, cause) {
		t.Fatalf("expected RenderError wrapping cause, got %v", err)
	}
	var renderErr *RenderError
	if !errors.As(err, &renderErr) || renderErr.Stage != StageMarkup || renderErr.Path != "x.txt" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestRenderRejectsNonStringType(t *testing.T) {
	p, err := LoadSource("x.txt", "type: [a, b]\n---\nbody", Options{})
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}
	_, err = NewRenderer(markdown.Plain{}, &recordingEngine{}, "").Render(p)
	if !errors.Is(err, ErrRender) {
		t.Fatalf("expected ErrRender, got %v", err)
	}
}

func TestRenderExposesAuthorAndCategoryToTemplates(t *testing.T) {
	engine := newTemplateEngine(t, map[string]string{
		"default.html": "[{{page.author}}|{{page.author.name}}|{{author.email}}|{{page.category}}|" +
			"{% for c in category %}<{{c}}>{% endfor %}|{{page.category|join:\",\"}}]",
	})
	p, err := LoadSource("a.txt", "author: Jane Doe <jane@example.com>\ncategory: tech/go\n---\nbody", Options{})
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}

	html, err := NewRenderer(markdown.Plain{}, engine, "Site").Render(p)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "[Jane Doe &lt;jane@example.com&gt;|Jane Doe|jane@example.com|tech/go|<tech><go>|tech,go]"
	if html != want {
		t.Fatalf("unexpected html\n got %q\nwant %q", html, want)
	}
}

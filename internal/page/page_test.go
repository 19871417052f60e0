package page

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/strogo/wok/internal/diagnostics"
	"github.com/strogo/wok/internal/metadata"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func TestLoadSplitsAndBuildsMetadata(t *testing.T) {
	path := writeSource(t, t.TempDir(), "hello.txt", "title: Hello\nslug: hello\n---\nHi there\n---\nmore")

	p, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Header() != "title: Hello\nslug: hello\n" {
		t.Fatalf("unexpected header %q", p.Header())
	}
	if p.Body() != "Hi there\n---\nmore" {
		t.Fatalf("unexpected body %q", p.Body())
	}
	if p.Title() != "Hello" || p.Slug() != "hello" {
		t.Fatalf("unexpected title/slug %q/%q", p.Title(), p.Slug())
	}
	if missing := p.Metadata().Missing(); len(missing) != 0 {
		t.Fatalf("expected guarantees to hold, missing %v", missing)
	}
	if p.Filename() != "hello.txt" {
		t.Fatalf("unexpected filename %q", p.Filename())
	}
	if _, ok := p.HTML(); ok {
		t.Fatal("expected page to start unrendered")
	}
}

func TestLoadWithoutHeaderUsesFilename(t *testing.T) {
	rec := &diagnostics.Recorder{}
	builder := metadata.NewBuilder(metadata.WithSink(rec))

	p, err := LoadSource("posts/index.md", "Just text", Options{Builder: builder})
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}
	if p.Body() != "Just text" || p.Header() != "" {
		t.Fatalf("unexpected split %q / %q", p.Header(), p.Body())
	}
	if p.Title() != "index" {
		t.Fatalf("expected title index, got %q", p.Title())
	}
	if len(rec.Filter(diagnostics.SeverityWarn)) != 1 {
		t.Fatalf("expected title warning, got %+v", rec.Entries())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"), Options{})
	if !errors.Is(err, ErrIO) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected IOError wrapping ErrNotExist, got %v", err)
	}
}

func TestLoadPropagatesFormatErrors(t *testing.T) {
	cases := map[string]string{
		"header":   "title: [unclosed\n---\nbody",
		"author":   "author: not-an-email\n---\nbody",
		"datetime": "date: yesterday\n---\nbody",
	}
	for name, source := range cases {
		_, err := LoadSource("bad.txt", source, Options{})
		if !errors.Is(err, metadata.ErrInvalidFormat) {
			t.Fatalf("%s: expected ErrInvalidFormat, got %v", name, err)
		}
		var fe *metadata.FormatError
		if !errors.As(err, &fe) || fe.Path != "bad.txt" {
			t.Fatalf("%s: expected FormatError with path, got %v", name, err)
		}
	}
}

func TestLoadFencedHeader(t *testing.T) {
	p, err := LoadSource("fenced.md", "---\ntitle: Fenced\n---\nBody", Options{FencedHeader: true})
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}
	if p.Title() != "Fenced" {
		t.Fatalf("expected fenced title, got %q", p.Title())
	}
}

func TestAttributeLookupOrder(t *testing.T) {
	p, err := LoadSource("dir/page.txt", "title: Hi\npath: shadowed\ncolor: blue\n---\nbody", Options{})
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}

	v, err := p.Attribute("path")
	if err != nil || v.String() != "dir/page.txt" {
		t.Fatalf("expected native path to win, got %v, %v", v, err)
	}
	v, err = p.Attribute("color")
	if err != nil || v.String() != "blue" {
		t.Fatalf("expected metadata fallback, got %v, %v", v, err)
	}
	v, err = p.Attribute("filename")
	if err != nil || v.String() != "page.txt" {
		t.Fatalf("expected filename, got %v, %v", v, err)
	}
	if v, ok := p.Lookup("id"); !ok || v.String() != p.ID().String() {
		t.Fatalf("expected id attribute, got %v", v)
	}

	_, err = p.Attribute("nope")
	if !errors.Is(err, ErrAttributeNotFound) {
		t.Fatalf("expected ErrAttributeNotFound, got %v", err)
	}
	var notFound *AttributeNotFoundError
	if !errors.As(err, &notFound) || notFound.Name != "nope" || notFound.Path != "dir/page.txt" {
		t.Fatalf("unexpected error %v", err)
	}

	if _, ok := p.Lookup("html"); ok {
		t.Fatal("expected html to be absent before render")
	}
}

// Package page models a single content file: its split header and body, the
// normalized metadata, and the rendered HTML once a Renderer has run.
package page

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/strogo/wok/internal/identity"
	"github.com/strogo/wok/internal/markdown"
	"github.com/strogo/wok/internal/metadata"
	"github.com/strogo/wok/internal/util"
)

// Native attribute names resolved before metadata.
const (
	AttrPath     = "path"
	AttrFilename = "filename"
	AttrSource   = "source"
	AttrHeader   = "header"
	AttrBody     = "body"
	AttrContent  = "content"
	AttrHTML     = "html"
	AttrID       = "id"
)

// Options configures page loading.
type Options struct {
	// Builder applies the metadata guarantees. Nil uses a default builder.
	Builder *metadata.Builder
	// FencedHeader accepts headers wrapped in a pair of delimiter lines.
	FencedHeader bool
	// OutputDir is the default Write target. Empty means the working directory.
	OutputDir string
}

// Page is the aggregate for one content file. Metadata satisfies every
// guarantee from the moment Load returns.
type Page struct {
	path      string
	source    string
	header    string
	body      string
	metadata  *metadata.Store
	outputDir string

	content  string
	html     string
	rendered bool
}

// Load reads path and builds its page.
func Load(path string, opts Options) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return LoadSource(path, string(data), opts)
}

// LoadSource builds a page from source text already in memory. path is used
// for the title fallback, identity and error messages.
func LoadSource(path, source string, opts Options) (*Page, error) {
	split := markdown.SplitHeader(source, markdown.WithFencedHeader(opts.FencedHeader))

	raw, err := metadata.DecodeHeader(path, split.Header)
	if err != nil {
		return nil, err
	}

	builder := opts.Builder
	if builder == nil {
		builder = metadata.NewBuilder()
	}
	store, err := builder.Build(path, raw)
	if err != nil {
		return nil, err
	}

	return &Page{
		path:      path,
		source:    source,
		header:    split.Header,
		body:      split.Body,
		metadata:  store,
		outputDir: opts.OutputDir,
	}, nil
}

func (p *Page) Path() string { return p.path }

func (p *Page) Filename() string { return filepath.Base(p.path) }

// Source returns the original text before splitting.
func (p *Page) Source() string { return p.source }

func (p *Page) Header() string { return p.header }

func (p *Page) Body() string { return p.body }

func (p *Page) Metadata() *metadata.Store { return p.metadata }

// ID is a deterministic identifier derived from the source path.
func (p *Page) ID() uuid.UUID { return identity.PageUUID(p.path) }

// Title returns the guaranteed title.
func (p *Page) Title() string {
	title, _ := p.metadata.String(metadata.KeyTitle)
	return title
}

// Slug returns the guaranteed slug.
func (p *Page) Slug() string {
	slug, _ := p.metadata.String(metadata.KeySlug)
	return slug
}

// Content returns the markup fragment from the last render.
func (p *Page) Content() string { return p.content }

// HTML returns the rendered document and whether Render has completed.
func (p *Page) HTML() (string, bool) { return p.html, p.rendered }

// Lookup resolves name against native fields first, then metadata.
func (p *Page) Lookup(name string) (metadata.Value, bool) {
	switch name {
	case AttrPath:
		return metadata.String(p.path), true
	case AttrFilename:
		return metadata.String(p.Filename()), true
	case AttrSource:
		return metadata.String(p.source), true
	case AttrHeader:
		return metadata.String(p.header), true
	case AttrBody:
		return metadata.String(p.body), true
	case AttrID:
		return metadata.String(p.ID().String()), true
	case AttrContent:
		if p.rendered {
			return metadata.String(p.content), true
		}
	case AttrHTML:
		if p.rendered {
			return metadata.String(p.html), true
		}
	}
	return p.metadata.Get(name)
}

// Attribute is Lookup returning AttributeNotFoundError for unknown names.
func (p *Page) Attribute(name string) (metadata.Value, error) {
	if v, ok := p.Lookup(name); ok {
		return v, nil
	}
	return nil, &AttributeNotFoundError{Path: p.path, Name: name}
}

// Attributes returns every metadata value plus the native fields, unwrapped
// for template use.
func (p *Page) Attributes() map[string]any {
	attrs := p.metadata.Natives()
	for _, name := range []string{AttrPath, AttrFilename, AttrBody, AttrID} {
		if v, ok := p.Lookup(name); ok {
			attrs[name] = metadata.Native(v)
		}
	}
	return attrs
}

func (p *Page) setRendered(content, html string) {
	p.content = content
	p.html = html
	p.rendered = true
}

func (p *Page) defaultOutputDir() string {
	return strings.TrimSpace(util.FirstNonEmpty(p.outputDir, "."))
}

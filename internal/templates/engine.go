// Package templates loads page templates from a directory and renders them
// with pongo2. A single Engine is shared by every page in a build.
package templates

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/strogo/wok/internal/util"
	"github.com/strogo/wok/pkg/interfaces"
)

var (
	// ErrTemplateNotFound indicates the requested template file does not exist.
	ErrTemplateNotFound = errors.New("templates: template not found")
	// ErrTemplateDir indicates the template directory could not be opened.
	ErrTemplateDir = errors.New("templates: invalid template directory")
)

// TemplateNotFoundError names the template and the directory it was looked up in.
type TemplateNotFoundError struct {
	Name string
	Dir  string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("templates: template %q not found in %s", e.Name, e.Dir)
}

func (e *TemplateNotFoundError) Is(target error) bool {
	return target == ErrTemplateNotFound
}

// Engine resolves template names relative to a base directory. Parsed
// templates are cached by name.
type Engine struct {
	dir string
	set *pongo2.TemplateSet

	mu    sync.RWMutex
	cache map[string]*Template
}

var _ interfaces.TemplateEngine = (*Engine)(nil)

// NewEngine builds an engine rooted at dir.
func NewEngine(dir string) (*Engine, error) {
	dir = strings.TrimSpace(util.FirstNonEmpty(dir, "."))
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateDir, err)
	}
	loader, err := pongo2.NewLocalFileSystemLoader(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateDir, err)
	}
	return &Engine{
		dir:   abs,
		set:   pongo2.NewSet("wok", loader),
		cache: make(map[string]*Template),
	}, nil
}

// Dir reports the absolute template directory.
func (e *Engine) Dir() string {
	return e.dir
}

// Load returns the named template, parsing it on first use.
func (e *Engine) Load(name string) (interfaces.Template, error) {
	return e.Template(name)
}

// Template is Load with a concrete return type.
func (e *Engine) Template(name string) (*Template, error) {
	name = strings.TrimSpace(name)
	e.mu.RLock()
	tpl, ok := e.cache[name]
	e.mu.RUnlock()
	if ok {
		return tpl, nil
	}

	if name == "" || !filepath.IsLocal(name) {
		return nil, &TemplateNotFoundError{Name: name, Dir: e.dir}
	}
	info, err := os.Stat(filepath.Join(e.dir, name))
	if err != nil || info.IsDir() {
		return nil, &TemplateNotFoundError{Name: name, Dir: e.dir}
	}

	parsed, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("templates: parse %s: %w", name, err)
	}
	tpl = &Template{name: name, tpl: parsed}

	e.mu.Lock()
	e.cache[name] = tpl
	e.mu.Unlock()
	return tpl, nil
}

// Template is a parsed template bound to its engine.
type Template struct {
	name string
	tpl  *pongo2.Template
}

var _ interfaces.Template = (*Template)(nil)

// Name returns the template file name relative to the engine directory.
func (t *Template) Name() string {
	return t.name
}

// Render executes the template with vars as its context.
func (t *Template) Render(vars map[string]any) (string, error) {
	out, err := t.tpl.Execute(pongo2.Context(vars))
	if err != nil {
		return "", fmt.Errorf("templates: render %s: %w", t.name, err)
	}
	return out, nil
}

// Safe marks an HTML fragment so autoescaping leaves it untouched.
func Safe(html string) any {
	return pongo2.AsSafeValue(html)
}

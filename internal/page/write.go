package page

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputPath returns the file Write would create inside dir.
func (p *Page) OutputPath(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		dir = p.defaultOutputDir()
	}
	slug := p.Slug()
	if slug == "" || slug == "." || slug == ".." || strings.ContainsAny(slug, `/\`) {
		return "", &IOError{Op: "write", Path: dir, Err: fmt.Errorf("%w: %q", ErrInvalidSlug, slug)}
	}
	return filepath.Join(dir, slug+TemplateSuffix), nil
}

// Write stores the rendered HTML as {dir}/{slug}.html, creating dir when
// needed. An empty dir falls back to the configured output directory.
func (p *Page) Write(dir string) (string, error) {
	target, err := p.OutputPath(dir)
	if err != nil {
		return "", err
	}
	if !p.rendered {
		return "", &IOError{Op: "write", Path: target, Err: ErrNotRendered}
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", &IOError{Op: "mkdir", Path: filepath.Dir(target), Err: err}
	}
	if err := os.WriteFile(target, []byte(p.html), 0o644); err != nil {
		return "", &IOError{Op: "write", Path: target, Err: err}
	}
	return target, nil
}

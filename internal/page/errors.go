package page

import (
	"errors"
	"fmt"
)

var (
	// ErrRender classifies failures of the markup or template stage.
	ErrRender = errors.New("page: render failed")
	// ErrAttributeNotFound is returned when neither the page nor its metadata
	// carries the requested attribute.
	ErrAttributeNotFound = errors.New("page: attribute not found")
	// ErrIO classifies file read and write failures.
	ErrIO = errors.New("page: i/o failure")
	// ErrNotRendered is returned by Write when Render has not run.
	ErrNotRendered = errors.New("page: not rendered")
	// ErrInvalidSlug is returned by Write when the slug cannot name a file.
	ErrInvalidSlug = errors.New("page: slug cannot be used as a file name")
)

// Render stages reported by RenderError.
const (
	StageMetadata = "metadata"
	StageMarkup   = "markup"
	StageTemplate = "template"
)

// RenderError wraps a failure raised while rendering a page.
type RenderError struct {
	Path  string
	Stage string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("page: render %s (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

func (e *RenderError) Is(target error) bool { return target == ErrRender }

// AttributeNotFoundError names the attribute that could not be resolved.
type AttributeNotFoundError struct {
	Path string
	Name string
}

func (e *AttributeNotFoundError) Error() string {
	return fmt.Sprintf("page: attribute %q not found on %s", e.Name, e.Path)
}

func (e *AttributeNotFoundError) Is(target error) bool { return target == ErrAttributeNotFound }

// IOError reports a failed read or write of a page file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("page: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }

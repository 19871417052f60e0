package metadata

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidFormat classifies every present-but-malformed metadata value.
	ErrInvalidFormat    = errors.New("metadata: invalid format")
	ErrAuthorPattern    = errors.New(`metadata: author must look like "Name <email>"`)
	ErrDateTimePattern  = errors.New("metadata: value is not an ISO-8601 datetime")
	ErrUnsupportedValue = errors.New("metadata: unsupported value type")
	ErrUnexpectedKind   = errors.New("metadata: unexpected value kind")
)

// FormatError reports a malformed metadata block or field. It matches
// ErrInvalidFormat through errors.Is and unwraps to the underlying cause.
type FormatError struct {
	Path  string
	Field string
	Value any
	Err   error
}

func (e *FormatError) Error() string {
	if e == nil {
		return ErrInvalidFormat.Error()
	}
	var b strings.Builder
	b.WriteString(ErrInvalidFormat.Error())
	if e.Field != "" {
		fmt.Fprintf(&b, ": field=%s", e.Field)
	}
	if e.Path != "" {
		fmt.Fprintf(&b, " path=%s", e.Path)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *FormatError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// withPath stamps path onto err when it is a FormatError without one.
func withPath(err error, path string) error {
	var fe *FormatError
	if errors.As(err, &fe) && fe.Path == "" {
		fe.Path = path
	}
	return err
}

package logging

import (
	"maps"

	"github.com/strogo/wok/pkg/interfaces"
)

// WithFields returns logger with fields attached. Loggers that do not
// implement FieldsLogger are returned unchanged.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	fl, ok := logger.(interfaces.FieldsLogger)
	if !ok || len(fields) == 0 {
		return logger
	}
	return fl.WithFields(maps.Clone(fields))
}

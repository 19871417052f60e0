package logging

import (
	"context"
	"strings"

	"github.com/strogo/wok/pkg/interfaces"
)

const (
	rootModule     = "wok"
	pageModule     = "wok.page"
	metadataModule = "wok.metadata"
	renderModule   = "wok.render"
)

const (
	fieldPagePath = "page_path"
	fieldPageSlug = "slug"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field so entries can be filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	module = strings.TrimSpace(module)
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// PageLogger returns the logger namespace reserved for page loading and writing.
func PageLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, pageModule)
}

// MetadataLogger returns the logger namespace reserved for metadata guarantees.
func MetadataLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, metadataModule)
}

// RenderLogger returns the logger namespace reserved for markup and template rendering.
func RenderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, renderModule)
}

// TopicLogger scopes a logger under the root module using a diagnostic topic,
// e.g. "metadata" becomes "wok.metadata".
func TopicLogger(provider interfaces.LoggerProvider, topic string) interfaces.Logger {
	topic = strings.Trim(strings.TrimSpace(topic), ".")
	if topic == "" {
		return ModuleLogger(provider, rootModule)
	}
	return ModuleLogger(provider, rootModule+"."+topic)
}

// WithPageContext enriches the logger with the page source path and slug.
// Empty values are ignored.
func WithPageContext(logger interfaces.Logger, path, slug string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldPagePath] = trimmed
	}
	if trimmed := strings.TrimSpace(slug); trimmed != "" {
		fields[fieldPageSlug] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}

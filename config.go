package wok

import "github.com/strogo/wok/internal/runtimeconfig"

var (
	ErrInvalidConfig = runtimeconfig.ErrInvalidConfig
	ErrConfigRead    = runtimeconfig.ErrConfigRead
)

type (
	Config          = runtimeconfig.Config
	MarkdownConfig  = runtimeconfig.MarkdownConfig
	HighlightConfig = runtimeconfig.HighlightConfig
	LoggingConfig   = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() Config {
	return runtimeconfig.Default()
}

// LoadConfig reads a YAML configuration file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.Load(path)
}

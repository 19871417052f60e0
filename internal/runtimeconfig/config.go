package runtimeconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure returned by Validate.
var ErrInvalidConfig = errors.New("wok config: invalid configuration")

// ErrConfigRead indicates the configuration file could not be read or decoded.
var ErrConfigRead = errors.New("wok config: unable to load configuration")

// Config aggregates the options recognised by the page pipeline. Zero values
// are replaced by Default when loading from a file.
type Config struct {
	TemplateDir  string         `yaml:"template_dir"`
	SiteTitle    string         `yaml:"site_title"`
	OutputDir    string         `yaml:"output_dir"`
	Markup       string         `yaml:"markup"`
	FencedHeader bool           `yaml:"fenced_header"`
	Timezone     string         `yaml:"timezone"`
	Markdown     MarkdownConfig `yaml:"markdown"`
	Logging      LoggingConfig  `yaml:"logging"`
}

// MarkdownConfig configures the goldmark renderer used when Markup is markdown.
type MarkdownConfig struct {
	Extensions []string        `yaml:"extensions"`
	HardWraps  bool            `yaml:"hard_wraps"`
	Unsafe     bool            `yaml:"unsafe"`
	Sanitize   bool            `yaml:"sanitize"`
	Highlight  HighlightConfig `yaml:"highlight"`
}

// HighlightConfig toggles chroma code highlighting.
type HighlightConfig struct {
	Enabled bool   `yaml:"enabled"`
	Style   string `yaml:"style"`
}

// LoggingConfig selects the logger provider.
type LoggingConfig struct {
	Provider  string   `yaml:"provider"`
	Level     string   `yaml:"level"`
	Format    string   `yaml:"format"`
	AddSource bool     `yaml:"add_source"`
	Focus     []string `yaml:"focus"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		TemplateDir: "templates",
		SiteTitle:   "Untitled",
		OutputDir:   ".",
		Markup:      "plain",
		Timezone:    "UTC",
		Markdown: MarkdownConfig{
			Highlight: HighlightConfig{Style: "github"},
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Load reads a YAML file on top of Default. Keys missing from the file keep
// their default values; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrConfigRead, err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Decode unmarshals YAML into cfg, leaving fields absent from data untouched.
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrConfigRead, err)
	}
	return nil
}

// Location resolves Timezone, defaulting to UTC.
func (cfg Config) Location() (*time.Location, error) {
	name := strings.TrimSpace(cfg.Timezone)
	if name == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	err := validation.ValidateStruct(&cfg,
		validation.Field(&cfg.TemplateDir, validation.Required.Error("template directory is required")),
		validation.Field(&cfg.OutputDir, validation.Required.Error("output directory is required")),
		validation.Field(&cfg.Markup, validation.By(func(value any) error {
			switch normalize(value.(string)) {
			case "", "plain", "text", "markdown", "md":
				return nil
			default:
				return validation.NewError("wok.config.markup_unknown", "markup must be plain or markdown")
			}
		})),
		validation.Field(&cfg.Timezone, validation.By(func(value any) error {
			if _, err := time.LoadLocation(strings.TrimSpace(value.(string))); err != nil {
				return validation.NewError("wok.config.timezone_invalid", "timezone is not a known IANA location")
			}
			return nil
		})),
		validation.Field(&cfg.Logging),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Validate checks the logging provider, level and format.
func (cfg LoggingConfig) Validate() error {
	return validation.ValidateStruct(&cfg,
		validation.Field(&cfg.Provider,
			validation.Required.Error("logging provider is required"),
			validation.By(func(value any) error {
				if !isSupportedProvider(normalize(value.(string))) {
					return validation.NewError("wok.config.logging_provider_unknown", "logging provider is invalid")
				}
				return nil
			}),
		),
		validation.Field(&cfg.Level, validation.By(func(value any) error {
			if level := normalize(value.(string)); level != "" && !isSupportedLevel(level) {
				return validation.NewError("wok.config.logging_level_invalid", "logging level is invalid")
			}
			return nil
		})),
		validation.Field(&cfg.Format, validation.By(func(value any) error {
			if format := normalize(value.(string)); format != "" && !isSupportedFormat(format) {
				return validation.NewError("wok.config.logging_format_invalid", "logging format is invalid")
			}
			return nil
		})),
	)
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch level {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch format {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}

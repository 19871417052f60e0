package buildcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const buildPageMessageType = "wok.page.build"

// BuildPageCommand loads, renders and writes a single page.
type BuildPageCommand struct {
	// Path locates the page source file.
	Path string `json:"path"`
	// OutputDir overrides the configured output directory when set.
	OutputDir string `json:"output_dir,omitempty"`
	// DryRun renders the page without writing it.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (BuildPageCommand) Type() string { return buildPageMessageType }

// Validate ensures a source path is present before handlers execute.
func (cmd BuildPageCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("wok.page.build.path_required", "path is required")
			}
			return nil
		})),
	)
}

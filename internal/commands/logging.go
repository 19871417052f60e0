package commands

import (
	"strings"

	"github.com/strogo/wok/internal/logging"
	"github.com/strogo/wok/pkg/interfaces"
)

// CommandLogger returns the logger for the named command group, e.g.
// "wok.commands.build".
func CommandLogger(provider interfaces.LoggerProvider, group string) interfaces.Logger {
	group = strings.TrimSpace(group)
	if group == "" {
		group = "build"
	}
	return logging.WithFields(
		logging.ModuleLogger(provider, "wok.commands."+group),
		map[string]any{"command_group": group},
	)
}

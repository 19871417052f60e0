package commands

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"
	"github.com/strogo/wok/internal/logging"
	"github.com/strogo/wok/pkg/interfaces"
)

// TelemetryStatus is the outcome class of one command run.
type TelemetryStatus string

const (
	TelemetryStatusSuccess      TelemetryStatus = "success"
	TelemetryStatusFailed       TelemetryStatus = "failed"
	TelemetryStatusContextError TelemetryStatus = "context_error"
)

// TelemetryInfo is handed to the telemetry callback after every run.
// Logger already carries Fields.
type TelemetryInfo struct {
	Command   string
	Operation string
	Fields    map[string]any
	Duration  time.Duration
	Error     error
	Status    TelemetryStatus
	Logger    interfaces.Logger
}

type Telemetry[T command.Message] func(ctx context.Context, msg T, info TelemetryInfo)

// LogTelemetry logs one line per run: info on success, error otherwise.
func LogTelemetry[T command.Message](fallback interfaces.Logger) Telemetry[T] {
	fallback = EnsureLogger(fallback)
	return func(_ context.Context, _ T, info TelemetryInfo) {
		logger := info.Logger
		if logger == nil {
			logger = logging.WithFields(fallback, info.Fields)
		}
		args := []any{"status", string(info.Status), "duration_ms", info.Duration.Milliseconds()}
		if info.Status == TelemetryStatusSuccess {
			logger.Info("command done", args...)
			return
		}
		logger.Error("command done", append(args, "error", info.Error)...)
	}
}

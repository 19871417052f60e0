package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to command failures.
const (
	CodeInvalid  = "WOK_COMMAND_INVALID"
	CodeCanceled = "WOK_COMMAND_CANCELED"
	CodeTimeout  = "WOK_COMMAND_TIMEOUT"
	CodeFailed   = "WOK_COMMAND_FAILED"
)

func invalidCommand(err error) error {
	return tag(err, goerrors.CategoryValidation, "invalid command", CodeInvalid)
}

// classify tags a command outcome and maps it to a telemetry status.
func classify(err error) (TelemetryStatus, error) {
	switch {
	case err == nil:
		return TelemetryStatusSuccess, nil
	case errors.Is(err, context.DeadlineExceeded):
		return TelemetryStatusContextError, tag(err, goerrors.CategoryCommand, "command timed out", CodeTimeout)
	case errors.Is(err, context.Canceled):
		return TelemetryStatusContextError, tag(err, goerrors.CategoryCommand, "command canceled", CodeCanceled)
	default:
		return TelemetryStatusFailed, tag(err, goerrors.CategoryCommand, "command failed", CodeFailed)
	}
}

// tag leaves errors already carrying a category alone.
func tag(err error, category goerrors.Category, message, code string) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, category, message).WithTextCode(code)
}

package inventory

import (
	"log/slog"
)

// Notifier receives the failures the managers swallow. Validation and
// store errors never propagate to the caller; a Notifier is the only
// channel through which they can be surfaced. The default implementation
// just writes the diagnostic log.
type Notifier interface {
	// ValidationFailed reports a submission refused before any store call.
	ValidationFailed(entity string, reason error)

	// StoreFailed reports a record-store operation that did not happen.
	StoreFailed(op string, err error)
}

type logNotifier struct {
	logger *slog.Logger
}

func (n logNotifier) ValidationFailed(entity string, reason error) {
	n.logger.Debug("submission rejected", "entity", entity, "reason", reason)
}

func (n logNotifier) StoreFailed(op string, err error) {
	n.logger.Error("record store operation failed", "op", op, "error", err)
}

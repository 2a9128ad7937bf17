package handler

import (
	"log/slog"
)

// captureNotifier hooks into a manager and records the last swallowed
// failure so the transport can translate it into a status code. The core
// contract stays silent; this is the injectable reporting path.
//
// It is driven only under the owning handler's mutex.
type captureNotifier struct {
	logger     *slog.Logger
	validation error
	store      error
}

func (n *captureNotifier) ValidationFailed(entity string, reason error) {
	n.validation = reason
	n.logger.Debug("submission rejected", "entity", entity, "reason", reason)
}

func (n *captureNotifier) StoreFailed(op string, err error) {
	n.store = err
}

func (n *captureNotifier) reset() {
	n.validation = nil
	n.store = nil
}

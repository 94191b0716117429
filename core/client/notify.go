package client

import (
	"context"
	"log/slog"

	"github.com/arenakit/arena/pkg/logger"
)

// Level classifies a transient notice.
type Level int

const (
	// LevelWarning marks recoverable conditions worth the user's attention.
	LevelWarning Level = iota
	// LevelError marks failed calls.
	LevelError
)

// String returns the lowercase level name.
func (l Level) String() string {
	if l == LevelWarning {
		return "warning"
	}
	return "error"
}

// Notifier receives the transient, non-blocking notices the client emits on
// every failure branch. Frontends bind this to their message toast; headless
// programs keep the default log-backed notifier.
type Notifier interface {
	Notify(ctx context.Context, level Level, message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, level Level, message string)

// Notify calls the wrapped function.
func (f NotifierFunc) Notify(ctx context.Context, level Level, message string) {
	f(ctx, level, message)
}

// NewLogNotifier returns a Notifier that writes notices to a slog logger.
func NewLogNotifier(log *slog.Logger) Notifier {
	if log == nil {
		log = slog.Default()
	}
	return NotifierFunc(func(ctx context.Context, level Level, message string) {
		if level == LevelWarning {
			log.WarnContext(ctx, message, logger.Component("client"))
			return
		}
		log.ErrorContext(ctx, message, logger.Component("client"))
	})
}

// Decision is the outcome of a blocking confirmation request.
type Decision int

const (
	// DecisionCancel dismisses the prompt; the triggering call still fails
	// but no further action is taken.
	DecisionCancel Decision = iota
	// DecisionProceed acknowledges the prompt.
	DecisionProceed
)

// Confirmer answers the blocking confirmation raised on a session-invalid
// response. Implementations may suspend on user input; a cancelled context
// counts as dismissal.
type Confirmer interface {
	Confirm(ctx context.Context, message string) Decision
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(ctx context.Context, message string) Decision

// Confirm calls the wrapped function.
func (f ConfirmerFunc) Confirm(ctx context.Context, message string) Decision {
	return f(ctx, message)
}

// DenyConfirmer always dismisses. It is the default, so session teardown
// never happens without an explicit decision source wired in.
func DenyConfirmer() Confirmer {
	return ConfirmerFunc(func(context.Context, string) Decision {
		return DecisionCancel
	})
}

// AcceptConfirmer always proceeds. Useful for non-interactive programs that
// want automatic session teardown on expiry.
func AcceptConfirmer() Confirmer {
	return ConfirmerFunc(func(context.Context, string) Decision {
		return DecisionProceed
	})
}

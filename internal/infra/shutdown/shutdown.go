package shutdown

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// ErrInterrupted is returned by Check after a termination signal.
var ErrInterrupted = errors.New("interrupted")

// Signals are the signals that cancel the context returned by WithSignals.
var Signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// WithSignals returns a context that is canceled when the process receives
// one of Signals. stop releases the signal handler and must be called.
func WithSignals(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	return signal.NotifyContext(parent, Signals...)
}

// Check reports whether work should stop. It returns nil while ctx is live
// and an error wrapping ErrInterrupted and the context cause otherwise.
func Check(ctx context.Context) error {
	if ctx.Err() == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInterrupted, context.Cause(ctx))
}

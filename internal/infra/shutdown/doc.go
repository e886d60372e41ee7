// Package shutdown turns process termination signals into context
// cancellation for the cybertoken CLI.
//
// Usage:
//
//	ctx, stop := shutdown.WithSignals(context.Background())
//	defer stop()
//	app.RunContext(ctx, os.Args)
//
// Long-running commands call Check between units of work and stop with
// ErrInterrupted once a signal has arrived.
package shutdown

// Package cleanup bridges OS termination signals to a context.Context, the
// way the rest of this module expects to be told to shut down.
package cleanup

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Context returns a context that is canceled the first time the process
// receives SIGINT or SIGTERM, along with a stop function that releases the
// underlying signal notification. Callers thread the returned context
// through blocking operations (HTTP requests, channel receives) so that a
// signal can interrupt them at their next suspension point.
func Context(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// Package httputils holds small helpers for building the HTTP clients this
// module uses to talk to CI servers. It deliberately does not retry or back
// off: the poller's fixed polling cadence is its retry mechanism, and a
// transport-level retry would hide a server outage behind extra latency
// instead of surfacing it as a skipped tick.
package httputils

import (
	"io"
	"net/http"
	"time"

	"github.com/arekfu/carlo/go/sklog"
)

// DefaultTimeout is used for every CI-server request unless a caller
// overrides it.
const DefaultTimeout = 30 * time.Second

// NewTimeoutClient returns an *http.Client with a fixed, non-retrying
// timeout. No transport-level retries are installed; see the package
// comment.
func NewTimeoutClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout: timeout,
	}
}

// ReadAndClose reads r to completion and closes it, logging (but not
// returning) any error encountered while doing so. It exists so callers can
// discard a response body in a single defer without leaking the
// connection.
func ReadAndClose(r io.ReadCloser) {
	if r == nil {
		return
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		sklog.Warningf("error reading body before close: %s", err)
	}
	if err := r.Close(); err != nil {
		sklog.Warningf("error closing body: %s", err)
	}
}

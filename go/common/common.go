// Package common holds the small amount of boilerplate every binary in this
// module performs at startup: parsing flags and, optionally, starting a
// Prometheus metrics server. It follows the functional-options shape this
// code base uses elsewhere so that adding a new startup concern doesn't
// require changing every call site.
package common

import (
	"context"
	"flag"
	"os"

	"github.com/arekfu/carlo/go/metrics2"
	"github.com/arekfu/carlo/go/sklog"
)

// FlagSet is the flag.FlagSet most recently used by InitWith. Tests and
// callers that need to inspect parsed flags after InitWith can read it here.
var FlagSet = flag.CommandLine

type options struct {
	flagSet        *flag.FlagSet
	prometheusAddr *string
}

// Opt configures InitWith.
type Opt func(*options)

// FlagSetOpt overrides the flag.FlagSet that InitWith parses, instead of the
// default flag.CommandLine. Primarily useful in tests.
func FlagSetOpt(fs *flag.FlagSet) Opt {
	return func(o *options) { o.flagSet = fs }
}

// PrometheusOpt starts a metrics server on addr once InitWith has parsed
// flags successfully. A nil or
// empty addr disables the metrics server.
func PrometheusOpt(addr *string) Opt {
	return func(o *options) { o.prometheusAddr = addr }
}

// InitWith parses flags and applies the given options, returning any error
// encountered while parsing.
func InitWith(appName string, opts ...Opt) error {
	o := &options{flagSet: flag.CommandLine}
	for _, opt := range opts {
		opt(o)
	}
	FlagSet = o.flagSet
	if err := FlagSet.Parse(os.Args[1:]); err != nil {
		return err
	}

	if o.prometheusAddr != nil && *o.prometheusAddr != "" {
		addr := *o.prometheusAddr
		go func() {
			if err := metrics2.Serve(context.Background(), addr); err != nil {
				sklog.Errorf("metrics server on %s exited: %s", addr, err)
			}
		}()
	}

	sklog.Infof("%s started", appName)
	return nil
}

// InitWithMust is InitWith but terminates the process on error, the way the
// rest of this module's binaries expect startup failures to be fatal.
func InitWithMust(appName string, opts ...Opt) {
	if err := InitWith(appName, opts...); err != nil {
		sklog.Fatalf("failed to initialize %s: %s", appName, err)
	}
}

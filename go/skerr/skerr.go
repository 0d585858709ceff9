// Package skerr wraps github.com/pkg/errors so call sites get a single,
// consistent way to build and annotate errors, with a stack trace attached
// the first time an error is created.
package skerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Fmt creates a new error from the given format string and args, capturing
// a stack trace at the call site.
func Fmt(format string, args ...interface{}) error {
	return errors.WithStack(fmt.Errorf(format, args...))
}

// Wrap annotates err with a stack trace at the call site. Returns nil if err
// is nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return errors.WithStack(err)
}

// Wrapf annotates err with a stack trace and the given formatted message.
// Returns nil if err is nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}

// Unwrap returns the innermost wrapped error, or err itself if it was never
// wrapped by this package.
func Unwrap(err error) error {
	return errors.Cause(err)
}

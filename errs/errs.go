// Package errs defines the sentinel error taxonomy shared by every package
// in meshpart. spec.md §7 describes one error taxonomy owned by the whole
// engine rather than one per package, so — unlike the teacher's per-package
// sentinels — these live in a single place and every package wraps them
// with its own method context via Wrap.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrIoError indicates malformed input or a failed read/write of a
	// graph, mapping, ordering, or architecture text stream.
	ErrIoError = errors.New("meshpart: io error")

	// ErrInvalidArgument indicates a base value outside {0,1}, a negative
	// load, mismatched array lengths, or another caller-supplied
	// inconsistency.
	ErrInvalidArgument = errors.New("meshpart: invalid argument")

	// ErrResourceExhausted indicates an allocation failure. Always
	// propagated with partial state cleaned up.
	ErrResourceExhausted = errors.New("meshpart: resource exhausted")

	// ErrInconsistentState indicates a debug-check failure: a bug in the
	// engine or in a caller, always fatal.
	ErrInconsistentState = errors.New("meshpart: inconsistent state")

	// ErrUnsupportedConfig indicates an algorithm was asked to run against
	// a configuration it cannot support (e.g. a variable-sized
	// architecture where a fixed-size one is required).
	ErrUnsupportedConfig = errors.New("meshpart: unsupported configuration")

	// ErrTransientFailure indicates the coarsener produced too few
	// contractions at a level; recoverable locally by falling back to
	// direct refinement at the current level.
	ErrTransientFailure = errors.New("meshpart: transient failure")
)

// Wrap prefixes err with "<pkg>.<method>: " while preserving errors.Is
// compatibility with the wrapped sentinel, mirroring the teacher's
// builderErrorf/denseErrorf "<Method>: <context>" convention.
func Wrap(pkg, method string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %w", pkg, method, err)
}

// Wrapf is Wrap with a formatted message appended before the sentinel.
func Wrapf(pkg, method, format string, err error, args ...interface{}) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s.%s: %s: %w", pkg, method, msg, err)
}

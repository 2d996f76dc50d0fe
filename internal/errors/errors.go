// Package errors is the single error import of the module: stdlib inspection
// next to the pkg/errors constructors that record a stack trace.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Inspection walks the Unwrap chain, which pkg/errors wrappers implement.
//
//nolint:gochecknoglobals
var (
	Is = stderrors.Is
	As = stderrors.As
)

// Wrapping and formatting capture the caller's stack. Wrap and Wrapf return nil for a nil error.
//
//nolint:gochecknoglobals
var (
	Errorf    = pkgerrors.Errorf
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
)

// New returns a sentinel error without a stack trace, for package-level values compared with Is.
func New(text string) error {
	return stderrors.New(text)
}

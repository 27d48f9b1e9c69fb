// Package errors builds the wrapped errors returned by the formula parser and
// the rule decoder.
//
// Messages are formatted lazily from a format string and its arguments. The
// first argument that is itself an error is the cause, and both %v and %w
// format it. A parse failure built as
//
//	errors.New("parse %q: %w", text, &parser.ParseError{...})
//
// prints the text and the failure, and As recovers the *parser.ParseError
// with its kind and offset.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

type err struct {
	msg  string
	args []interface{}
}

func (err err) Error() string {
	// Sprintf doesn't know %w, so the cause is printed as a plain value.
	return fmt.Sprintf(strings.ReplaceAll(err.msg, "%w", "%v"), err.args...)
}

func (err err) Unwrap() error {
	for _, arg := range err.args {
		if wrapped, ok := arg.(error); ok {
			return wrapped
		}
	}
	return nil
}

// New returns an error formatted from msg and args, caused by the first arg
// that is an error.
func New(msg string, args ...interface{}) error {
	return err{msg, args}
}

// As finds the first error in the chain of causes of err that matches target,
// which must be a non-nil pointer to an error type.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Is reports whether target is in the chain of causes of err.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

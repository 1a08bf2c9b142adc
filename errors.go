package sqift

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is matched by errors returned from FromStorage when the
	// stored value's kind is not the one the requested type binds as, such as
	// extracting an integer from a TEXT column.
	ErrTypeMismatch = errors.New("stored value kind does not match the requested type")

	// ErrParseFailure is matched by errors returned from FromStorage when a
	// text-backed value does not parse against its expected format.
	ErrParseFailure = errors.New("stored text could not be parsed as the requested type")

	ErrDB                  = errors.New("an error occured with the DB")
	ErrNotFound            = errors.New("the requested entity could not be found")
	ErrConstraintViolation = errors.New("a uniqueness constraint was violated")
)

// Error is a typed error returned by conversion and storage functions as
// their error value. It contains both a message explaining what happened as
// well as one or more error values it considers to be its causes. Error is
// compatible with the use of errors.Is() - calling errors.Is on some Error
// value err along with any value of error it holds as one of its causes will
// return true. This allows for easy examination and failure condition
// checking without needing to resort to manual typecasting.
//
// If Error has at least one cause defined, the result of calling
// Error.Error() will be its primary message with the result of calling
// Error() on its first cause appended to it.
//
// Error should not be used directly; call NewError to create one.
type Error struct {
	msg   string
	cause []error
}

// Error returns the message defined for the Error. If a message was defined
// for it when created, that message is returned, concatenated with the result
// of calling Error() on its first cause if one is defined. If no message or
// an empty message was defined for it when created, but there is at least one
// cause defined for it, the result of calling Error() on the first cause is
// returned. If no message is defined and no causes are defined, returns the
// empty string.
func (e Error) Error() string {
	if e.msg == "" && e.cause != nil {
		return e.cause[0].Error()
	}

	if e.cause != nil {
		return e.msg + ": " + e.cause[0].Error()
	}

	return e.msg
}

// Unwrap returns the causes of Error. The return value will be nil if no
// causes were defined for it.
//
// This function is for interaction with the errors API. It will only be used
// in Go version 1.20 and later; 1.19 will default to use of Error.Is when
// calling errors.Is on the Error.
func (e Error) Unwrap() []error {
	if len(e.cause) > 0 {
		return e.cause
	}
	return nil
}

// Is returns whether Error either Is itself the given target error, or one of
// its causes is.
//
// This function is for interaction with the errors API.
func (e Error) Is(target error) bool {
	// is the target error itself?
	if errTarget, ok := target.(Error); ok {
		if e.msg == errTarget.msg {
			if len(e.cause) == len(errTarget.cause) {
				allCausesEqual := true
				for i := range e.cause {
					if e.cause[i] != errTarget.cause[i] {
						allCausesEqual = false
						break
					}
				}
				if allCausesEqual {
					return true
				}
			}
		}
	}

	// otherwise, check if any cause equals target. causes that are themselves
	// of type Error need to run the normal Is, because Go 1.19 does not
	// support wrapping multiple errors.
	for i := range e.cause {
		if sErr, ok := e.cause[i].(Error); ok {
			if sErr.Is(target) {
				return true
			}
		} else if e.cause[i] == target {
			return true
		}
	}
	return false
}

// NewError creates a new Error with the given message, along with any errors
// it should wrap as its causes. Providing cause errors is not required, but
// will cause it to return true when it is checked against that error via a
// call to errors.Is.
func NewError(msg string, causes ...error) Error {
	err := Error{msg: msg}
	if len(causes) > 0 {
		err.cause = make([]error, len(causes))
		copy(err.cause, causes)
	}
	return err
}

// kindMismatch builds the error every extractor returns when handed a stored
// value of the wrong kind.
func kindMismatch(want Kind, got StorageValue) error {
	return NewError(fmt.Sprintf("not a %s value: %s", want, got), ErrTypeMismatch)
}

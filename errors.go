package studentdb

import (
	"errors"
	"fmt"
	"reflect"

	"modernc.org/sqlite"
)

var (
	ErrTypeMismatch        = errors.New("entity is not of a type supported by this mapper")
	ErrDB                  = errors.New("an error occured with the DB")
	ErrConstraintViolation = errors.New("a constraint was violated")
	ErrConfiguration       = errors.New("invalid configuration")
	ErrNotImplemented      = errors.New("not implemented")
	ErrDecodingFailure     = errors.New("value could not be decoded")
)

// Error is a typed error returned by functions in studentdb as their error
// value. It contains both a message explaining what happened as well as one or
// more error values it considers to be its causes. Error is compatible with the
// use of errors.Is() - calling errors.Is on some Error value err along with any
// value of error it holds as one of its causes will return true. This allows
// for easy examination and failure condition checking without needing to resort
// to manual typecasting.
//
// If Error has at least one cause defined, the result of calling Error.Error()
// will be its primary message with the result of calling Error() on its first
// cause appended to it.
//
// Error should not be used directly; call NewError to create one.
type Error struct {
	msg   string
	cause []error
}

// Error returns the message defined for the Error. If a message was defined for
// it when created, that message is returned, concatenated with the result of
// calling Error() on the its first cause if one is defined. If no message or an
// empty message was defined for it when created, but there is at least one
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

// Unwrap returns the causes of Error. The return value will be nil if no causes
// were defined for it.
func (e Error) Unwrap() []error {
	if len(e.cause) > 0 {
		return e.cause
	}
	return nil
}

// Is returns whether Error either Is itself the given target error, or one of
// its causes is.
func (e Error) Is(target error) bool {
	if errTarget, ok := target.(Error); ok {
		if e.msg == errTarget.msg && len(e.cause) == len(errTarget.cause) {
			allCausesEqual := true
			for i := range e.cause {
				if !sameError(e.cause[i], errTarget.cause[i]) {
					allCausesEqual = false
					break
				}
			}
			if allCausesEqual {
				return true
			}
		}
	}

	for i := range e.cause {
		// nested Errors get the full Is treatment so that a cause of a cause
		// still matches.
		if sErr, ok := e.cause[i].(Error); ok {
			if sErr.Is(target) {
				return true
			}
		} else if sameError(e.cause[i], target) {
			return true
		}
	}
	return false
}

// sameError reports whether a and b are the same error value. Values of
// uncomparable dynamic types are never the same.
func sameError(a, b error) bool {
	if a == nil || b == nil {
		return a == b
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// NewError creates a new Error with the given message, along with any errors it
// should wrap as its causes. Providing cause errors is not required, but will
// cause it to return true when it is checked against that error via a call to
// errors.Is.
func NewError(msg string, causes ...error) Error {
	err := Error{msg: msg}
	if len(causes) > 0 {
		err.cause = make([]error, len(causes))
		copy(err.cause, causes)
	}
	return err
}

// TypeMismatch returns an Error that matches ErrTypeMismatch and names the
// dynamic type of the rejected value.
func TypeMismatch(v any, expected string) Error {
	return NewError(fmt.Sprintf("got %T, need %s", v, expected), ErrTypeMismatch)
}

func convertDBError(err error) error {
	sqliteErr := &sqlite.Error{}
	if errors.As(err, &sqliteErr) {
		primaryCode := sqliteErr.Code() & 0xff
		if primaryCode == 19 {
			// preserve the error message for constraints violations
			return NewError(ErrConstraintViolation.Error(), err, ErrConstraintViolation)
		}
	}

	return err
}

// WrapDBError creates a new Error that wraps the given error as a cause and
// automatically adds ErrDB as another cause. A user-set message may be provided
// if desired with msg, but it may be left as "".
//
// SQLite errors reporting a constraint failure are converted so that the
// result also returns true for errors.Is(err, ErrConstraintViolation). The
// original driver error is always kept in the chain.
//
// msg, if provided, is used to create the msg of the error by calling
// fmt.Sprint. For format capability, use WrapDBErrorf.
func WrapDBError(err error, msg ...any) Error {
	err = convertDBError(err)

	var errMsg string
	if len(msg) > 0 {
		errMsg = fmt.Sprint(msg...)
	}

	return Error{
		msg:   errMsg,
		cause: []error{err, ErrDB},
	}
}

// WrapDBErrorf creates a new Error that wraps the given error as a cause and
// automatically adds ErrDB as another cause. The message is built by calling
// fmt.Sprintf with format and a.
func WrapDBErrorf(err error, format string, a ...any) Error {
	err = convertDBError(err)

	return Error{
		msg:   fmt.Sprintf(format, a...),
		cause: []error{err, ErrDB},
	}
}

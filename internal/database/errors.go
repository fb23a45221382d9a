package database

import (
	"errors"
)

var (
	// ErrConnectionFailure is returned when no connection could be acquired.
	// No statement has been sent to the store when this is returned.
	ErrConnectionFailure = errors.New("database connection failed")

	// ErrQueryFailure is returned when the store rejected or failed a statement.
	ErrQueryFailure = errors.New("database query failed")

	// ErrNoRows is what Row.Scan returns for an empty result, whatever the driver.
	ErrNoRows = errors.New("no rows in result set")
)

// Error pairs one of the sentinels above with the driver error that caused it.
type Error struct {
	Kind  error
	Op    string
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Is(target error) bool {
	return e != nil && target == e.Kind
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func ConnectionFailure(op string, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: ErrConnectionFailure, Op: op, Cause: cause}
}

// QueryFailure wraps a statement error. Errors that already carry a kind are
// returned untouched so the first classification wins.
func QueryFailure(op string, cause error) error {
	if cause == nil {
		return nil
	}
	var dbErr *Error
	if errors.As(cause, &dbErr) {
		return cause
	}
	return &Error{Kind: ErrQueryFailure, Op: op, Cause: cause}
}

// Detail returns the driver message behind err, or err's own message when it
// was not produced by this package.
func Detail(err error) string {
	if err == nil {
		return ""
	}
	var dbErr *Error
	if errors.As(err, &dbErr) && dbErr.Cause != nil {
		return dbErr.Cause.Error()
	}
	return err.Error()
}

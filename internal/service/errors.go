package service

import "errors"

// Error kinds. Handlers map each one to an HTTP status.
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrAlreadyDelivered = errors.New("already delivered")
)

// Error is a failure the client is allowed to see: a kind plus a human readable detail.
// Anything that is not an *Error is an internal fault.
type Error struct {
	Kind   error
	Detail string
}

func (e *Error) Error() string { return e.Detail }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

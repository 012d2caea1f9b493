package errors

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredential  = errors.New("invalid credential")
	ErrDuplicateOwner     = errors.New("owner already registered")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrInvalidInput       = errors.New("invalid input")
)

// Is reports whether err matches target, following wrapped chains.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

type Error struct {
	Err     error
	Message string
	Code    string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Wrap(err error, message string) *Error {
	return &Error{
		Err:     err,
		Message: message,
		Code:    "INTERNAL_ERROR",
	}
}

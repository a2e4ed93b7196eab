package domain

import (
	"errors"
	"fmt"
)

// Error categories for the whole application. Usecases attach a
// human-readable message to one of these sentinels; the HTTP boundary maps
// each category to a status code with errors.Is and renders the message.
var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation error")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrForbidden        = errors.New("forbidden")

	// ErrStorage marks transient infrastructure failures (pool exhaustion,
	// connection loss). Callers should treat it as retryable.
	ErrStorage = errors.New("storage error")
)

// Error is a categorised application error. Error() returns only the
// message, so the caller-facing text stays exactly what the usecase wrote.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func NotFoundf(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func InvalidOperationf(format string, args ...any) error {
	return &Error{Kind: ErrInvalidOperation, Message: fmt.Sprintf(format, args...)}
}

func Forbiddenf(format string, args ...any) error {
	return &Error{Kind: ErrForbidden, Message: fmt.Sprintf(format, args...)}
}

// StorageError wraps a driver error so the boundary can surface it as a
// transient failure without losing the cause.
func StorageError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}

package database

import (
	"errors"
)

type ErrorClass int

const (
	ErrorClassInternal ErrorClass = iota
	ErrorClassValidation
	ErrorClassAuth
	ErrorClassNotFound
	ErrorClassConflict
)

func (c ErrorClass) String() string {
	switch c {
	case ErrorClassValidation:
		return "validation"
	case ErrorClassAuth:
		return "auth"
	case ErrorClassNotFound:
		return "not_found"
	case ErrorClassConflict:
		return "conflict"
	}
	return "internal"
}

// ValidationError reports a missing or malformed input. Msg is safe to show
// to the client.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func ClassifyError(err error) ErrorClass {
	if err == nil {
		return ErrorClassInternal
	}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return ErrorClassValidation
	}

	switch {
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidQuantity):
		return ErrorClassValidation
	case errors.Is(err, ErrAuthRequired),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrIncorrectPassword):
		return ErrorClassAuth
	case errors.Is(err, ErrDealNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrOrderNotFound):
		return ErrorClassNotFound
	case errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrInsufficientStock),
		errors.Is(err, ErrOrderNotCancellable),
		errors.Is(err, ErrOrderClosed):
		return ErrorClassConflict
	}

	return ErrorClassInternal
}

var (
	ErrDealNotFound        = errors.New("deal not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrOrderNotCancellable = errors.New("order cannot be cancelled")
	ErrOrderClosed         = errors.New("order is already completed or cancelled")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrIncorrectPassword   = errors.New("current password is incorrect")
	ErrAuthRequired        = errors.New("authentication required")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrReadOnlyTx          = errors.New("write attempted in read-only transaction")
	ErrDuplicateID         = errors.New("duplicate id")
)

// Package apperr defines the error taxonomy shared by every store and service.
// Each mutating operation either fully succeeds or fails with exactly one of
// these errors; nothing is retried and nothing is swallowed.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrDuplicateIdentity  = errors.New("username or email already exists")
	ErrDuplicateInterest  = errors.New("interest already expressed for this space")
	ErrForbidden          = errors.New("forbidden")
	ErrAccountBanned      = errors.New("account is banned")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError names the first offending field of a request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func Validation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func NotFound(entity string, id int) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// InvalidTransitionError reports an illegal interest state change.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

func InvalidTransition(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// StatusCode maps a taxonomy error to its HTTP status. Unknown errors are
// treated as internal.
func StatusCode(err error) int {
	var ve *ValidationError
	var nf *NotFoundError
	var it *InvalidTransitionError
	switch {
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &it):
		return http.StatusConflict
	case errors.Is(err, ErrDuplicateIdentity), errors.Is(err, ErrDuplicateInterest):
		return http.StatusConflict
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrAccountBanned), errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

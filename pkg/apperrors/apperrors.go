package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateIdentity  = errors.New("identity already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTokenReuse         = errors.New("refresh token reuse detected")
	ErrMissingAsset       = errors.New("required asset missing")
	ErrInternal           = errors.New("internal error")
)

func NewValidation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func WrapInternal(err error, context string) error {
	return fmt.Errorf("%w: %s: %v", ErrInternal, context, err)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsDuplicateIdentity(err error) bool {
	return errors.Is(err, ErrDuplicateIdentity)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

func IsTokenReuse(err error) bool {
	return errors.Is(err, ErrTokenReuse)
}

func IsMissingAsset(err error) bool {
	return errors.Is(err, ErrMissingAsset)
}

// Status maps a domain error to its HTTP status code. Unknown errors are
// treated as internal so nothing unexpected leaks to the client.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrMissingAsset):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicateIdentity):
		return http.StatusConflict
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrTokenReuse):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

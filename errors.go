package auth

import (
	"github.com/goliatone/go-errors"
)

// ErrNoEmptyString is returned when a required string argument is empty
var ErrNoEmptyString = errors.New("value should not be an empty string", errors.CategoryBadInput).
	WithTextCode("EMPTY_STRING")

// ErrMismatchedHashAndPassword is the uniform credential failure
var ErrMismatchedHashAndPassword = errors.New("password does not match", errors.CategoryAuth).
	WithTextCode("CREDENTIALS_MISMATCH").
	WithCode(errors.CodeUnauthorized)

// ErrUserExists is returned when a login is already taken by another record
var ErrUserExists = errors.New("user already exists", errors.CategoryConflict).
	WithTextCode("USER_EXISTS")

// ErrUserNotExists is returned when an update targets a missing user id
var ErrUserNotExists = errors.New("user does not exist", errors.CategoryNotFound).
	WithTextCode("USER_NOT_EXISTS")

// ErrTokenInvalidSignature is returned when a token fails signature checks
var ErrTokenInvalidSignature = errors.New("token signature is invalid", errors.CategoryAuth).
	WithTextCode("TOKEN_INVALID_SIGNATURE").
	WithCode(errors.CodeUnauthorized)

// ErrTokenMalformed is returned when a token cannot be parsed at all
var ErrTokenMalformed = errors.New("token is malformed", errors.CategoryAuth).
	WithTextCode("TOKEN_MALFORMED").
	WithCode(errors.CodeUnauthorized)

// ErrVersionNotFound is returned when no version record exists for a user
var ErrVersionNotFound = errors.New("token version not found", errors.CategoryNotFound).
	WithTextCode("TOKEN_VERSION_NOT_FOUND")

// IsUserExists reports whether err carries the USER_EXISTS condition
func IsUserExists(err error) bool {
	return hasTextCode(err, "USER_EXISTS")
}

// IsUserNotExists reports whether err carries the USER_NOT_EXISTS condition
func IsUserNotExists(err error) bool {
	return hasTextCode(err, "USER_NOT_EXISTS")
}

// IsVersionNotFound reports whether err carries the TOKEN_VERSION_NOT_FOUND condition
func IsVersionNotFound(err error) bool {
	return hasTextCode(err, "TOKEN_VERSION_NOT_FOUND")
}

// IsInvalidToken matches both decode failure modes: bad signatures and
// token strings that cannot be parsed.
func IsInvalidToken(err error) bool {
	return hasTextCode(err, "TOKEN_INVALID_SIGNATURE") || hasTextCode(err, "TOKEN_MALFORMED")
}

func hasTextCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		return false
	}
	return richErr.TextCode == code
}

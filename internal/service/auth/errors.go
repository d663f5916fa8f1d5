package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingSubject indicates a well-formed token that names no identity
	ErrMissingSubject = errors.New("authentication token has no subject")

	// ErrEmptyUserID is returned when a token is requested for an empty identity
	ErrEmptyUserID = errors.New("user ID cannot be empty")
)

package auth

import "errors"

// Common authentication service errors
var (
	// ErrMissingIdentity indicates a login request carried no usable phone or openid
	ErrMissingIdentity = errors.New("login identity is missing")

	// ErrTokenIssue indicates a token pair could not be issued
	ErrTokenIssue = errors.New("failed to issue tokens")
)

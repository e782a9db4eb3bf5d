package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates authentication failed or missing
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTokenExpired indicates the bearer token has expired
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid indicates the bearer token is malformed or invalid
	ErrTokenInvalid = errors.New("token invalid")

	// ErrRateLimited indicates the client exceeded the request rate
	ErrRateLimited = errors.New("rate limited")

	// ErrUnknownDisplayMode indicates the renderer has no configuration
	// for the requested display mode
	ErrUnknownDisplayMode = errors.New("unknown display mode")

	// ErrUnknownBodyFormat indicates the item body carries a text format
	// the renderer cannot process
	ErrUnknownBodyFormat = errors.New("unknown body format")

	// ErrNotRenderable indicates the item exposes no body to render
	ErrNotRenderable = errors.New("item not renderable")
)

// Package common holds constants and sentinel errors shared by the client and
// the development backend. Match the errors with errors.Is.
package common

const (
	// AuthorizationHeader carries "Bearer <token>" on authenticated requests.
	AuthorizationHeader = "Authorization"
	// BearerPrefix precedes the token in AuthorizationHeader.
	BearerPrefix = "Bearer "
	// RequestIDHeader correlates a client request with backend logs.
	RequestIDHeader = "X-Request-ID"

	// TokenStorageKey is the durable-slot key holding the access token.
	TokenStorageKey = "token"
)

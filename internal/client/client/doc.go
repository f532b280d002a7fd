// Package client talks to the WanderGenie backend over HTTP/JSON.
//
// HTTPClient implements the remote contract: account registration and login,
// token verification (GET /auth/me), itinerary planning and history. Every
// request carries an X-Request-ID. Authenticated calls attach
// "Authorization: Bearer <token>", reading the token from a TokenSource at
// send time so that a logout takes effect on the very next request; with no
// stored token the header is omitted.
//
// # Error Handling
//
// Non-2xx responses and transport failures are mapped to sentinel errors
// wrapped in *APIError, so callers can both branch with errors.Is and show
// the server's detail message:
//
//   - ErrUnavailable: transport failure or 5xx
//   - ErrInvalidCredentials: 401 from /auth/login
//   - ErrUnauthorized: any other 401 or 403
//   - ErrConflict: 409, or 400 reporting an existing account
//   - ErrValidation: any other 400 or 422
//
// The package also opens the client's SQLite database (InitDatabase) and
// applies the embedded goose migrations.
package client

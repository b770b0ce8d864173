// Package api is the console's HTTP client for the Vision AI REST backend.
//
// A single Client is built at startup with the backend base URL and a
// TokenSource. Every request passes through two round-tripper decorators:
// bearerTransport reads the token at send time and sets (or strips) the
// Authorization header, and requestIDTransport stamps X-Request-ID and logs
// the round trip. Logging in again therefore never requires a new Client.
//
// Non-2xx responses become a *StatusError which unwraps to ErrUnauthorized
// (401, 403), ErrNotFound (404) or ErrUnavailable (5xx). Transport failures
// also unwrap to ErrUnavailable. There is no retry and no token refresh.
package api

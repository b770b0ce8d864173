// Package session owns the console's authentication state.
//
// # Overview
//
// A Credential (token + username) lives in exactly one Manager per process.
// The Manager is the only writer: Login replaces both fields, Logout clears
// both. Every mutation is written through to the Store before the call
// returns, so a restarted process resumes the same session.
//
// Readers (the API client's token source, the route guard, the prompt) use
// Token, User, Credential and IsAuthenticated. Components that must react to
// a change register with Subscribe.
//
// # Persistence
//
// Store keeps the two fields under the keys "token" and "username" of the
// local_storage table. An empty field is stored as an absent key.
//
// # Errors
//
// ErrEmptyToken is returned by Login when the token is empty; the session is
// left untouched. Persistence failures are wrapped and returned, with the
// in-memory state already updated.
package session

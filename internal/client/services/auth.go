// Package services contains the console's application services.
// This file defines the authentication service: the login form exchange
// against the backend and the hand-off of the issued token to the session.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/visionai/console/internal/logging"
)

// ErrInvalidCredentials is the only login failure a user ever sees. Wrong
// passwords, unreachable backends and malformed responses all collapse to it.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Authenticator exchanges credentials for a token. *api.Client satisfies it.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// SessionWriter is the write side of session.Manager.
type SessionWriter interface {
	Login(ctx context.Context, username, token string) error
	Logout(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the backend and start a session.
//   - Logout: end the session locally. The backend is not contacted.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
}

type authService struct {
	api     Authenticator
	session SessionWriter
	log     logging.Logger
}

func NewAuthService(api Authenticator, session SessionWriter, log logging.Logger) AuthService {
	return &authService{api: api, session: session, log: log}
}

// Login posts the credentials and, on success, records (username, token) in
// the session. Any failure is reported as ErrInvalidCredentials; the cause
// is logged only.
func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	username = strings.TrimSpace(username)
	if username == "" || len(password) == 0 {
		return ErrInvalidCredentials
	}

	token, err := a.api.Login(ctx, username, string(password))
	if err != nil {
		a.log.Warn(ctx, "login rejected", "user", username, "error", err)
		return ErrInvalidCredentials
	}

	if err := a.session.Login(ctx, username, token); err != nil {
		// the session is live in memory even when it could not be saved
		a.log.Error(ctx, "session not saved", "user", username, "error", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/visionai/console/internal/client/router"
	"github.com/visionai/console/internal/client/session"
	"github.com/visionai/console/internal/client/views"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// now is swapped in tests that check token expiry output.
var now = time.Now

// Login shows the sign-in form. A failed attempt of any kind prints a
// single inline message and leaves the session untouched; a successful one
// lands on the home page.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		a.view.Hint(fmt.Sprintf("Already signed in as %s. Type `logout` first.", a.session.User()))
		return nil
	}

	userName, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return a.inputFailed(err)
	}

	password, err := getPassword(a.reader, a.out, "Password: ")
	if err != nil {
		return a.inputFailed(err)
	}
	defer clear(password)

	if err := a.auth.Login(ctx, userName, password); err != nil {
		a.view.Error(views.MsgInvalidCredentials)
		return err
	}

	a.mu.Lock()
	a.location = router.HomePath
	a.mu.Unlock()
	a.stale.Store(true)
	a.refreshUnread(ctx)
	return nil
}

// Logout ends the session. The current page is re-resolved afterwards and
// so falls back to the login page.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout not persisted", "error", err)
		return err
	}
	return nil
}

// WhoAmI prints the signed-in user and whatever the token tells about
// itself. Expiry is informational only.
func (a *App) WhoAmI(ctx context.Context) error {
	c := a.session.Credential()
	if !c.Authenticated() {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", c.Username)
	info, ok := session.DescribeToken(c.Token)
	if !ok {
		fmt.Fprintln(a.out, "Token: opaque")
		return nil
	}
	if info.Subject != "" {
		fmt.Fprintf(a.out, "Subject: %s\n", info.Subject)
	}
	if !info.IssuedAt.IsZero() {
		fmt.Fprintf(a.out, "Issued:  %s\n", info.IssuedAt.Local().Format(time.DateTime))
	}
	if !info.ExpiresAt.IsZero() {
		line := "Expires: " + info.ExpiresAt.Local().Format(time.DateTime)
		if info.Expired(now()) {
			line += " (expired)"
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

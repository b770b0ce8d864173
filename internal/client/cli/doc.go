// Package cli provides the interactive Vision AI console.
//
// It wires configuration, the local session database, the API client and
// services, the route guard and the page views around a REPL. Every
// navigation goes through router.Guard; whenever the session changes the
// page on screen is resolved and drawn again before the next prompt, so a
// protected page is never left visible after logout.
//
// Key features:
//   - Login / Logout with the session kept across restarts
//   - Page navigation by path (open /drift) or shortcut (drift)
//   - Page actions: expand, analyze, adduser, passwd, register
//   - An unread-notification badge kept fresh in the background
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartNotificationWatcher, and runREPL for details.
package cli

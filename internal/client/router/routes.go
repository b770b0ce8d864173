// Package router holds the console's route table, the authentication guard
// that every navigation goes through, and breadcrumb construction.
package router

import (
	"path"
	"strings"
)

const (
	LoginPath = "/login"
	HomePath  = "/"
)

// Route is one navigable page.
type Route struct {
	Name        string
	Path        string
	Command     string
	Description string
}

var routes = []Route{
	{Name: "Home", Path: HomePath, Command: "home", Description: "Welcome to Vision AI Dashboard."},
	{Name: "Registered Models", Path: "/models", Command: "models", Description: "Explore all registered models and view comprehensive statistics."},
	{Name: "Business Metrics", Path: "/metrics", Command: "metrics", Description: "Visualise cost, resource utilisation and performance metrics."},
	{Name: "Drift Detection", Path: "/drift", Command: "drift", Description: "Monitor data drift and stay ahead of model degradation."},
	{Name: "Model Metadata", Path: "/model-metadata", Command: "model-metadata", Description: "Register new models and manage metadata seamlessly."},
	{Name: "Monitoring", Path: "/monitoring", Command: "monitoring", Description: "Check the health of services and receive alerts."},
	{Name: "Notifications", Path: "/notifications", Command: "notifications", Description: "View recent events and system notifications."},
	{Name: "Connectors", Path: "/connectors", Command: "connectors", Description: "Manage integrations with cloud and on-prem platforms."},
	{Name: "User Management", Path: "/users", Command: "users", Description: "Add users and change passwords."},
}

// Routes returns the protected pages in navigation order, home first.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Lookup finds the route registered for a normalised path.
func Lookup(p string) (Route, bool) {
	for _, r := range routes {
		if r.Path == p {
			return r, true
		}
	}
	return Route{}, false
}

// ByCommand finds the route whose shortcut command is cmd.
func ByCommand(cmd string) (Route, bool) {
	for _, r := range routes {
		if r.Command == cmd {
			return r, true
		}
	}
	return Route{}, false
}

// IsProtected reports whether p needs an authenticated session.
func IsProtected(p string) bool {
	_, ok := Lookup(p)
	return ok
}

// Normalize strips any query or fragment, cleans the path and drops a
// trailing slash. The empty path is home.
func Normalize(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.TrimSpace(p)
	if p == "" {
		return HomePath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

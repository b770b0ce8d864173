package cli

import (
	"context"

	"github.com/visionai/console/internal/client/models"
	"github.com/visionai/console/internal/client/router"
)

// Open navigates to p. The guard decides what is actually shown.
func (a *App) Open(ctx context.Context, p string) error {
	a.show(ctx, p)
	return nil
}

// Refresh renders the current page again with fresh data.
func (a *App) Refresh(ctx context.Context) error {
	a.show(ctx, a.currentLocation())
	return nil
}

// revalidate re-resolves the current location if the session changed since
// it was rendered.
func (a *App) revalidate(ctx context.Context) {
	if a.stale.Swap(false) {
		a.show(ctx, a.currentLocation())
	}
}

func (a *App) currentLocation() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.location
}

func (a *App) show(ctx context.Context, p string) {
	d := a.guard.Resolve(p)
	if d.Redirected() {
		a.log.Debug(ctx, "navigation redirected", "requested", d.Requested, "path", d.Path, "hops", d.Redirects)
	}

	a.mu.Lock()
	if d.Path != a.location {
		// page-local state does not survive leaving the page
		a.expanded = make(map[models.ID]bool)
		a.analysis = nil
	}
	a.location = d.Path
	a.mu.Unlock()

	a.stale.Store(false)
	a.render(ctx, d.Path)
}

func (a *App) render(ctx context.Context, p string) {
	var unread int
	if a.session.IsAuthenticated() {
		unread = int(a.unread.Load())
	}
	a.view.Header(p, a.session.User(), unread)

	switch p {
	case router.LoginPath:
		a.view.Login("Backend: " + a.config.APIURL)

	case router.HomePath:
		a.view.Home(router.Routes())

	case "/models":
		ms, err := a.dash.Models(ctx)
		a.logPageError(ctx, p, err)
		a.view.Models(ms, err, a.expanded)

	case "/metrics":
		bm, err := a.dash.BusinessMetrics(ctx)
		a.logPageError(ctx, p, err)
		a.view.Metrics(bm, err, a.dash.CostMetrics(ctx), a.dash.ResourceMetrics(ctx))

	case "/drift":
		rep, err := a.dash.Drift(ctx)
		a.logPageError(ctx, p, err)
		a.view.Drift(rep, err, a.analysis)

	case "/monitoring":
		st, err := a.dash.Monitoring(ctx)
		a.logPageError(ctx, p, err)
		a.view.Monitoring(st, err, a.dash.EvaluationMetrics(ctx))

	case "/notifications":
		ns, err := a.dash.Notifications(ctx)
		a.logPageError(ctx, p, err)
		a.view.Notifications(ns, err)

	case "/connectors":
		cs, err := a.dash.Connectors(ctx)
		a.logPageError(ctx, p, err)
		a.view.Connectors(cs, err)

	case "/users":
		us, err := a.dash.Users(ctx)
		a.logPageError(ctx, p, err)
		a.view.Users(us, err)

	case "/model-metadata":
		a.view.ModelMetadata()
	}
}

func (a *App) logPageError(ctx context.Context, p string, err error) {
	if err != nil {
		a.log.Debug(ctx, "page data unavailable", "path", p, "error", err)
	}
}

// onPage reports whether the user is on p, printing how to get there if
// not. Page actions are only available on their own page.
func (a *App) onPage(p, action string) bool {
	if a.currentLocation() == p {
		return true
	}
	r, _ := router.Lookup(p)
	a.view.Hint("`" + action + "` is available on " + r.Name + " (type `" + r.Command + "`).")
	return false
}

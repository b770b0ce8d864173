package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/visionai/console/internal/client/api"
	"github.com/visionai/console/internal/client/config"
	"github.com/visionai/console/internal/client/localdb"
	"github.com/visionai/console/internal/client/models"
	"github.com/visionai/console/internal/client/router"
	"github.com/visionai/console/internal/client/services"
	"github.com/visionai/console/internal/client/session"
	"github.com/visionai/console/internal/client/views"
	"github.com/visionai/console/internal/logging"
)

type App struct {
	config  *config.Config
	db      *sql.DB
	session *session.Manager
	auth    services.AuthService
	dash    services.DashboardService
	guard   *router.Guard
	view    *views.Renderer
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer

	// location is the path currently shown; stale asks the loop to resolve
	// and render it again before the next prompt.
	mu          sync.Mutex
	location    string
	stale       atomic.Bool
	unread      atomic.Int64
	expanded    map[models.ID]bool
	analysis    *models.DriftAnalysis
	unsubscribe func()
}

// NewApp opens the local session database and wires the session, API
// client, services, guard and views around it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := localdb.Open(ctx, c.StorePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.StorePath, "error", err)
		return nil, err
	}

	mgr, err := session.NewManager(ctx, session.NewStore(db), log)
	if err != nil {
		db.Close()
		return nil, err
	}

	apiClient, err := api.NewClient(c.APIURL, mgr.Token, api.WithTimeout(c.RequestTimeout), api.WithLogger(log))
	if err != nil {
		db.Close()
		return nil, err
	}

	a := &App{
		config:   c,
		db:       db,
		session:  mgr,
		auth:     services.NewAuthService(apiClient, mgr, log),
		dash:     services.NewDashboardService(apiClient, log),
		guard:    router.NewGuard(mgr),
		view:     views.NewRenderer(os.Stdout),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		location: router.HomePath,
		expanded: make(map[models.ID]bool),
	}
	a.watchSession()
	return a, nil
}

// watchSession re-renders the current location whenever the credential
// changes, so a page never outlives the session that allowed it.
func (a *App) watchSession() {
	a.stale.Store(true)
	a.unsubscribe = a.session.Subscribe(func(c session.Credential) {
		if !c.Authenticated() {
			a.unread.Store(0)
		}
		a.stale.Store(true)
	})
}

// Run starts the notification watcher and blocks in the REPL until the
// user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to Vision AI console (type 'help' for commands)")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartNotificationWatcher(ctx, a.config.WatchInterval)

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(context.Background(), "closing session database", "error", err)
		}
		a.db = nil
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// status is shown in the prompt: the signed-in user and the unread badge.
func (a *App) status() string {
	user := a.session.User()
	if user == "" {
		return ""
	}
	if n := a.unread.Load(); n > 0 {
		return fmt.Sprintf("(%s, %d unread)", user, n)
	}
	return fmt.Sprintf("(%s)", user)
}

// refreshUnread updates the notification badge. Anonymous sessions show
// no badge and make no request.
func (a *App) refreshUnread(ctx context.Context) {
	if !a.session.IsAuthenticated() {
		a.unread.Store(0)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	n, err := a.dash.UnreadCount(ctx)
	if err != nil {
		a.log.Debug(ctx, "notification count unavailable", "error", err)
		return
	}
	a.unread.Store(int64(n))
}

// StartNotificationWatcher keeps the unread badge fresh until ctx is done.
func (a *App) StartNotificationWatcher(ctx context.Context, interval time.Duration) {
	a.refreshUnread(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.refreshUnread(ctx)
		case <-ctx.Done():
			return
		}
	}
}

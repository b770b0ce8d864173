package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

// recordingBackend issues "tok-alice" for alice/secret and records the
// Authorization header of every GET /models.
type recordingBackend struct {
	mu      sync.Mutex
	headers []string
}

func (b *recordingBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch r.Method + " " + r.URL.Path {
	case "POST /login":
		var req api.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Username != "alice" || req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"bad credentials"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(api.LoginResponse{Token: "tok-alice"})
	case "GET /models":
		b.mu.Lock()
		b.headers = append(b.headers, r.Header.Get(api.HeaderAuthorization))
		b.mu.Unlock()
		_, _ = w.Write([]byte(`[{"id":1,"name":"churn","labels":["prod"]}]`))
	case "GET /notifications":
		_, _ = w.Write([]byte(`[]`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (b *recordingBackend) modelHeaders() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.headers...)
}

// newWiredApp builds an App the way NewApp does, from a real SQLite store,
// session manager, API client, services and guard.
func newWiredApp(t *testing.T, dsn, apiURL string, input string) (*App, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()
	log := logging.Discard()

	db, err := localdb.Open(ctx, dsn)
	require.NoError(t, err)

	mgr, err := session.NewManager(ctx, session.NewStore(db), log)
	require.NoError(t, err)

	client, err := api.NewClient(apiURL, mgr.Token, api.WithTimeout(time.Second), api.WithLogger(log))
	require.NoError(t, err)

	var out bytes.Buffer
	a := &App{
		config:   &config.Config{APIURL: apiURL, RequestTimeout: time.Second},
		db:       db,
		session:  mgr,
		auth:     services.NewAuthService(client, mgr, log),
		dash:     services.NewDashboardService(client, log),
		guard:    router.NewGuard(mgr),
		view:     views.NewRenderer(&out, views.WithColor(false)),
		log:      log,
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      &out,
		location: router.HomePath,
		expanded: make(map[models.ID]bool),
	}
	a.watchSession()
	t.Cleanup(a.Close)
	return a, &out
}

func TestSessionFlow_LoginHeaderLogoutRestart(t *testing.T) {
	ctx := context.Background()
	stubTerminal(t, false)

	backend := &recordingBackend{}
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	dsn := filepath.Join(t.TempDir(), "visionai.db")

	a, out := newWiredApp(t, dsn, srv.URL, "alice\nwrong\nalice\nsecret\n")

	// anonymous: protected page lands on login, no request made
	require.NoError(t, a.Open(ctx, "/models"))
	assert.Equal(t, router.LoginPath, a.currentLocation())
	assert.Empty(t, backend.modelHeaders())

	// rejected login changes nothing
	require.Error(t, a.Login(ctx))
	assert.Contains(t, out.String(), views.MsgInvalidCredentials)
	assert.False(t, a.isLoggedIn())

	// accepted login lands on home and authorises requests
	require.NoError(t, a.Login(ctx))
	a.revalidate(ctx)
	assert.Equal(t, router.HomePath, a.currentLocation())
	assert.Equal(t, "alice", a.session.User())

	out.Reset()
	require.NoError(t, a.Open(ctx, "/models"))
	assert.Equal(t, "/models", a.currentLocation())
	assert.Contains(t, out.String(), "churn")
	assert.Equal(t, []string{"Bearer tok-alice"}, backend.modelHeaders())

	// the session survives a restart
	a.Close()
	restarted, _ := newWiredApp(t, dsn, srv.URL, "")
	assert.True(t, restarted.isLoggedIn())
	assert.Equal(t, "alice", restarted.session.User())

	require.NoError(t, restarted.Open(ctx, "/models"))
	require.NoError(t, restarted.Logout(ctx))
	restarted.revalidate(ctx)
	assert.Equal(t, router.LoginPath, restarted.currentLocation())

	// after logout the protected page is guarded again and nothing persists
	require.NoError(t, restarted.Open(ctx, "/models"))
	assert.Equal(t, router.LoginPath, restarted.currentLocation())
	assert.Equal(t, []string{"Bearer tok-alice", "Bearer tok-alice"}, backend.modelHeaders())

	restarted.Close()
	again, _ := newWiredApp(t, dsn, srv.URL, "")
	assert.False(t, again.isLoggedIn())
}

package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/visionai/console/internal/logging"
)

type subscriber struct {
	id int
	fn func(Credential)
}

// Manager holds the process-wide Credential. It is safe for concurrent use;
// Login and Logout are serialised so store writes land in call order.
type Manager struct {
	store CredentialStore
	log   logging.Logger

	writeMu sync.Mutex

	mu   sync.RWMutex
	cred Credential

	subMu  sync.Mutex
	subs   []subscriber
	nextID int

	// pending holds credentials not yet delivered to subscribers, in
	// mutation order. Only the goroutine that set draining delivers.
	qMu      sync.Mutex
	pending  []Credential
	draining bool
}

// NewManager restores the session persisted in store.
func NewManager(ctx context.Context, store CredentialStore, log logging.Logger) (*Manager, error) {
	cred, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if !cred.Authenticated() && cred.Username != "" {
		// A username without a token is not a session.
		log.Warn(ctx, "ignoring stored username without token", "user", cred.Username)
		cred = Credential{}
	}

	m := &Manager{store: store, log: log, cred: cred}
	if cred.Authenticated() {
		log.Info(ctx, "session restored", "user", cred.Username)
	}
	return m, nil
}

func (m *Manager) Credential() Credential {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cred
}

// Token is the current bearer token, or "" when anonymous. It is the token
// source handed to the API client.
func (m *Manager) Token() string {
	return m.Credential().Token
}

func (m *Manager) User() string {
	return m.Credential().Username
}

func (m *Manager) IsAuthenticated() bool {
	return m.Credential().Authenticated()
}

// Login replaces the session with (username, token), persists it and
// notifies subscribers. An empty token returns ErrEmptyToken and changes
// nothing.
func (m *Manager) Login(ctx context.Context, username, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	return m.apply(ctx, Credential{Token: token, Username: username}, func(ctx context.Context, c Credential) error {
		return m.store.Save(ctx, c)
	})
}

// Logout clears the session in memory and in the store. Calling it while
// anonymous is harmless.
func (m *Manager) Logout(ctx context.Context) error {
	return m.apply(ctx, Credential{}, func(ctx context.Context, _ Credential) error {
		return m.store.Clear(ctx)
	})
}

func (m *Manager) apply(ctx context.Context, next Credential, persist func(context.Context, Credential) error) error {
	m.writeMu.Lock()

	m.mu.Lock()
	prev := m.cred
	m.cred = next
	m.mu.Unlock()

	var err error
	if perr := persist(ctx, next); perr != nil {
		m.log.Error(ctx, "failed to persist session", "error", perr)
		err = fmt.Errorf("persist session: %w", perr)
	}

	if prev.Authenticated() != next.Authenticated() || prev.Username != next.Username {
		m.log.Info(ctx, "session changed", "authenticated", next.Authenticated(), "user", next.Username)
	}

	m.qMu.Lock()
	m.pending = append(m.pending, next)
	m.qMu.Unlock()
	m.writeMu.Unlock()

	m.drain()
	return err
}

// Subscribe registers fn to be called with the new credential after every
// Login and Logout. Callbacks run on the mutating goroutine, in subscription
// order, with no lock held, and see mutations in the order they happened.
// A callback may itself call Login or Logout; that change is delivered once
// the current round of callbacks has finished. The returned func removes
// the subscription.
func (m *Manager) Subscribe(fn func(Credential)) (unsubscribe func()) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	m.nextID++
	id := m.nextID
	m.subs = append(m.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			m.subMu.Lock()
			defer m.subMu.Unlock()
			for i, s := range m.subs {
				if s.id == id {
					m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// drain delivers pending credentials until none are left. A call made while
// another goroutine (or an outer frame of this one) is draining returns at
// once; the active drainer picks up what was queued.
func (m *Manager) drain() {
	m.qMu.Lock()
	if m.draining {
		m.qMu.Unlock()
		return
	}
	m.draining = true
	for len(m.pending) > 0 {
		c := m.pending[0]
		m.pending = m.pending[1:]
		m.qMu.Unlock()
		m.notify(c)
		m.qMu.Lock()
	}
	m.draining = false
	m.qMu.Unlock()
}

func (m *Manager) notify(c Credential) {
	m.subMu.Lock()
	subs := make([]subscriber, len(m.subs))
	copy(subs, m.subs)
	m.subMu.Unlock()

	for _, s := range subs {
		s.fn(c)
	}
}

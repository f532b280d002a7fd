package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/wandergenie/internal/client/models"
	"github.com/dmitrijs2005/wandergenie/internal/logging"
)

// IdentityService is the part of the backend the Store needs.
type IdentityService interface {
	VerifyToken(ctx context.Context, token string) (*models.User, error)
	Login(ctx context.Context, creds models.Credentials) (*models.Token, error)
	Register(ctx context.Context, data models.Registration) (*models.User, error)
}

// TokenStore is the durable token slot.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// State is a snapshot of the session.
type State struct {
	User         *models.User
	Bootstrapped bool
}

func (s State) IsAuthenticated() bool { return s.User != nil }

type Store struct {
	identity IdentityService
	tokens   TokenStore
	log      logging.Logger

	once  sync.Once
	ready chan struct{}

	mu           sync.RWMutex
	user         *models.User
	bootstrapped bool
	// gen changes whenever Login, Logout or Invalidate touch the session.
	gen uint64

	subMu  sync.Mutex
	subs   map[int]func(State)
	nextID int
}

func NewStore(identity IdentityService, tokens TokenStore, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{
		identity: identity,
		tokens:   tokens,
		log:      log.With("component", "session"),
		ready:    make(chan struct{}),
		subs:     make(map[int]func(State)),
	}
}

// Bootstrap restores the session from the persisted token. Only the first
// call does any work; concurrent callers block until it finishes. It never
// fails: an unusable token is discarded and the session starts empty.
func (s *Store) Bootstrap(ctx context.Context) {
	s.once.Do(func() {
		s.bootstrap(ctx)

		s.mu.Lock()
		s.bootstrapped = true
		s.mu.Unlock()
		close(s.ready)

		s.notify()
	})
}

func (s *Store) bootstrap(ctx context.Context) {
	tok, err := s.tokens.Get(ctx)
	if err != nil {
		s.log.Error(ctx, "token slot unreadable, starting signed out", "error", err)
		s.clearSlot(ctx, "bootstrap")
		return
	}
	if tok == "" {
		s.log.Debug(ctx, "no stored token")
		return
	}

	s.mu.RLock()
	gen := s.gen
	s.mu.RUnlock()

	u, err := s.identity.VerifyToken(ctx, tok)
	if err != nil {
		s.log.Warn(ctx, "stored token rejected, discarding it", "kind", classify(err), "error", err)
		s.discardIfUnchanged(ctx, tok)
		return
	}

	s.mu.Lock()
	// A login, logout or invalidation during verification supersedes tok.
	stale := s.gen != gen
	if !stale {
		s.user = u
	}
	s.mu.Unlock()

	if stale {
		s.log.Debug(ctx, "session changed during verification, dropping restored user")
		return
	}
	s.log.Info(ctx, "session restored", "user_id", u.ID)
}

// discardIfUnchanged clears the slot unless a newer token replaced tok in the
// meantime.
func (s *Store) discardIfUnchanged(ctx context.Context, tok string) {
	cur, err := s.tokens.Get(ctx)
	if err == nil && cur != tok {
		return
	}
	s.clearSlot(ctx, "bootstrap")
}

// Login performs a single login attempt. On success the token is persisted
// before the user is published; on failure nothing changes.
func (s *Store) Login(ctx context.Context, creds models.Credentials) error {
	const op = "login"

	tok, err := s.identity.Login(ctx, creds)
	if err != nil {
		f := fail(op, err)
		s.log.Info(ctx, "login failed", "kind", f.Kind)
		return f
	}

	if err := s.tokens.Set(ctx, tok.AccessToken); err != nil {
		s.log.Error(ctx, "persisting token failed", "error", err)
		return storageFailure(op, err)
	}

	u := tok.User
	s.mu.Lock()
	s.user = &u
	s.gen++
	s.mu.Unlock()

	s.log.Info(ctx, "logged in", "user_id", u.ID)
	s.notify()
	return nil
}

// Register creates the account and then logs in with the same email and
// password. When the follow-up login fails, the account exists but no
// session is established and the login failure is returned.
func (s *Store) Register(ctx context.Context, data models.Registration) error {
	u, err := s.identity.Register(ctx, data)
	if err != nil {
		f := fail("register", err)
		s.log.Info(ctx, "registration failed", "kind", f.Kind)
		return f
	}
	s.log.Info(ctx, "registered", "user_id", u.ID)

	return s.Login(ctx, models.Credentials{Email: data.Email, Password: data.Password})
}

// Logout clears the persisted token and the user. It is idempotent and
// storage errors are only logged.
func (s *Store) Logout(ctx context.Context) {
	s.clearSlot(ctx, "logout")
	s.clearUser()
	s.log.Info(ctx, "logged out")
	s.notify()
}

// Invalidate ends the session after the backend rejected its credentials.
func (s *Store) Invalidate(ctx context.Context, cause error) {
	s.clearSlot(ctx, "invalidate")
	wasSignedIn := s.clearUser()
	if wasSignedIn {
		s.log.Warn(ctx, "credentials rejected, session ended", "error", cause)
	}
	s.notify()
}

func (s *Store) clearSlot(ctx context.Context, op string) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Error(ctx, "clearing token failed", "op", op, "error", err)
	}
}

func (s *Store) clearUser() (was bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	was = s.user != nil
	s.user = nil
	s.gen++
	return was
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := State{Bootstrapped: s.bootstrapped}
	if s.user != nil {
		u := *s.user
		st.User = &u
	}
	return st
}

func (s *Store) CurrentUser() *models.User { return s.State().User }

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Store) BootstrapComplete() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bootstrapped
}

// Ready is closed once Bootstrap has finished.
func (s *Store) Ready() <-chan struct{} { return s.ready }

// Subscribe registers fn to receive the state after every change. The
// returned func removes the subscription.
func (s *Store) Subscribe(fn func(State)) (cancel func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify() {
	st := s.State()

	s.subMu.Lock()
	fns := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}

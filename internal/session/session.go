// Package session holds the authenticated identity and bearer token for the
// storefront client, persists them to durable local storage, and notifies
// registered listeners when a session is established or torn down.
package session

import (
	"context"
	"sync"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/velora-jewels/storefront-go/internal/domain/user"
)

// LoginPath is where the presentation layer is sent after a forced logout.
const LoginPath = "/login"

// Validation errors, raised before any network call.
var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the sign-up payload. ConfirmPassword is checked client-side
// and never sent.
type Registration struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
}

// AuthResponse is what the auth service returns on successful login or
// registration.
type AuthResponse struct {
	Token string    `json:"token"`
	User  user.User `json:"user"`
}

// AuthService defines the remote authentication operations.
type AuthService interface {
	Login(ctx context.Context, creds Credentials) (*AuthResponse, error)
	Register(ctx context.Context, reg Registration) (*AuthResponse, error)
	Profile(ctx context.Context) (*user.User, error)
}

// SignInFunc is invoked after a session is established.
type SignInFunc func(ctx context.Context, u user.User)

// SignOutFunc is invoked after a session is torn down.
type SignOutFunc func()

// RedirectFunc is invoked with the target path after a forced logout (401).
type RedirectFunc func(path string)

// Manager is the auth state container. It owns the current token and
// identity; everything else reads through it. Login and register failures
// surface the remote error unchanged, with no retry.
type Manager struct {
	auth  AuthService
	store Store

	mu    sync.Mutex
	token string
	user  *user.User

	listenerMu sync.Mutex
	onSignIn   []SignInFunc
	onSignOut  []SignOutFunc
	redirect   RedirectFunc
}

// NewManager creates a signed-out Manager.
func NewManager(auth AuthService, store Store) *Manager {
	return &Manager{auth: auth, store: store}
}

// OnSignIn registers a listener fired after login, registration, or restore.
func (m *Manager) OnSignIn(fn SignInFunc) {
	m.listenerMu.Lock()
	m.onSignIn = append(m.onSignIn, fn)
	m.listenerMu.Unlock()
}

// OnSignOut registers a listener fired after logout or forced logout.
func (m *Manager) OnSignOut(fn SignOutFunc) {
	m.listenerMu.Lock()
	m.onSignOut = append(m.onSignOut, fn)
	m.listenerMu.Unlock()
}

// SetRedirect installs the navigation hook used on forced logout.
func (m *Manager) SetRedirect(fn RedirectFunc) {
	m.listenerMu.Lock()
	m.redirect = fn
	m.listenerMu.Unlock()
}

// Token returns the current bearer token, or an empty string. It satisfies
// the gateway TokenSource contract.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// User returns the current identity, or nil.
func (m *Manager) User() *user.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// IsAuthenticated reports whether both a token and an identity are present.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token != "" && m.user != nil
}

// Restore reads durable storage at startup and re-establishes the previous
// session if one was saved. It reports whether a session was restored.
func (m *Manager) Restore(ctx context.Context) (bool, error) {
	token, identity, err := m.store.Load()
	if err != nil {
		return false, errors.Wrap(err, "load session")
	}
	if token == "" || identity == nil {
		return false, nil
	}

	m.establish(ctx, token, *identity)
	zctx.From(ctx).Debug("Session restored", zap.String("user_id", identity.ID))
	return true, nil
}

// Login authenticates with the auth service, persists the returned session,
// and fires sign-in listeners.
func (m *Manager) Login(ctx context.Context, creds Credentials) error {
	if creds.Email == "" || creds.Password == "" {
		return ErrMissingCredentials
	}

	resp, err := m.auth.Login(ctx, creds)
	if err != nil {
		return err
	}
	return m.adopt(ctx, resp)
}

// Register creates an account, persists the returned session, and fires
// sign-in listeners. The password confirmation is checked before any network
// call.
func (m *Manager) Register(ctx context.Context, reg Registration) error {
	if reg.Email == "" || reg.Password == "" {
		return ErrMissingCredentials
	}
	if reg.Password != reg.ConfirmPassword {
		return ErrPasswordMismatch
	}

	resp, err := m.auth.Register(ctx, reg)
	if err != nil {
		return err
	}
	return m.adopt(ctx, resp)
}

// Logout clears both durable and in-memory session state and fires sign-out
// listeners.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.Clear(); err != nil {
		zctx.From(ctx).Warn("Clearing stored session failed", zap.Error(err))
	}
	m.teardown()
}

// HandleUnauthorized is the gateway 401 hook: it purges the session exactly
// like Logout and then navigates to the login view.
func (m *Manager) HandleUnauthorized() {
	_ = m.store.Clear()
	m.teardown()

	m.listenerMu.Lock()
	redirect := m.redirect
	m.listenerMu.Unlock()
	if redirect != nil {
		redirect(LoginPath)
	}
}

func (m *Manager) adopt(ctx context.Context, resp *AuthResponse) error {
	if err := m.store.Save(resp.Token, &resp.User); err != nil {
		return errors.Wrap(err, "persist session")
	}
	m.establish(ctx, resp.Token, resp.User)
	return nil
}

func (m *Manager) establish(ctx context.Context, token string, u user.User) {
	m.mu.Lock()
	m.token = token
	userCopy := u
	m.user = &userCopy
	m.mu.Unlock()

	m.listenerMu.Lock()
	listeners := make([]SignInFunc, len(m.onSignIn))
	copy(listeners, m.onSignIn)
	m.listenerMu.Unlock()
	for _, fn := range listeners {
		fn(ctx, u)
	}
}

func (m *Manager) teardown() {
	m.mu.Lock()
	wasActive := m.token != "" || m.user != nil
	m.token = ""
	m.user = nil
	m.mu.Unlock()

	if !wasActive {
		return
	}

	m.listenerMu.Lock()
	listeners := make([]SignOutFunc, len(m.onSignOut))
	copy(listeners, m.onSignOut)
	m.listenerMu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}

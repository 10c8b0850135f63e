package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora-jewels/storefront-go/internal/domain/user"
)

// fakeAuth returns canned responses and records whether it was called.
type fakeAuth struct {
	resp   *AuthResponse
	err    error
	called int
}

func (f *fakeAuth) Login(_ context.Context, _ Credentials) (*AuthResponse, error) {
	f.called++
	return f.resp, f.err
}

func (f *fakeAuth) Register(_ context.Context, _ Registration) (*AuthResponse, error) {
	f.called++
	return f.resp, f.err
}

func (f *fakeAuth) Profile(_ context.Context) (*user.User, error) {
	return nil, errors.New("not used")
}

func authOK() *fakeAuth {
	return &fakeAuth{resp: &AuthResponse{
		Token: "tok-abc",
		User:  user.User{ID: "u1", Email: "ava@example.com"},
	}}
}

func newManager(t *testing.T, auth AuthService) (*Manager, *FileStore) {
	t.Helper()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "velora"))
	require.NoError(t, err)
	return NewManager(auth, store), store
}

func TestLogin_EstablishesAndPersistsSession(t *testing.T) {
	auth := authOK()
	m, store := newManager(t, auth)

	var signedIn []string
	m.OnSignIn(func(_ context.Context, u user.User) {
		signedIn = append(signedIn, u.ID)
	})

	err := m.Login(context.Background(), Credentials{Email: "ava@example.com", Password: "secret"})
	require.NoError(t, err)

	assert.True(t, m.IsAuthenticated())
	assert.Equal(t, "tok-abc", m.Token())
	assert.Equal(t, []string{"u1"}, signedIn)

	token, identity, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
	require.NotNil(t, identity)
	assert.Equal(t, "u1", identity.ID)
}

func TestLogin_ValidatesBeforeNetwork(t *testing.T) {
	auth := authOK()
	m, _ := newManager(t, auth)

	err := m.Login(context.Background(), Credentials{Email: "", Password: "secret"})
	require.ErrorIs(t, err, ErrMissingCredentials)

	err = m.Login(context.Background(), Credentials{Email: "ava@example.com", Password: ""})
	require.ErrorIs(t, err, ErrMissingCredentials)

	assert.Zero(t, auth.called)
	assert.False(t, m.IsAuthenticated())
}

func TestLogin_RemoteErrorSurfacesUnchanged(t *testing.T) {
	remoteErr := errors.New("invalid credentials")
	m, _ := newManager(t, &fakeAuth{err: remoteErr})

	err := m.Login(context.Background(), Credentials{Email: "ava@example.com", Password: "wrong"})
	require.ErrorIs(t, err, remoteErr)
	assert.False(t, m.IsAuthenticated())
}

func TestRegister_PasswordMismatchBeforeNetwork(t *testing.T) {
	auth := authOK()
	m, _ := newManager(t, auth)

	err := m.Register(context.Background(), Registration{
		Email:           "ava@example.com",
		Password:        "secret",
		ConfirmPassword: "different",
	})
	require.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Zero(t, auth.called)
}

func TestRegister_Succeeds(t *testing.T) {
	m, _ := newManager(t, authOK())

	err := m.Register(context.Background(), Registration{
		Email:           "ava@example.com",
		Password:        "secret",
		ConfirmPassword: "secret",
		FirstName:       "Ava",
	})
	require.NoError(t, err)
	assert.True(t, m.IsAuthenticated())
}

func TestLogout_ClearsStateAndFiresListeners(t *testing.T) {
	m, store := newManager(t, authOK())
	require.NoError(t, m.Login(context.Background(), Credentials{Email: "a@b.c", Password: "p"}))

	signOuts := 0
	m.OnSignOut(func() { signOuts++ })

	m.Logout(context.Background())

	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, m.Token())
	assert.Equal(t, 1, signOuts)

	token, identity, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, identity)
}

func TestLogout_WhenSignedOutFiresNothing(t *testing.T) {
	m, _ := newManager(t, authOK())

	signOuts := 0
	m.OnSignOut(func() { signOuts++ })

	m.Logout(context.Background())
	assert.Zero(t, signOuts)
}

func TestRestore_ReestablishesSavedSession(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "velora"))
	require.NoError(t, err)
	require.NoError(t, store.Save("tok-abc", &user.User{ID: "u1"}))

	m := NewManager(authOK(), store)
	var signedIn bool
	m.OnSignIn(func(_ context.Context, _ user.User) { signedIn = true })

	restored, err := m.Restore(context.Background())
	require.NoError(t, err)
	assert.True(t, restored)
	assert.True(t, m.IsAuthenticated())
	assert.True(t, signedIn)
}

func TestRestore_NothingSaved(t *testing.T) {
	m, _ := newManager(t, authOK())

	restored, err := m.Restore(context.Background())
	require.NoError(t, err)
	assert.False(t, restored)
	assert.False(t, m.IsAuthenticated())
}

func TestHandleUnauthorized_PurgesAndRedirects(t *testing.T) {
	m, store := newManager(t, authOK())
	require.NoError(t, m.Login(context.Background(), Credentials{Email: "a@b.c", Password: "p"}))

	var redirectedTo string
	m.SetRedirect(func(path string) { redirectedTo = path })
	signOuts := 0
	m.OnSignOut(func() { signOuts++ })

	m.HandleUnauthorized()

	assert.False(t, m.IsAuthenticated())
	assert.Equal(t, "/login", redirectedTo)
	assert.Equal(t, 1, signOuts)

	token, identity, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token, "durable session purged on 401")
	assert.Nil(t, identity)
}

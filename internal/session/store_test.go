package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora-jewels/storefront-go/internal/domain/user"
)

func newStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "velora"))
	require.NoError(t, err)
	return s
}

func TestFileStore_EmptyLoadIsNotAnError(t *testing.T) {
	s := newStore(t)

	token, identity, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, identity)
}

func TestFileStore_SaveLoadRoundtrip(t *testing.T) {
	s := newStore(t)
	u := &user.User{ID: "u1", Email: "ava@example.com", FirstName: "Ava"}

	require.NoError(t, s.Save("tok-abc", u))

	token, identity, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
	require.NotNil(t, identity)
	assert.Equal(t, "u1", identity.ID)
	assert.Equal(t, "ava@example.com", identity.Email)
}

func TestFileStore_ClearRemovesBothKeys(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Save("tok-abc", &user.User{ID: "u1"}))

	require.NoError(t, s.Clear())

	token, identity, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, identity)

	// Clearing again is a no-op.
	require.NoError(t, s.Clear())
}

func TestFileStore_CorruptIdentityInvalidatesSession(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "velora")
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Save("tok-abc", &user.User{ID: "u1"}))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "user.json"), []byte("{not json"), 0o600))

	token, identity, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, token, "a corrupt identity drops the token too")
	assert.Nil(t, identity)
}

func TestFileStore_TokenWithoutIdentity(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "velora")
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "auth_token"), []byte("tok-abc\n"), 0o600))

	token, identity, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token, "token is trimmed")
	assert.Nil(t, identity)
}

package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"

	"github.com/velora-jewels/storefront-go/internal/domain/user"
)

// Storage file names. Exactly two durable keys exist: the bearer token and
// the serialized identity.
const (
	tokenFile    = "auth_token"
	identityFile = "user.json"
)

// Store persists the session across process restarts.
type Store interface {
	// Load returns the stored token and identity. Both are zero when no
	// session has been saved; that is not an error.
	Load() (token string, identity *user.User, err error)
	// Save writes the token and identity.
	Save(token string, identity *user.User) error
	// Clear removes any stored session. Clearing an empty store is a no-op.
	Clear() error
}

var _ Store = (*FileStore)(nil)

// FileStore keeps the session in two files under a state directory, the
// client-side equivalent of the browser's local storage keys.
type FileStore struct {
	dir string
}

// NewFileStore creates the state directory if needed and returns a store
// rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "create state dir")
	}
	return &FileStore{dir: dir}, nil
}

// Load reads the stored token and identity, tolerating missing files.
func (s *FileStore) Load() (string, *user.User, error) {
	tokenRaw, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, nil
		}
		return "", nil, errors.Wrap(err, "read token")
	}
	token := strings.TrimSpace(string(tokenRaw))

	identityRaw, err := os.ReadFile(filepath.Join(s.dir, identityFile))
	if err != nil {
		if os.IsNotExist(err) {
			return token, nil, nil
		}
		return "", nil, errors.Wrap(err, "read identity")
	}

	var identity user.User
	if err := json.Unmarshal(identityRaw, &identity); err != nil {
		// A corrupt identity invalidates the whole session.
		return "", nil, nil
	}
	return token, &identity, nil
}

// Save writes both keys with owner-only permissions.
func (s *FileStore) Save(token string, identity *user.User) error {
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0o600); err != nil {
		return errors.Wrap(err, "write token")
	}

	raw, err := json.Marshal(identity)
	if err != nil {
		return errors.Wrap(err, "encode identity")
	}
	if err := os.WriteFile(filepath.Join(s.dir, identityFile), raw, 0o600); err != nil {
		return errors.Wrap(err, "write identity")
	}
	return nil
}

// Clear removes both keys.
func (s *FileStore) Clear() error {
	for _, name := range []string{tokenFile, identityFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "remove %s", name)
		}
	}
	return nil
}

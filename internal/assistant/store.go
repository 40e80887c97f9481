package assistant

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenStore durably persists the cached bearer token under a fixed key,
// surviving across assistant invocations within the same session.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// tokenFileName is the fixed key the cached credential lives under.
const tokenFileName = "adminToken"

// fileTokenStore keeps the token in a file under the given directory.
type fileTokenStore struct {
	dir string
}

// NewFileTokenStore builds a store rooted at dir. An empty dir resolves to
// the user config directory.
func NewFileTokenStore(dir string) (TokenStore, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "ops-portal")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &fileTokenStore{dir: dir}, nil
}

func (s *fileTokenStore) path() string {
	return filepath.Join(s.dir, tokenFileName)
}

func (s *fileTokenStore) Load() (string, error) {
	raw, err := os.ReadFile(s.path())
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func (s *fileTokenStore) Save(token string) error {
	return os.WriteFile(s.path(), []byte(token), 0o600)
}

func (s *fileTokenStore) Clear() error {
	err := os.Remove(s.path())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemoryTokenStore is an in-process store used by tests and as a fallback
// when no durable location is available.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func (s *MemoryTokenStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/pkg/errors"

	"examfit/models"
)

// Store holds the authenticated session. It replaces ambient browser
// storage with an explicit object the HTTP client reads from and clears.
type Store interface {
	Token() string
	Save(token string, user *models.User) error
	User() *models.User
	Clear() error
}

type sessionData struct {
	Token string       `json:"token"`
	User  *models.User `json:"user,omitempty"`
}

// FileStore persists the session as JSON under the user's home directory.
type FileStore struct {
	path string
	data sessionData
}

func NewFileStore(path string) *FileStore {
	s := &FileStore{path: path}
	s.load()
	return s
}

func (s *FileStore) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	// A corrupt session file is treated as logged out.
	_ = json.Unmarshal(raw, &s.data)
}

func (s *FileStore) Token() string {
	return s.data.Token
}

func (s *FileStore) User() *models.User {
	return s.data.User
}

func (s *FileStore) Save(token string, user *models.User) error {
	s.data = sessionData{Token: token, User: user}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return errors.Wrap(err, "failed to create session directory")
	}
	raw, err := json.Marshal(s.data)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}
	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return errors.Wrap(err, "failed to write session file")
	}
	return nil
}

func (s *FileStore) Clear() error {
	s.data = sessionData{}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove session file")
	}
	return nil
}

// TokenExpired checks the stored bearer token's exp claim without verifying
// the signature; verification belongs to the backend. Tokens without an exp
// claim never expire client-side.
func TokenExpired(token string) bool {
	if token == "" {
		return true
	}
	claims := jwt.MapClaims{}
	parser := jwt.Parser{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	return time.Now().After(time.Unix(int64(exp), 0))
}

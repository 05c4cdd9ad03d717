package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/RohitArisankala/Joblens/internal/models"
)

// Store persists the session across runs in a single JSON state file with
// fixed token and user keys. Written only on login, removed only on logout.
type Store struct {
	path string
}

type stateFile struct {
	Token string       `json:"token,omitempty"`
	User  *models.User `json:"user,omitempty"`
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Restore reads the state file once at startup. A missing file, unreadable
// JSON, or a half-written record (token without user or vice versa) all
// yield the logged-out session; restore itself never fails the program.
func (st *Store) Restore() Session {
	data, err := os.ReadFile(st.path)
	if err != nil {
		return Session{}
	}

	var state stateFile
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("session restore: discarding unreadable state file: %v", err)
		return Session{}
	}
	if state.Token == "" || state.User == nil {
		return Session{}
	}
	if tokenExpired(state.Token) {
		log.Printf("session restore: stored token expired, login required")
		return Session{}
	}

	return Session{Token: state.Token, User: state.User}
}

func (st *Store) Save(s Session) error {
	if !s.Authenticated() {
		return errors.New("refusing to persist unauthenticated session")
	}
	if err := os.MkdirAll(filepath.Dir(st.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(stateFile{Token: s.Token, User: s.User})
	if err != nil {
		return err
	}
	return os.WriteFile(st.path, data, 0o600)
}

func (st *Store) Clear() error {
	err := os.Remove(st.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// tokenExpired reports whether a stored JWT is already past its exp claim.
// The signature is never checked here; the backend remains the authority.
// Tokens that do not parse as JWTs are treated as opaque and kept.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	return !claims.VerifyExpiresAt(time.Now().Unix(), false)
}

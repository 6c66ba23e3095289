// Package session owns the client-side auth state: the bearer token and the
// logged-in user record. The two halves live together in memory and are
// written through to a local key/value repository so they survive a client
// restart; logout and expiry remove both at once.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/models"
	sessionrepo "github.com/hiyaat04-cloud/YFinanceApp/internal/client/repositories/session"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/dbx"
)

const (
	keyToken = "auth_token"
	keyUser  = "user_data"
)

// Store holds the session state. All methods are safe for concurrent use:
// the interceptor's expiry hook can fire on a transport goroutine.
type Store struct {
	mu    sync.Mutex
	token string
	user  *models.User
	db    *sql.DB
}

// NewStore builds a Store persisting through the given session database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo() sessionrepo.Repository {
	return sessionrepo.NewSQLiteRepository(s.db)
}

// Load hydrates the in-memory state from the repository. Missing keys are
// not an error; the store just starts empty.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.repo()

	tok, err := r.Get(ctx, keyToken)
	if err != nil {
		return fmt.Errorf("load token: %w", err)
	}
	s.token = string(tok)

	raw, err := r.Get(ctx, keyUser)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	s.user = nil
	if len(raw) > 0 {
		var u models.User
		if err := json.Unmarshal(raw, &u); err != nil {
			return fmt.Errorf("decode user: %w", err)
		}
		s.user = &u
	}
	return nil
}

// Token returns the current bearer token, empty when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// SetToken stores the token in memory and in the repository. An empty token
// removes the persisted entry.
func (s *Store) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" {
		if err := s.repo().Delete(ctx, keyToken); err != nil {
			return err
		}
		s.token = ""
		return nil
	}
	if err := s.repo().Set(ctx, keyToken, []byte(token)); err != nil {
		return err
	}
	s.token = token
	return nil
}

// User returns the logged-in user record, nil when absent.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// UserID projects the user's id; ok is false when no user is present.
func (s *Store) UserID() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return 0, false
	}
	return s.user.ID, true
}

// SetUser stores the user record in memory and in the repository. A nil
// user removes the persisted entry.
func (s *Store) SetUser(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setUserLocked(ctx, s.repo(), u)
}

func (s *Store) setUserLocked(ctx context.Context, r sessionrepo.Repository, u *models.User) error {
	if u == nil {
		if err := r.Delete(ctx, keyUser); err != nil {
			return err
		}
		s.user = nil
		return nil
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := r.Set(ctx, keyUser, raw); err != nil {
		return err
	}
	s.user = u
	return nil
}

// SetAuthUser records a successful login: token and user are written under
// one lock and one transaction, so no caller can observe one half without
// the other.
func (s *Store) SetAuthUser(ctx context.Context, token string, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := sessionrepo.NewSQLiteRepository(tx)
		if err := r.Set(ctx, keyToken, []byte(token)); err != nil {
			return err
		}
		return r.Set(ctx, keyUser, raw)
	})
	if err != nil {
		return err
	}

	s.token = token
	s.user = u
	return nil
}

// Clear removes both the token and the user, in memory and in the
// repository. Idempotent: clearing an already-empty store succeeds and
// leaves the same state.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo().Clear(ctx); err != nil {
		return err
	}
	s.token = ""
	s.user = nil
	return nil
}

// IsAuthenticated reports whether a token is present. When the token is a
// JWT its exp claim is also checked locally, so an obviously stale session
// fails fast without a round-trip; opaque tokens are taken at face value
// and the backend stays the authority either way.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.After(time.Now())
}

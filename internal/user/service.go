package user

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultName is used when an account is created without a display name.
const DefaultName = "Cliente"

type Data struct {
	Email string
	Name  string
}

// Session owns the current user record. Accounts are created on first checkout;
// there is no password or token.
type Session struct {
	mu      sync.Mutex
	repo    Repository
	current *User
	now     func() time.Time
}

func NewSession(repo Repository) *Session {
	return &Session{repo: repo, now: time.Now}
}

// Load returns the persisted user, or nil when none is stored. Read failures are
// logged and treated as "no user".
func (s *Session) Load(ctx context.Context) *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *Session) loadLocked(ctx context.Context) *User {
	if s.current != nil {
		return s.current
	}
	u, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			zap.L().Warn("user restore failed", zap.Error(err))
		}
		return nil
	}
	s.current = u
	return u
}

// CurrentUserID returns "" when no user exists.
func (s *Session) CurrentUserID(ctx context.Context) string {
	if u := s.Load(ctx); u != nil {
		return u.ID
	}
	return ""
}

// EnsureUser returns the current user id, creating the user from candidateName if needed.
func (s *Session) EnsureUser(ctx context.Context, candidateName string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u := s.loadLocked(ctx); u != nil {
		return u.ID, nil
	}
	name := strings.TrimSpace(candidateName)
	if name == "" {
		return "", ErrNameRequired
	}
	u := s.createLocked(ctx, Data{
		Email: fmt.Sprintf("cliente_%d@temp.com", s.now().UnixMilli()),
		Name:  name,
	})
	return u.ID, nil
}

// CreateOrLogin always creates a fresh local user and makes it current.
func (s *Session) CreateOrLogin(ctx context.Context, data Data) *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createLocked(ctx, data)
}

func (s *Session) createLocked(ctx context.Context, data Data) *User {
	name := strings.TrimSpace(data.Name)
	if name == "" {
		name = DefaultName
	}
	now := s.now().UTC()
	u := &User{
		ID:        newID(now),
		Email:     data.Email,
		Name:      name,
		CreatedAt: now,
	}
	// The user still exists for this run when the write fails.
	if err := s.repo.Save(ctx, u); err != nil {
		zap.L().Warn("user persist failed", zap.String("user_id", u.ID), zap.Error(err))
	}
	s.current = u
	zap.L().Info("user created", zap.String("user_id", u.ID), zap.String("name", u.Name))
	return u
}

// Clear forgets the current user, in memory and in storage.
func (s *Session) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	if err := s.repo.Delete(ctx); err != nil {
		zap.L().Warn("user clear failed", zap.Error(err))
	}
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// newID builds "user_<unix-millis>_<6 base36 chars>".
func newID(now time.Time) string {
	var suffix [6]byte
	for i := range suffix {
		suffix[i] = base36[rand.Intn(len(base36))]
	}
	return fmt.Sprintf("user_%d_%s", now.UnixMilli(), suffix[:])
}

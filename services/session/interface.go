// File: services/session/interface.go
package session

import (
	"context"
	"sync"

	"tripplanner/models"

	sessionRepo "tripplanner/database/repository/session"
	userRepo "tripplanner/database/repository/user"

	"github.com/go-redis/redis/v8"
)

// SessionService manages users, their planning sessions and the per-session
// state documents the trip tools mutate.
type SessionService interface {
	StartSession(ctx context.Context, name, email, sessionName string, budget int) (*models.Session, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	ListSessions(ctx context.Context, userID string) ([]models.Session, error)
	EndSession(ctx context.Context, sessionID string) error

	GetState(ctx context.Context, sessionID string) (*models.SessionState, error)
	Update(ctx context.Context, sessionID string, fn func(*models.SessionState) error) error
}

// DefaultSessionService keeps the hot copy of each state document in Redis
// and writes through to Mongo. Update serializes per session with a keyed
// mutex, so concurrent tool calls against one session cannot interleave
// their read-modify-write cycles.
type DefaultSessionService struct {
	users    userRepo.UserRepository
	sessions sessionRepo.SessionRepository
	cache    *redis.Client

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewDefaultSessionService(users userRepo.UserRepository, sessions sessionRepo.SessionRepository, cache *redis.Client) *DefaultSessionService {
	return &DefaultSessionService{
		users:    users,
		sessions: sessions,
		cache:    cache,
		locks:    map[string]*sync.Mutex{},
	}
}

// sessionLock returns the mutex dedicated to one session, creating it on
// first use. Locks are never evicted; sessions are few and short-lived.
func (s *DefaultSessionService) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.locks[sessionID]; ok {
		return l
	}
	l := &sync.Mutex{}
	s.locks[sessionID] = l
	return l
}

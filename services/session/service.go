// File: services/session/service.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tripplanner/config"
	"tripplanner/models"
	"tripplanner/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func stateCacheKey(sessionID string) string {
	return "session_state:" + sessionID
}

func stateCacheTTL() time.Duration {
	if m := config.AppConfig.SessionCacheTTLMin; m > 0 {
		return time.Duration(m) * time.Minute
	}
	return 30 * time.Minute
}

// StartSession creates a planning session for the user, creating the user
// record on first contact (matched by email). The initial state carries the
// user identity and the optional trip budget.
func (s *DefaultSessionService) StartSession(ctx context.Context, name, email, sessionName string, budget int) (*models.Session, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		user = &models.User{
			ID:        uuid.New().String(),
			Name:      name,
			Email:     email,
			CreatedAt: time.Now().UTC(),
			IsActive:  true,
		}
		if err := s.users.Create(user); err != nil {
			return nil, fmt.Errorf("creating user: %w", err)
		}
	} else if err := s.users.UpdateLastLogin(user.ID); err != nil {
		utils.GetLogger().Warn("last-login update failed", zap.String("user_id", user.ID), zap.Error(err))
	}

	now := time.Now().UTC()
	sess := &models.Session{
		SessionID:   uuid.New().String(),
		UserID:      user.ID,
		SessionName: sessionName,
		CreatedAt:   now,
		LastActive:  now,
		IsActive:    true,
		State: models.SessionState{
			UserID:    user.ID,
			UserName:  user.Name,
			UserEmail: user.Email,
			Budget:    budget,
		},
	}
	if err := s.sessions.Create(sess); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	s.cacheState(ctx, sess.SessionID, &sess.State)
	return sess, nil
}

func (s *DefaultSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.sessions.Get(sessionID)
}

func (s *DefaultSessionService) ListSessions(ctx context.Context, userID string) ([]models.Session, error) {
	return s.sessions.ListByUser(userID)
}

// EndSession deactivates the session and drops its cached state. The Mongo
// copy stays behind for audit.
func (s *DefaultSessionService) EndSession(ctx context.Context, sessionID string) error {
	if err := s.sessions.Deactivate(sessionID); err != nil {
		return err
	}
	if err := s.cache.Del(ctx, stateCacheKey(sessionID)).Err(); err != nil && err != redis.Nil {
		utils.GetLogger().Warn("cache eviction failed", zap.String("session_id", sessionID), zap.Error(err))
	}
	return nil
}

// GetState returns the session's state document, serving from the cache
// when possible and falling back to Mongo on a miss.
func (s *DefaultSessionService) GetState(ctx context.Context, sessionID string) (*models.SessionState, error) {
	if st, ok := s.cachedState(ctx, sessionID); ok {
		return st, nil
	}
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	s.cacheState(ctx, sessionID, &sess.State)
	return &sess.State, nil
}

// Update runs fn against the state under the session's lock and writes the
// result through to both the cache and Mongo. fn returning an error aborts
// the write and surfaces unchanged state on the next read.
func (s *DefaultSessionService) Update(ctx context.Context, sessionID string, fn func(*models.SessionState) error) error {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	state, err := s.GetState(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := fn(state); err != nil {
		return err
	}
	if err := s.sessions.UpdateState(sessionID, state); err != nil {
		return fmt.Errorf("persisting session state: %w", err)
	}
	s.cacheState(ctx, sessionID, state)
	return nil
}

func (s *DefaultSessionService) cachedState(ctx context.Context, sessionID string) (*models.SessionState, bool) {
	raw, err := s.cache.Get(ctx, stateCacheKey(sessionID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("cache read failed", zap.String("session_id", sessionID), zap.Error(err))
		}
		return nil, false
	}
	var st models.SessionState
	if err := json.Unmarshal(raw, &st); err != nil {
		utils.GetLogger().Warn("cached state unreadable, falling back to store",
			zap.String("session_id", sessionID), zap.Error(err))
		return nil, false
	}
	return &st, true
}

func (s *DefaultSessionService) cacheState(ctx context.Context, sessionID string, state *models.SessionState) {
	raw, err := json.Marshal(state)
	if err != nil {
		utils.GetLogger().Warn("state marshal failed", zap.String("session_id", sessionID), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, stateCacheKey(sessionID), raw, stateCacheTTL()).Err(); err != nil {
		utils.GetLogger().Warn("cache write failed", zap.String("session_id", sessionID), zap.Error(err))
	}
}

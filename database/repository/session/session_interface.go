package sessionRepo

import "tripplanner/models"

// SessionRepository defines persistence operations for sessions and their
// state documents.
type SessionRepository interface {
	Create(session *models.Session) error
	Get(sessionID string) (*models.Session, error)
	ListByUser(userID string) ([]models.Session, error)
	UpdateState(sessionID string, state *models.SessionState) error
	Deactivate(sessionID string) error
}

package userRepo

import "tripplanner/models"

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdateLastLogin(id string) error
	Deactivate(id string) error
}

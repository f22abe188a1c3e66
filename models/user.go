package models

import "time"

// User represents a trip planner user.
type User struct {
	ID        string    `bson:"id" json:"id"`                           // Unique user identifier (UUID)
	Name      string    `bson:"name" json:"name"`                       // Display name used in emails
	Email     string    `bson:"email,omitempty" json:"email,omitempty"` // Optional, unique when set
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	LastLogin time.Time `bson:"last_login" json:"last_login"`
	IsActive  bool      `bson:"is_active" json:"is_active"`
}

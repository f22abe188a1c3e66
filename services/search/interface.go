// File: services/search/interface.go
package search

import (
	"context"

	"tripplanner/models"
)

// Store is the slice of session management the search service needs to
// record results on the session.
type Store interface {
	Update(ctx context.Context, sessionID string, fn func(*models.SessionState) error) error
}

// SearchService answers free-text travel queries. The raw answer is stored
// on the session as the conversation result, where the booking pipeline
// scrapes it for prices the user never stated.
type SearchService interface {
	Lookup(ctx context.Context, sessionID, query string) (string, error)
}

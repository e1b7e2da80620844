// Package refreshstore persists opaque refresh tokens. The Store
// interface keeps the backend swappable (Postgres, in-memory) without
// changing the renewal protocol.
package refreshstore

import (
	"context"

	"github.com/ryotarofr/dx-ax-container/pkg/db/models"
)

// Store defines the persistence operations the renewal protocol needs.
type Store interface {
	// Insert persists a new refresh token row. Inserting a token string
	// that already exists fails with ErrDuplicate; token strings are
	// globally unique.
	Insert(ctx context.Context, token *models.RefreshToken) error

	// FindByToken returns the row for a token string, or ErrNotFound.
	// Absence is an expected outcome, not a storage failure.
	FindByToken(ctx context.Context, token string) (*models.RefreshToken, error)
}

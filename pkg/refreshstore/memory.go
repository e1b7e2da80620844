package refreshstore

import (
	"context"
	"sync"

	"github.com/ryotarofr/dx-ax-container/pkg/db/models"
)

// MemStore is an in-memory Store for tests and local development.
type MemStore struct {
	mu   sync.RWMutex
	rows map[string]models.RefreshToken
}

func NewMemStore() *MemStore {
	return &MemStore{rows: make(map[string]models.RefreshToken)}
}

func (s *MemStore) Insert(_ context.Context, token *models.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[token.Token]; ok {
		return ErrDuplicate
	}
	s.rows[token.Token] = *token
	return nil
}

func (s *MemStore) FindByToken(_ context.Context, token string) (*models.RefreshToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[token]
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}

var _ Store = (*MemStore)(nil)

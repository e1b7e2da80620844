package refreshstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/ryotarofr/dx-ax-container/pkg/db/models"
)

// BunStore stores refresh tokens in the relational database.
type BunStore struct {
	db *bun.DB
}

func NewBunStore(db *bun.DB) *BunStore {
	return &BunStore{db: db}
}

func (s *BunStore) Insert(ctx context.Context, token *models.RefreshToken) error {
	_, err := s.db.NewInsert().Model(token).Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicate, token.Token)
		}
		return fmt.Errorf("insert refresh token: %w", err)
	}
	return nil
}

func (s *BunStore) FindByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	row := new(models.RefreshToken)
	err := s.db.NewSelect().
		Model(row).
		Where("token = ?", token).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select refresh token: %w", err)
	}
	return row, nil
}

// isUniqueViolation recognizes the Postgres unique-violation class
// (SQLSTATE 23505), with a string fallback for the SQLite dialect used
// in tests.
func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "constraint failed")
}

var _ Store = (*BunStore)(nil)

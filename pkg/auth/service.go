// Package auth implements the refresh-token renewal protocol. A renewal
// request presents an opaque refresh token; the service verifies it
// against the store, mints a new access token for the owning user, and
// persists a fresh refresh token.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ryotarofr/dx-ax-container/pkg/db/models"
	"github.com/ryotarofr/dx-ax-container/pkg/logx"
	"github.com/ryotarofr/dx-ax-container/pkg/refreshstore"
	"github.com/ryotarofr/dx-ax-container/pkg/token"
)

// ErrInvalidRefreshToken is returned when the presented token is
// unknown, expired, or could not be checked. Callers must not learn
// which.
var ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")

// Service drives the renewal state transition. It borrows the store and
// codec; both are shared, process-lifetime dependencies.
type Service struct {
	store      refreshstore.Store
	codec      *token.Codec
	refreshTTL time.Duration
	logger     *logx.Logger
}

func NewService(store refreshstore.Store, codec *token.Codec, refreshTTL time.Duration, logger *logx.Logger) *Service {
	if logger == nil {
		logger = logx.NewDefault()
	}
	return &Service{store: store, codec: codec, refreshTTL: refreshTTL, logger: logger}
}

// TokenPair carries the outcome of a successful issuance or renewal.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Renew exchanges a stored, unexpired refresh token for a new access
// token. A fresh refresh token is persisted for the same user, but the
// pair echoes the presented token string: clients keep presenting it
// until it expires.
func (s *Service) Renew(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.verifyRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.codec.Mint(userID)
	if err != nil {
		return nil, fmt.Errorf("mint access token: %w", err)
	}

	// A storage failure here is not surfaced: the presented token is
	// still valid, so the renewal stands.
	if _, err := s.createRefreshToken(ctx, userID); err != nil {
		s.logger.Warn("failed to store new refresh token", "error", err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Issue mints an access token and a stored refresh token for userID,
// e.g. after a successful login.
func (s *Service) Issue(ctx context.Context, userID int64) (*TokenPair, error) {
	accessToken, err := s.codec.Mint(userID)
	if err != nil {
		return nil, fmt.Errorf("mint access token: %w", err)
	}

	refreshToken, err := s.createRefreshToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// verifyRefreshToken looks the token up and checks its expiry, returning
// the owning user id. The comparison is strict: a token exactly at its
// expiry instant is already expired.
func (s *Service) verifyRefreshToken(ctx context.Context, tokenString string) (int64, error) {
	row, err := s.store.FindByToken(ctx, tokenString)
	if err != nil {
		if !errors.Is(err, refreshstore.ErrNotFound) {
			s.logger.Warn("refresh token lookup failed", "error", err)
		}
		return 0, ErrInvalidRefreshToken
	}

	if !time.Now().Before(row.ExpiresAt) {
		return 0, ErrInvalidRefreshToken
	}

	return row.UserID, nil
}

// createRefreshToken generates a fresh opaque token and persists it with
// a new expiry window for userID.
func (s *Service) createRefreshToken(ctx context.Context, userID int64) (string, error) {
	row := &models.RefreshToken{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}

	if err := s.store.Insert(ctx, row); err != nil {
		return "", err
	}

	return row.Token, nil
}

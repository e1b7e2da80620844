package routes

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryotarofr/dx-ax-container/pkg/api/schemas"
	"github.com/ryotarofr/dx-ax-container/pkg/auth"
	"github.com/ryotarofr/dx-ax-container/pkg/db/models"
	"github.com/ryotarofr/dx-ax-container/pkg/logx"
	"github.com/ryotarofr/dx-ax-container/pkg/refreshstore"
	"github.com/ryotarofr/dx-ax-container/pkg/token"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newRefreshAPI(t *testing.T) (humatest.TestAPI, *refreshstore.MemStore, *token.Codec) {
	t.Helper()

	store := refreshstore.NewMemStore()
	codec := token.NewCodec([]byte(testSecret), time.Minute)
	logger := logx.New(slog.LevelError+1, io.Discard)
	svc := auth.NewService(store, codec, 30*24*time.Hour, logger)

	_, api := humatest.New(t)
	RegisterRefresh(api, svc)
	return api, store, codec
}

func decodeEnvelope(t *testing.T, body []byte) schemas.TokenEnvelope {
	t.Helper()
	var env schemas.TokenEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func TestRefreshEndpointValidToken(t *testing.T) {
	api, store, codec := newRefreshAPI(t)
	require.NoError(t, store.Insert(context.Background(), &models.RefreshToken{
		Token:     "abc",
		UserID:    7,
		ExpiresAt: time.Now().Add(30 * 24 * time.Hour),
	}))

	resp := api.Post("/api/refresh_token", map[string]any{"refresh_token": "abc"})
	require.Equal(t, http.StatusOK, resp.Code)

	env := decodeEnvelope(t, resp.Body.Bytes())
	assert.True(t, env.Success)
	assert.Equal(t, "abc", env.Data.RefreshToken)
	assert.Empty(t, env.Data.Message)

	claims, err := codec.Verify(env.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
}

func TestRefreshEndpointExpiredToken(t *testing.T) {
	api, store, _ := newRefreshAPI(t)
	require.NoError(t, store.Insert(context.Background(), &models.RefreshToken{
		Token:     "old",
		UserID:    7,
		ExpiresAt: time.Now().Add(-time.Second),
	}))

	resp := api.Post("/api/refresh_token", map[string]any{"refresh_token": "old"})
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	env := decodeEnvelope(t, resp.Body.Bytes())
	assert.False(t, env.Success)
	assert.Equal(t, "invalid or expired refresh token", env.Data.Message)
	assert.Empty(t, env.Data.Token)
}

func TestRefreshEndpointUnknownToken(t *testing.T) {
	api, _, _ := newRefreshAPI(t)

	resp := api.Post("/api/refresh_token", map[string]any{"refresh_token": "never-issued"})
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	env := decodeEnvelope(t, resp.Body.Bytes())
	assert.False(t, env.Success)
	assert.Equal(t, "invalid or expired refresh token", env.Data.Message)
}

// explodingStore fails every operation; handlers that reject input before
// touching the store never notice.
type explodingStore struct{}

func (explodingStore) Insert(context.Context, *models.RefreshToken) error {
	return errors.New("store must not be touched")
}

func (explodingStore) FindByToken(context.Context, string) (*models.RefreshToken, error) {
	return nil, errors.New("store must not be touched")
}

func newExplodingAPI(t *testing.T) humatest.TestAPI {
	t.Helper()

	codec := token.NewCodec([]byte(testSecret), time.Minute)
	logger := logx.New(slog.LevelError+1, io.Discard)
	svc := auth.NewService(explodingStore{}, codec, 30*24*time.Hour, logger)

	_, api := humatest.New(t)
	RegisterRefresh(api, svc)
	return api
}

func TestRefreshEndpointNullToken(t *testing.T) {
	// A store error surfaces as 401, so getting 400 proves the missing
	// token is rejected before any store access.
	api := newExplodingAPI(t)

	resp := api.Post("/api/refresh_token", map[string]any{"refresh_token": nil})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	env := decodeEnvelope(t, resp.Body.Bytes())
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid request", env.Data.Message)
}

func TestRefreshEndpointEmptyToken(t *testing.T) {
	api := newExplodingAPI(t)

	resp := api.Post("/api/refresh_token", map[string]any{"refresh_token": ""})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	env := decodeEnvelope(t, resp.Body.Bytes())
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid request", env.Data.Message)
}

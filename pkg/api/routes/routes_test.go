package routes

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/ryotarofr/dx-ax-container/pkg/api/schemas"
	"github.com/ryotarofr/dx-ax-container/pkg/db/models"
	"github.com/ryotarofr/dx-ax-container/pkg/users"
)

func TestHealthEndpoint(t *testing.T) {
	_, api := humatest.New(t)
	RegisterHealth(api)

	resp := api.Get("/api/test")
	require.Equal(t, http.StatusOK, resp.Code)

	var body schemas.HealthBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.NotEmpty(t, body.Message)
}

func TestUsersEndpoint(t *testing.T) {
	_, api := humatest.New(t)
	RegisterUsers(api, users.NewDirectory(users.Defaults()))

	resp := api.Get("/users")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Users []users.User `json:"users"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, users.Defaults(), body.Users)
}

func newLookupDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	_, err = db.NewCreateTable().
		Model((*models.User)(nil)).
		Exec(context.Background())
	require.NoError(t, err)

	return db
}

func TestLookupEndpointFound(t *testing.T) {
	db := newLookupDB(t)
	name := "Taro"
	_, err := db.NewInsert().Model(&models.User{
		ID:       1,
		Email:    "taro@example.com",
		UserName: &name,
	}).Exec(context.Background())
	require.NoError(t, err)

	_, api := humatest.New(t)
	RegisterLookup(api, db)

	resp := api.Get("/api/test2?user_id=1")
	require.Equal(t, http.StatusOK, resp.Code)

	var env schemas.LookupEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &env))
	assert.Equal(t, "success", env.Status)
	require.NotNil(t, env.Results)
	require.Len(t, *env.Results, 1)
	assert.Equal(t, "taro@example.com", (*env.Results)[0].Email)
}

func TestLookupEndpointNoRows(t *testing.T) {
	db := newLookupDB(t)

	_, api := humatest.New(t)
	RegisterLookup(api, db)

	resp := api.Get("/api/test2?user_id=999")
	require.Equal(t, http.StatusOK, resp.Code)

	var env schemas.LookupEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &env))
	assert.Equal(t, "success", env.Status)
	require.NotNil(t, env.Results)
	assert.Empty(t, *env.Results)
}

func TestLookupEndpointStorageFailure(t *testing.T) {
	db := newLookupDB(t)
	require.NoError(t, db.Close())

	_, api := humatest.New(t)
	RegisterLookup(api, db)

	resp := api.Get("/api/test2?user_id=1")
	require.Equal(t, http.StatusInternalServerError, resp.Code)

	var env schemas.LookupEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &env))
	assert.Equal(t, "fail", env.Status)
	assert.NotEmpty(t, env.Message)
	assert.Nil(t, env.Results)
}

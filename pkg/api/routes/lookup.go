package routes

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/uptrace/bun"

	"github.com/ryotarofr/dx-ax-container/pkg/api/schemas"
	"github.com/ryotarofr/dx-ax-container/pkg/db/models"
)

type LookupInput struct {
	UserID int64 `query:"user_id" required:"true" doc:"User id to look up" example:"1"`
}

type LookupOutput struct {
	Status int `json:"-"`
	Body   schemas.LookupEnvelope
}

func RegisterLookup(api huma.API, db *bun.DB) {
	huma.Register(api, huma.Operation{
		OperationID: "lookup-user",
		Method:      http.MethodGet,
		Path:        "/api/test2",
		Summary:     "Look up a user by id",
		Description: "Runs a parameterized select against mst_user",
		Tags:        []string{TagUsers.String()},
	}, func(ctx context.Context, input *LookupInput) (*LookupOutput, error) {
		var found []models.User
		err := db.NewSelect().
			Model(&found).
			Where("id = ?", input.UserID).
			Scan(ctx)
		if err != nil {
			return &LookupOutput{
				Status: http.StatusInternalServerError,
				Body:   schemas.LookupFailure("Something bad happened while fetching user rows"),
			}, nil
		}

		rows := make([]schemas.UserRow, 0, len(found))
		for _, u := range found {
			rows = append(rows, schemas.UserRow{ID: u.ID, Email: u.Email, UserName: u.UserName})
		}

		return &LookupOutput{
			Status: http.StatusOK,
			Body:   schemas.LookupSuccess(rows),
		}, nil
	})
}

package routes

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ryotarofr/dx-ax-container/pkg/users"
)

type UsersOutput struct {
	Body struct {
		Users []users.User `json:"users"`
	}
}

func RegisterUsers(api huma.API, directory *users.Directory) {
	huma.Register(api, huma.Operation{
		OperationID: "list-users",
		Method:      http.MethodGet,
		Path:        "/users",
		Summary:     "List directory users",
		Description: "Serves the in-memory user directory",
		Tags:        []string{TagUsers.String()},
	}, func(ctx context.Context, input *struct{}) (*UsersOutput, error) {
		resp := &UsersOutput{}
		resp.Body.Users = directory.Snapshot()
		return resp, nil
	})
}

package routes

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ryotarofr/dx-ax-container/pkg/api/schemas"
)

const healthMessage = "Simple CRUD API with Go, Bun, Postgres, and Huma"

type HealthOutput struct {
	Body schemas.HealthBody
}

func RegisterHealth(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/test",
		Summary:     "Health check",
		Description: "Returns a static probe response",
		Tags:        []string{TagHealth.String()},
	}, func(ctx context.Context, input *struct{}) (*HealthOutput, error) {
		resp := &HealthOutput{}
		resp.Body.Status = "success"
		resp.Body.Message = healthMessage
		return resp, nil
	})
}

package routes

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ryotarofr/dx-ax-container/pkg/api/schemas"
	"github.com/ryotarofr/dx-ax-container/pkg/auth"
)

type RefreshInput struct {
	Body struct {
		RefreshToken *string `json:"refresh_token" required:"false" nullable:"true" doc:"Refresh token issued from a previous renewal"`
	}
}

type RefreshOutput struct {
	Status int `json:"-"`
	Body   schemas.TokenEnvelope
}

func RegisterRefresh(api huma.API, svc *auth.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "refresh-token",
		Method:      http.MethodPost,
		Path:        "/api/refresh_token",
		Summary:     "Refresh access token",
		Description: "Exchanges a stored refresh token for a new access token",
		Tags:        []string{TagAuth.String()},
	}, func(ctx context.Context, input *RefreshInput) (*RefreshOutput, error) {
		// Missing input is rejected before any store access.
		if input.Body.RefreshToken == nil || *input.Body.RefreshToken == "" {
			return &RefreshOutput{
				Status: http.StatusBadRequest,
				Body:   schemas.TokenFailure("Invalid request"),
			}, nil
		}

		pair, err := svc.Renew(ctx, *input.Body.RefreshToken)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidRefreshToken) {
				return &RefreshOutput{
					Status: http.StatusUnauthorized,
					Body:   schemas.TokenFailure(err.Error()),
				}, nil
			}
			// Mint failures end up here and keep the original 400 contract.
			return &RefreshOutput{
				Status: http.StatusBadRequest,
				Body:   schemas.TokenFailure(err.Error()),
			}, nil
		}

		return &RefreshOutput{
			Status: http.StatusOK,
			Body:   schemas.TokenSuccess(pair.AccessToken, pair.RefreshToken),
		}, nil
	})
}

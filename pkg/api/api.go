package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Api struct {
	Api    huma.API
	Router *chi.Mux
}

// CORSOptions builds the policy for the single allowed origin.
func CORSOptions(origin string) cors.Options {
	return cors.Options{
		AllowedOrigins:   []string{origin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE"},
		AllowedHeaders:   []string{"Authorization", "Accept", "Content-Type"},
		AllowCredentials: true,
	}
}

func NewApi(corsOrigin string) *Api {
	router := chi.NewMux()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(CORSOptions(corsOrigin)))

	config := huma.DefaultConfig("dx-ax-container API", "1.0.0")

	api := humachi.New(router, config)

	return &Api{Api: api, Router: router}
}

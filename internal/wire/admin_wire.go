package wire

import (
	"cinemaspot-frontend/internal/adaptor"
	"cinemaspot-frontend/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(r chi.Router, adminHandler *adaptor.AdminHandler, log *zap.Logger) {
	r.Route("/api/admin/{resource}", func(r chi.Router) {
		r.Use(middleware.RequireAuth(log))
		r.Use(middleware.RequireAdmin(log))

		r.Get("/", adminHandler.List)
		r.Post("/", adminHandler.Create)
		r.Get("/{id}", adminHandler.Get)
		r.Put("/{id}", adminHandler.Update)
		r.Delete("/{id}", adminHandler.Delete)
	})
}

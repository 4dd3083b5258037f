package wire

import (
	"cinemaspot-frontend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// Public: anyone can browse the catalog
	r.Get("/api/movies", catalogHandler.GetMovies)
	r.Get("/api/movies/{id}", catalogHandler.GetMovieByID)
}

package wire

import (
	"net/http"

	"cinemaspot-frontend/internal/adaptor"
	"cinemaspot-frontend/internal/store"
	"cinemaspot-frontend/internal/usecase"
	"cinemaspot-frontend/pkg/middleware"
	"cinemaspot-frontend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(service *usecase.Service, sessions *store.SessionStore, config *utils.Config, logger *zap.Logger) *App {
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, sessions, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	sessions *store.SessionStore,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Session must run before Logger so requests log their session id
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Session(sessions, config.Session.CookieName, logger))
	r.Use(middleware.Logger(logger))

	wireAuth(r, handler.Auth)
	wireCatalog(r, handler.Catalog)
	wireBooking(r, handler.Booking, logger)
	wireReservation(r, handler.Reservation, logger)
	wireAdmin(r, handler.Admin, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

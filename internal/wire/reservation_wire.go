package wire

import (
	"cinemaspot-frontend/internal/adaptor"
	"cinemaspot-frontend/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(r chi.Router, reservationHandler *adaptor.ReservationHandler, log *zap.Logger) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(log))

		r.Get("/api/reservation", reservationHandler.GetSummary)
		r.Post("/api/reservation/submit", reservationHandler.Submit)
		r.Delete("/api/reservation", reservationHandler.Cancel)
		r.Get("/api/reservations", reservationHandler.GetUserReservations)
		r.Get("/api/reservations/{id}/ticket", reservationHandler.GetTicket)
	})
}

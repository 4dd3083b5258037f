package wire

import (
	"cinemaspot-frontend/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, log *zap.Logger) {
	// The seat-selection page is viewable without logging in; toggling a
	// seat is the point where the flow demands authentication, and the
	// service enforces that itself so the page can show the auth prompt.
	r.Route("/api/booking", func(r chi.Router) {
		r.Get("/movies/{id}", bookingHandler.GetMoviePage)
		r.Post("/showtime", bookingHandler.SelectShowtime)
		r.Get("/seats", bookingHandler.GetSeatMap)
		r.Post("/seats/toggle", bookingHandler.ToggleSeat)
		r.Post("/confirm", bookingHandler.ConfirmSelection)
	})
}

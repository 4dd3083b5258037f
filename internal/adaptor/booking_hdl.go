package adaptor

import (
	"encoding/json"
	"net/http"

	"cinemaspot-frontend/internal/dto/request"
	"cinemaspot-frontend/internal/usecase"
	"cinemaspot-frontend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// GetMoviePage handles GET /api/booking/movies/{id} - movie details plus
// showtimes for the seat-selection flow.
func (h *BookingHandler) GetMoviePage(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}

	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	page, err := h.service.LoadMovie(r.Context(), sess, movieID)
	if err != nil {
		handleServiceError(w, h.log, err, "load movie page")
		return
	}

	utils.ResponseSuccess(w, "success", page)
}

// SelectShowtime handles POST /api/booking/showtime
func (h *BookingHandler) SelectShowtime(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}

	var req request.SelectShowtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	page, err := h.service.SelectShowtime(r.Context(), sess, req.ShowtimeID)
	if err != nil {
		handleServiceError(w, h.log, err, "select showtime")
		return
	}

	utils.ResponseSuccess(w, "Showtime selected", page)
}

// GetSeatMap handles GET /api/booking/seats
func (h *BookingHandler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}

	page, err := h.service.SeatMap(r.Context(), sess)
	if err != nil {
		handleServiceError(w, h.log, err, "load seat map")
		return
	}

	utils.ResponseSuccess(w, "success", page)
}

// ToggleSeat handles POST /api/booking/seats/toggle
func (h *BookingHandler) ToggleSeat(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}

	var req request.ToggleSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	page, err := h.service.ToggleSeat(r.Context(), sess, req.SeatID)
	if err != nil {
		handleServiceError(w, h.log, err, "toggle seat")
		return
	}

	utils.ResponseSuccess(w, "success", page)
}

// ConfirmSelection handles POST /api/booking/confirm
func (h *BookingHandler) ConfirmSelection(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}

	draft, err := h.service.ConfirmSelection(r.Context(), sess)
	if err != nil {
		handleServiceError(w, h.log, err, "confirm selection")
		return
	}

	utils.ResponseSuccess(w, "Selection confirmed", draft)
}

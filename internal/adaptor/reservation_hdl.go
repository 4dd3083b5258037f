package adaptor

import (
	"net/http"

	"cinemaspot-frontend/internal/usecase"
	"cinemaspot-frontend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// GetSummary handles GET /api/reservation - the confirmation page.
func (h *ReservationHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}

	summary, err := h.service.Summary(sess)
	if err != nil {
		handleServiceError(w, h.log, err, "load reservation summary")
		return
	}

	utils.ResponseSuccess(w, "success", summary)
}

// Submit handles POST /api/reservation/submit
func (h *ReservationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}

	result, err := h.service.Submit(r.Context(), sess)
	if err != nil {
		handleServiceError(w, h.log, err, "submit reservation")
		return
	}

	if result.Partial() {
		utils.ResponsePartial(w, "Reservation created, some seats could not be updated", result, result.SeatsFailed)
		return
	}

	utils.ResponseCreated(w, "Reservation created", result)
}

// Cancel handles DELETE /api/reservation
func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}

	if err := h.service.Cancel(r.Context(), sess); err != nil {
		handleServiceError(w, h.log, err, "cancel reservation")
		return
	}

	utils.ResponseSuccess(w, "Reservation cancelled", nil)
}

// GetUserReservations handles GET /api/reservations
func (h *ReservationHandler) GetUserReservations(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}

	reservations, err := h.service.UserReservations(r.Context(), sess)
	if err != nil {
		handleServiceError(w, h.log, err, "list reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

// GetTicket handles GET /api/reservations/{id}/ticket - a QR code PNG.
func (h *ReservationHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	sess, ok := session(w, r)
	if !ok {
		return
	}

	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	png, err := h.service.Ticket(r.Context(), sess, reservationID)
	if err != nil {
		handleServiceError(w, h.log, err, "render ticket")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"cinemaspot-frontend/internal/data/apiclient"
	"cinemaspot-frontend/internal/store"
	"cinemaspot-frontend/internal/usecase"
	"cinemaspot-frontend/pkg/middleware"
	"cinemaspot-frontend/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	Catalog     *CatalogHandler
	Booking     *BookingHandler
	Reservation *ReservationHandler
	Admin       *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Catalog:     NewCatalogHandler(service.Catalog, log),
		Booking:     NewBookingHandler(service.Booking, log),
		Reservation: NewReservationHandler(service.Reservation, log),
		Admin:       NewAdminHandler(service.Admin, log),
	}
}

// session pulls the record placed by the session middleware. The middleware
// always runs first, so a miss is a wiring bug.
func session(w http.ResponseWriter, r *http.Request) (*store.Session, bool) {
	sess, ok := middleware.SessionFrom(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Internal server error")
		return nil, false
	}
	return sess, true
}

// handleServiceError maps service errors onto the response envelope. Every
// failure surfaces as a dismissable notification on the client; nothing is
// retried here.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var apiErr *apiclient.APIError

	switch {
	case errors.Is(err, usecase.ErrLoginRequired):
		utils.ResponseUnauthorized(w, "Login required")

	case errors.Is(err, usecase.ErrAdminRequired):
		utils.ResponseForbidden(w, "Admin access required")

	case errors.Is(err, usecase.ErrNoSeatsSelected),
		errors.Is(err, usecase.ErrNoShowtime),
		errors.Is(err, usecase.ErrRoomUnresolved),
		errors.Is(err, usecase.ErrUnknownResource):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNoReservation),
		errors.Is(err, usecase.ErrSeatUnknown),
		errors.Is(err, apiclient.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case strings.Contains(err.Error(), "validation failed"):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.As(err, &apiErr):
		log.Warn(operation+" rejected upstream",
			zap.Int("upstream_status", apiErr.Status),
			zap.Error(err))
		switch apiErr.Status {
		case http.StatusUnauthorized:
			utils.ResponseUnauthorized(w, apiErr.Message)
		case http.StatusForbidden:
			utils.ResponseForbidden(w, apiErr.Message)
		case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusConflict:
			utils.ResponseBadRequest(w, apiErr.Message, nil)
		default:
			utils.ResponseBadGateway(w, apiErr.Message)
		}

	case strings.Contains(err.Error(), "call api"):
		log.Error("Upstream unreachable during "+operation, zap.Error(err))
		utils.ResponseBadGateway(w, "Service temporarily unavailable")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

package usecase

import (
	"cinemaspot-frontend/internal/data/apiclient"
	"cinemaspot-frontend/internal/store"
	"cinemaspot-frontend/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	Catalog     CatalogService
	Booking     BookingService
	Reservation ReservationService
	Admin       AdminService
}

func NewService(api *apiclient.API, sessions *store.SessionStore, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(api, sessions, log),
		Catalog:     NewCatalogService(api, log),
		Booking:     NewBookingService(api, sessions, config, log),
		Reservation: NewReservationService(api, sessions, log),
		Admin:       NewAdminService(api, log),
	}
}

package apiclient

import (
	"context"
	"fmt"

	"cinemaspot-frontend/internal/data/entity"

	"go.uber.org/zap"
)

type ReservationAPI interface {
	Create(ctx context.Context, token, userID, showtimeID string, seatIDs []string) (*entity.Reservation, error)
	FindByUserID(ctx context.Context, token, userID string) ([]*entity.ReservationView, error)
	Delete(ctx context.Context, token, reservationID string) error
}

type reservationAPI struct {
	client *Client
	log    *zap.Logger
}

func NewReservationAPI(client *Client, log *zap.Logger) ReservationAPI {
	return &reservationAPI{
		client: client,
		log:    log.With(zap.String("api", "reservation")),
	}
}

type createReservationPayload struct {
	UserID     string   `json:"user_id"`
	ShowtimeID string   `json:"showtime_id"`
	SeatIDs    []string `json:"seat_ids"`
}

func (a *reservationAPI) Create(ctx context.Context, token, userID, showtimeID string, seatIDs []string) (*entity.Reservation, error) {
	payload := createReservationPayload{
		UserID:     userID,
		ShowtimeID: showtimeID,
		SeatIDs:    seatIDs,
	}

	var reservation entity.Reservation
	if err := a.client.Post(ctx, "/reservations/", token, payload, &reservation); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	return &reservation, nil
}

func (a *reservationAPI) FindByUserID(ctx context.Context, token, userID string) ([]*entity.ReservationView, error) {
	var reservations []*entity.ReservationView
	if err := a.client.Get(ctx, "/reservations/user/"+userID, token, &reservations); err != nil {
		return nil, fmt.Errorf("list reservations for user %s: %w", userID, err)
	}
	return reservations, nil
}

func (a *reservationAPI) Delete(ctx context.Context, token, reservationID string) error {
	if err := a.client.Delete(ctx, "/reservations/"+reservationID, token); err != nil {
		return fmt.Errorf("delete reservation %s: %w", reservationID, err)
	}
	return nil
}

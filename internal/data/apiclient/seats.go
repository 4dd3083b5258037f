package apiclient

import (
	"context"
	"fmt"

	"cinemaspot-frontend/internal/data/entity"

	"go.uber.org/zap"
)

type SeatAPI interface {
	FindByRoomID(ctx context.Context, roomID string) ([]*entity.Seat, error)
	// UpdateAvailability marks one seat taken or free. There is no bulk
	// variant upstream; submission issues one call per booked seat.
	UpdateAvailability(ctx context.Context, token, seatID string, available bool) error
}

type seatAPI struct {
	client *Client
	log    *zap.Logger
}

func NewSeatAPI(client *Client, log *zap.Logger) SeatAPI {
	return &seatAPI{
		client: client,
		log:    log.With(zap.String("api", "seat")),
	}
}

func (a *seatAPI) FindByRoomID(ctx context.Context, roomID string) ([]*entity.Seat, error) {
	var seats []*entity.Seat
	if err := a.client.Get(ctx, "/seats/room/"+roomID, "", &seats); err != nil {
		return nil, fmt.Errorf("list seats for room %s: %w", roomID, err)
	}
	return seats, nil
}

func (a *seatAPI) UpdateAvailability(ctx context.Context, token, seatID string, available bool) error {
	payload := map[string]bool{"is_available": available}
	if err := a.client.Put(ctx, "/seats/"+seatID+"/", token, payload, nil); err != nil {
		return fmt.Errorf("update seat %s: %w", seatID, err)
	}
	return nil
}

package apiclient

import (
	"context"
	"fmt"

	"cinemaspot-frontend/internal/data/entity"

	"go.uber.org/zap"
)

type ShowtimeAPI interface {
	FindByMovieID(ctx context.Context, movieID string) ([]*entity.Showtime, error)
	// FindByID resolves the room reference for a single showtime.
	FindByID(ctx context.Context, showtimeID string) (*entity.Showtime, error)
}

type showtimeAPI struct {
	client *Client
	log    *zap.Logger
}

func NewShowtimeAPI(client *Client, log *zap.Logger) ShowtimeAPI {
	return &showtimeAPI{
		client: client,
		log:    log.With(zap.String("api", "showtime")),
	}
}

func (a *showtimeAPI) FindByMovieID(ctx context.Context, movieID string) ([]*entity.Showtime, error) {
	var showtimes []*entity.Showtime
	if err := a.client.Get(ctx, "/showtimes/movie/"+movieID, "", &showtimes); err != nil {
		return nil, fmt.Errorf("list showtimes for movie %s: %w", movieID, err)
	}
	return showtimes, nil
}

func (a *showtimeAPI) FindByID(ctx context.Context, showtimeID string) (*entity.Showtime, error) {
	var showtime entity.Showtime
	if err := a.client.Get(ctx, "/showtimes/"+showtimeID, "", &showtime); err != nil {
		return nil, fmt.Errorf("get showtime %s: %w", showtimeID, err)
	}
	return &showtime, nil
}

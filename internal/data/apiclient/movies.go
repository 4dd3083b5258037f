package apiclient

import (
	"context"
	"fmt"

	"cinemaspot-frontend/internal/data/entity"

	"go.uber.org/zap"
)

type MovieAPI interface {
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	FindByID(ctx context.Context, movieID string) (*entity.Movie, error)
}

type movieAPI struct {
	client *Client
	log    *zap.Logger
}

func NewMovieAPI(client *Client, log *zap.Logger) MovieAPI {
	return &movieAPI{
		client: client,
		log:    log.With(zap.String("api", "movie")),
	}
}

func (a *movieAPI) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	var movies []*entity.Movie
	if err := a.client.Get(ctx, "/movies/", "", &movies); err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

func (a *movieAPI) FindByID(ctx context.Context, movieID string) (*entity.Movie, error) {
	var movie entity.Movie
	if err := a.client.Get(ctx, "/movies/"+movieID, "", &movie); err != nil {
		return nil, fmt.Errorf("get movie %s: %w", movieID, err)
	}
	return &movie, nil
}

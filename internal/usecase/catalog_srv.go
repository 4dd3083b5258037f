package usecase

import (
	"context"
	"fmt"

	"cinemaspot-frontend/internal/data/apiclient"
	"cinemaspot-frontend/internal/data/entity"

	"go.uber.org/zap"
)

type CatalogService interface {
	Movies(ctx context.Context) ([]*entity.Movie, error)
	Movie(ctx context.Context, movieID string) (*entity.Movie, error)
}

type catalogService struct {
	api *apiclient.API
	log *zap.Logger
}

func NewCatalogService(api *apiclient.API, log *zap.Logger) CatalogService {
	return &catalogService{
		api: api,
		log: log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) Movies(ctx context.Context) ([]*entity.Movie, error) {
	movies, err := s.api.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}

	s.log.Info("Movies listed", zap.Int("count", len(movies)))
	return movies, nil
}

func (s *catalogService) Movie(ctx context.Context, movieID string) (*entity.Movie, error) {
	movie, err := s.api.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie %s: %w", movieID, err)
	}
	return movie, nil
}

package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"cinemaspot-frontend/internal/data/apiclient"
	"cinemaspot-frontend/internal/dto/request"
	"cinemaspot-frontend/internal/store"
	"cinemaspot-frontend/pkg/utils"

	"go.uber.org/zap"
)

// adminResources is the registry of back-office entities. Every resource
// follows the same list/get/create/update/delete pattern upstream, so one
// service covers all nine screens.
var adminResources = map[string]bool{
	"movies":       true,
	"rooms":        true,
	"showtimes":    true,
	"categories":   true,
	"reservations": true,
	"users":        true,
	"roles":        true,
	"actors":       true,
	"movie-cast":   true,
}

// resourceValidators decodes-and-validates payloads for resources whose
// shape the storefront knows; everything else passes through for the
// upstream to validate.
var resourceValidators = map[string]func(json.RawMessage) error{
	"movies":    validateAs[request.MovieRequest],
	"showtimes": validateAs[request.ShowtimeRequest],
	"rooms":     validateAs[request.RoomRequest],
}

func validateAs[T any](payload json.RawMessage) error {
	var req T
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	return nil
}

type AdminService interface {
	List(ctx context.Context, sess *store.Session, resource string) (json.RawMessage, error)
	Get(ctx context.Context, sess *store.Session, resource, id string) (json.RawMessage, error)
	Create(ctx context.Context, sess *store.Session, resource string, payload json.RawMessage) (json.RawMessage, error)
	Update(ctx context.Context, sess *store.Session, resource, id string, payload json.RawMessage) (json.RawMessage, error)
	Delete(ctx context.Context, sess *store.Session, resource, id string) error
}

type adminService struct {
	api *apiclient.API
	log *zap.Logger
}

func NewAdminService(api *apiclient.API, log *zap.Logger) AdminService {
	return &adminService{
		api: api,
		log: log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) guard(sess *store.Session, resource string) error {
	if !sess.Auth.Logged {
		return ErrLoginRequired
	}
	if !sess.Auth.User.IsAdmin() {
		return ErrAdminRequired
	}
	if !adminResources[resource] {
		return ErrUnknownResource
	}
	return nil
}

func (s *adminService) List(ctx context.Context, sess *store.Session, resource string) (json.RawMessage, error) {
	if err := s.guard(sess, resource); err != nil {
		return nil, err
	}
	return s.api.Resource.List(ctx, sess.Auth.Token, resource)
}

func (s *adminService) Get(ctx context.Context, sess *store.Session, resource, id string) (json.RawMessage, error) {
	if err := s.guard(sess, resource); err != nil {
		return nil, err
	}
	return s.api.Resource.Get(ctx, sess.Auth.Token, resource, id)
}

func (s *adminService) Create(ctx context.Context, sess *store.Session, resource string, payload json.RawMessage) (json.RawMessage, error) {
	if err := s.guard(sess, resource); err != nil {
		return nil, err
	}

	if validate, ok := resourceValidators[resource]; ok {
		if err := validate(payload); err != nil {
			s.log.Warn("Admin create rejected",
				zap.String("resource", resource),
				zap.Error(err))
			return nil, err
		}
	}

	out, err := s.api.Resource.Create(ctx, sess.Auth.Token, resource, payload)
	if err != nil {
		return nil, err
	}

	s.log.Info("Admin resource created",
		zap.String("resource", resource),
		zap.String("user_id", sess.Auth.User.ID))

	return out, nil
}

func (s *adminService) Update(ctx context.Context, sess *store.Session, resource, id string, payload json.RawMessage) (json.RawMessage, error) {
	if err := s.guard(sess, resource); err != nil {
		return nil, err
	}

	if validate, ok := resourceValidators[resource]; ok {
		if err := validate(payload); err != nil {
			s.log.Warn("Admin update rejected",
				zap.String("resource", resource),
				zap.String("id", id),
				zap.Error(err))
			return nil, err
		}
	}

	out, err := s.api.Resource.Update(ctx, sess.Auth.Token, resource, id, payload)
	if err != nil {
		return nil, err
	}

	s.log.Info("Admin resource updated",
		zap.String("resource", resource),
		zap.String("id", id),
		zap.String("user_id", sess.Auth.User.ID))

	return out, nil
}

func (s *adminService) Delete(ctx context.Context, sess *store.Session, resource, id string) error {
	if err := s.guard(sess, resource); err != nil {
		return err
	}

	if err := s.api.Resource.Delete(ctx, sess.Auth.Token, resource, id); err != nil {
		return err
	}

	s.log.Info("Admin resource deleted",
		zap.String("resource", resource),
		zap.String("id", id),
		zap.String("user_id", sess.Auth.User.ID))

	return nil
}

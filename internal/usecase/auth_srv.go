package usecase

import (
	"context"
	"fmt"

	"cinemaspot-frontend/internal/data/apiclient"
	"cinemaspot-frontend/internal/data/entity"
	"cinemaspot-frontend/internal/dto/request"
	"cinemaspot-frontend/internal/store"
	"cinemaspot-frontend/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, sess *store.Session, req *request.LoginRequest) (*entity.User, error)
	Register(ctx context.Context, req *request.RegisterRequest) (*entity.User, error)
	Logout(ctx context.Context, sess *store.Session) error
}

type authService struct {
	api      *apiclient.API
	sessions *store.SessionStore
	log      *zap.Logger
}

func NewAuthService(
	api *apiclient.API,
	sessions *store.SessionStore,
	log *zap.Logger,
) AuthService {
	return &authService{
		api:      api,
		sessions: sessions,
		log:      log.With(zap.String("service", "auth")),
	}
}

// Login authenticates against the upstream auth endpoint and persists the
// token and user into the session's auth slice.
func (s *authService) Login(ctx context.Context, sess *store.Session, req *request.LoginRequest) (*entity.User, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	creds, err := s.api.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		s.log.Warn("Login rejected", zap.Error(err), zap.String("email", req.Email))
		return nil, err
	}

	if err := s.sessions.SetAuth(ctx, sess, creds.Token, creds.User); err != nil {
		return nil, fmt.Errorf("persist login: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", creds.User.ID),
		zap.String("email", creds.User.Email))

	return creds.User, nil
}

// Register creates the account upstream. The visitor logs in afterwards; no
// token is minted here.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*entity.User, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.api.Auth.Register(ctx, req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		s.log.Warn("Registration rejected", zap.Error(err), zap.String("email", req.Email))
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email))

	return user, nil
}

// Logout clears the auth slice. The upstream token is simply forgotten; the
// upstream owns its validity.
func (s *authService) Logout(ctx context.Context, sess *store.Session) error {
	if err := s.sessions.ClearAuth(ctx, sess); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	s.log.Info("Session logged out", zap.String("session_id", sess.ID))
	return nil
}

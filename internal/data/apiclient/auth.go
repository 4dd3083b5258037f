package apiclient

import (
	"context"
	"fmt"

	"cinemaspot-frontend/internal/data/entity"

	"go.uber.org/zap"
)

// Credentials is the upstream login/registration result: the user record and
// an opaque bearer token. The token is trusted until the upstream rejects it;
// no refresh or expiry handling exists on this side.
type Credentials struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*Credentials, error)
	Register(ctx context.Context, firstName, lastName, email, password string) (*entity.User, error)
}

type authAPI struct {
	client *Client
	log    *zap.Logger
}

func NewAuthAPI(client *Client, log *zap.Logger) AuthAPI {
	return &authAPI{
		client: client,
		log:    log.With(zap.String("api", "auth")),
	}
}

func (a *authAPI) Login(ctx context.Context, email, password string) (*Credentials, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	var creds Credentials
	if err := a.client.Post(ctx, "/auth/login", "", payload, &creds); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return &creds, nil
}

func (a *authAPI) Register(ctx context.Context, firstName, lastName, email, password string) (*entity.User, error) {
	payload := map[string]string{
		"first_name": firstName,
		"last_name":  lastName,
		"email":      email,
		"password":   password,
	}

	var user entity.User
	if err := a.client.Post(ctx, "/auth/register", "", payload, &user); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	return &user, nil
}

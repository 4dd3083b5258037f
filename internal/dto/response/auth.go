package response

import "cinemaspot-frontend/internal/data/entity"

type AuthResponse struct {
	User   *entity.User `json:"user"`
	Logged bool         `json:"logged"`
}

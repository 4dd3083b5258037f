package apiclient

import "go.uber.org/zap"

// API groups the typed resource clients, one per upstream concern. It plays
// the role a repository aggregate would in a service that owned its data;
// here the "database" is the remote CinemaSpot REST API.
type API struct {
	Movie       MovieAPI
	Showtime    ShowtimeAPI
	Seat        SeatAPI
	Reservation ReservationAPI
	Auth        AuthAPI
	Resource    ResourceAPI
}

func NewAPI(client *Client, log *zap.Logger) *API {
	return &API{
		Movie:       NewMovieAPI(client, log),
		Showtime:    NewShowtimeAPI(client, log),
		Seat:        NewSeatAPI(client, log),
		Reservation: NewReservationAPI(client, log),
		Auth:        NewAuthAPI(client, log),
		Resource:    NewResourceAPI(client, log),
	}
}

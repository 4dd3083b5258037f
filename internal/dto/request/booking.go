package request

type SelectShowtimeRequest struct {
	ShowtimeID string `json:"showtime_id" validate:"required"`
}

type ToggleSeatRequest struct {
	SeatID string `json:"seat_id" validate:"required"`
}

package entity

import "time"

// Reservation is the persisted upstream entity. The storefront only builds
// the creation payload and reads back denormalized views.
type Reservation struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user"`
	ShowtimeID string    `json:"showtime"`
	SeatIDs    []string  `json:"seats"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReservationView is the denormalized listing shape returned by
// GET /reservations/user/:userId.
type ReservationView struct {
	ID         string   `json:"id"`
	MovieTitle string   `json:"movie_title"`
	RoomName   string   `json:"room_name"`
	StartTime  string   `json:"start_time"`
	EndTime    string   `json:"end_time"`
	SeatLabels []string `json:"seats"`
	CreatedAt  string   `json:"created_at"`
}

// SelectedSeat is one confirmed seat inside a reservation draft.
type SelectedSeat struct {
	ID     string  `json:"id"`
	Number int     `json:"number"`
	Label  string  `json:"label"`
	Price  float64 `json:"price"`
}

// ReservationDraft is the client-held, not-yet-submitted booking selection.
// It is always written as a whole and cleared as a whole; no partial update
// exists, so movie/showtime/seats/price can never disagree.
type ReservationDraft struct {
	Movie    *Movie         `json:"movie"`
	Showtime *Showtime      `json:"showtime"`
	Seats    []SelectedSeat `json:"seats"`
	Price    float64        `json:"price"`
}

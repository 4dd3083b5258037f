package entity

import "strconv"

// Seat is the upstream resource. Availability is the contested field; the
// storefront trusts the value at last fetch and never locks it.
type Seat struct {
	ID          string `json:"id"`
	SeatNumber  int    `json:"seat_number"`
	IsAvailable bool   `json:"is_available"`
	RoomID      string `json:"room"`
}

// SeatView is a Seat decorated for the seat map: grid position, price tier
// and selection flag. It exists only inside a booking session, never
// upstream. Seats whose number falls outside the configured grid are flagged
// rather than collapsed onto the last row.
type SeatView struct {
	ID        string  `json:"id"`
	Number    int     `json:"number"`
	Row       string  `json:"row"`
	Column    int     `json:"column"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
	Selected  bool    `json:"selected"`
	OutOfGrid bool    `json:"out_of_grid,omitempty"`
}

// Label returns the display name, e.g. "A3".
func (s SeatView) Label() string {
	if s.OutOfGrid {
		return ""
	}
	return s.Row + strconv.Itoa(s.Column)
}

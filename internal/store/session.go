package store

import "cinemaspot-frontend/internal/data/entity"

// Session is everything the storefront remembers about one visitor. The auth
// slice is the durable-storage analog (token + user survive long); the draft
// slice is the per-tab-storage analog (booking state + reservation draft
// survive navigation and refresh but expire sooner).
type Session struct {
	ID          string                   `json:"id"`
	Auth        AuthState                `json:"auth"`
	Booking     *BookingState            `json:"booking,omitempty"`
	Reservation *entity.ReservationDraft `json:"reservation,omitempty"`
}

// AuthState holds the logged-in user and its opaque bearer token.
type AuthState struct {
	Logged bool         `json:"logged"`
	Token  string       `json:"token,omitempty"`
	User   *entity.User `json:"user,omitempty"`
}

// BookingState is the seat-selection page state: the movie, the active
// showtime and the seat map snapshot from the last fetch. Selection lives in
// the snapshot's Selected flags, which makes duplicates impossible.
type BookingState struct {
	Movie    *entity.Movie     `json:"movie"`
	Showtime *entity.Showtime  `json:"showtime,omitempty"`
	Seats    []entity.SeatView `json:"seats,omitempty"`
}

// SelectedSeats returns the chosen seats in seat-number order.
func (b *BookingState) SelectedSeats() []entity.SeatView {
	if b == nil {
		return nil
	}

	var selected []entity.SeatView
	for _, seat := range b.Seats {
		if seat.Selected {
			selected = append(selected, seat)
		}
	}
	return selected
}

// ClearSelection drops every Selected flag, keeping the snapshot.
func (b *BookingState) ClearSelection() {
	if b == nil {
		return
	}
	for i := range b.Seats {
		b.Seats[i].Selected = false
	}
}

package response

import "cinemaspot-frontend/internal/data/entity"

// SubmitResult reports a reservation submission, including exactly which
// seat updates failed. Partial success is reported, never silent.
type SubmitResult struct {
	ReservationID string   `json:"reservation_id"`
	SeatsBooked   []string `json:"seats_booked"`
	SeatsFailed   []string `json:"seats_failed,omitempty"`
}

func (r *SubmitResult) Partial() bool {
	return len(r.SeatsFailed) > 0
}

// Summary is the confirmation-page view model.
type Summary struct {
	Movie    *entity.Movie         `json:"movie"`
	Showtime *entity.Showtime      `json:"showtime"`
	Seats    []entity.SelectedSeat `json:"seats"`
	Price    float64               `json:"price"`
}

func DraftToSummary(draft *entity.ReservationDraft) *Summary {
	return &Summary{
		Movie:    draft.Movie,
		Showtime: draft.Showtime,
		Seats:    draft.Seats,
		Price:    draft.Price,
	}
}

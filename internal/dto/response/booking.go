package response

import "cinemaspot-frontend/internal/data/entity"

// MoviePage is the movie-details / showtime-picker view model.
type MoviePage struct {
	Movie            *entity.Movie      `json:"movie"`
	Showtimes        []*entity.Showtime `json:"showtimes"`
	ActiveShowtimeID string             `json:"active_showtime_id,omitempty"`
}

// SeatMapPage is the seat-selection view model: the grid, the current
// selection and the running total.
type SeatMapPage struct {
	ShowtimeID string              `json:"showtime_id"`
	RoomID     string              `json:"room_id"`
	Rows       [][]entity.SeatView `json:"rows"`
	OutOfGrid  []entity.SeatView   `json:"out_of_grid,omitempty"`
	Selected   []entity.SeatView   `json:"selected"`
	Total      float64             `json:"total"`
}

// SeatMapToPage groups a flat seat-view list into display rows.
func SeatMapToPage(showtimeID, roomID string, seats []entity.SeatView, total float64) *SeatMapPage {
	page := &SeatMapPage{
		ShowtimeID: showtimeID,
		RoomID:     roomID,
		Total:      total,
	}

	var currentRow string
	for _, seat := range seats {
		if seat.OutOfGrid {
			page.OutOfGrid = append(page.OutOfGrid, seat)
			continue
		}

		if seat.Row != currentRow || len(page.Rows) == 0 {
			page.Rows = append(page.Rows, nil)
			currentRow = seat.Row
		}
		page.Rows[len(page.Rows)-1] = append(page.Rows[len(page.Rows)-1], seat)

		if seat.Selected {
			page.Selected = append(page.Selected, seat)
		}
	}

	return page
}

package usecase

import (
	"sort"

	"cinemaspot-frontend/internal/data/entity"
	"cinemaspot-frontend/pkg/utils"
)

// BuildSeatMap maps each seat's numeric seat_number onto a (row, column)
// position using the configured columns-per-row. Seat numbers outside the
// configured grid are flagged out-of-grid instead of being collapsed onto
// the last row. Pure; the result carries no selection.
func BuildSeatMap(seats []*entity.Seat, grid utils.GridConfig, pricing utils.PricingConfig) []entity.SeatView {
	views := make([]entity.SeatView, 0, len(seats))

	for _, seat := range seats {
		view := entity.SeatView{
			ID:        seat.ID,
			Number:    seat.SeatNumber,
			Available: seat.IsAvailable,
		}

		idx := seat.SeatNumber - 1
		rowIdx := idx / grid.Columns

		if idx < 0 || rowIdx >= grid.Rows {
			view.OutOfGrid = true
			views = append(views, view)
			continue
		}

		view.Row = rowLetter(rowIdx)
		view.Column = idx%grid.Columns + 1
		view.Price = SeatPrice(rowIdx, pricing)

		views = append(views, view)
	}

	sort.Slice(views, func(i, j int) bool {
		return views[i].Number < views[j].Number
	})

	return views
}

// SeatPrice prices one seat by its row under the configured policy: a flat
// per-seat rate, or tiered with the front rows at a premium.
func SeatPrice(rowIdx int, pricing utils.PricingConfig) float64 {
	if pricing.Policy == utils.PricingPolicyFlat {
		return pricing.FlatPrice
	}

	if rowIdx < pricing.PremiumRows {
		return pricing.PremiumPrice
	}
	return pricing.StandardPrice
}

// ComputeTotal sums the prices of the selected seats. Deterministic, pure
// function of the current selection; the total is never entered directly.
func ComputeTotal(seats []entity.SeatView) float64 {
	var total float64
	for _, seat := range seats {
		if seat.Selected {
			total += seat.Price
		}
	}
	return total
}

// rowLetter turns a zero-based row index into "A".."Z", "AA".. beyond.
func rowLetter(rowIdx int) string {
	letter := ""
	for {
		letter = string(rune('A'+rowIdx%26)) + letter
		rowIdx = rowIdx/26 - 1
		if rowIdx < 0 {
			break
		}
	}
	return letter
}

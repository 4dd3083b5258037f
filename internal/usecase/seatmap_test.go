package usecase

import (
	"testing"

	"cinemaspot-frontend/internal/data/entity"
	"cinemaspot-frontend/pkg/utils"
)

func testGrid() utils.GridConfig {
	return utils.GridConfig{Rows: 3, Columns: 4}
}

func testPricing() utils.PricingConfig {
	return utils.PricingConfig{
		Policy:        utils.PricingPolicyTiered,
		FlatPrice:     8,
		StandardPrice: 10,
		PremiumPrice:  15,
		PremiumRows:   1,
	}
}

func TestBuildSeatMapPositions(t *testing.T) {
	seats := []*entity.Seat{
		{ID: "s5", SeatNumber: 5, IsAvailable: true, RoomID: "r1"},
		{ID: "s1", SeatNumber: 1, IsAvailable: true, RoomID: "r1"},
		{ID: "s4", SeatNumber: 4, IsAvailable: false, RoomID: "r1"},
	}

	views := BuildSeatMap(seats, testGrid(), testPricing())

	if len(views) != 3 {
		t.Fatalf("expected 3 views, got %d", len(views))
	}

	// Sorted by seat number
	if views[0].Number != 1 || views[1].Number != 4 || views[2].Number != 5 {
		t.Fatalf("views not sorted by seat number: %+v", views)
	}

	// 4 columns per row: seat 1 -> A1, seat 4 -> A4, seat 5 -> B1
	cases := []struct {
		idx    int
		row    string
		column int
	}{
		{0, "A", 1},
		{1, "A", 4},
		{2, "B", 1},
	}
	for _, c := range cases {
		if views[c.idx].Row != c.row || views[c.idx].Column != c.column {
			t.Errorf("seat %d: got %s%d, want %s%d",
				views[c.idx].Number, views[c.idx].Row, views[c.idx].Column, c.row, c.column)
		}
	}

	if views[1].Available {
		t.Error("seat 4 should be unavailable")
	}
}

func TestBuildSeatMapOutOfGrid(t *testing.T) {
	// 3 rows x 4 columns = 12 positions; seat 13 falls outside
	seats := []*entity.Seat{
		{ID: "s12", SeatNumber: 12, IsAvailable: true},
		{ID: "s13", SeatNumber: 13, IsAvailable: true},
	}

	views := BuildSeatMap(seats, testGrid(), testPricing())

	if views[0].OutOfGrid {
		t.Error("seat 12 is the last grid position and must not be flagged")
	}
	if !views[1].OutOfGrid {
		t.Error("seat 13 must be flagged out-of-grid, not collapsed onto the last row")
	}
	if views[1].Row != "" || views[1].Price != 0 {
		t.Errorf("out-of-grid seat must carry no position or price, got %+v", views[1])
	}
}

func TestSeatPricePolicies(t *testing.T) {
	pricing := testPricing()

	if got := SeatPrice(0, pricing); got != 15 {
		t.Errorf("front row tiered price = %v, want 15", got)
	}
	if got := SeatPrice(1, pricing); got != 10 {
		t.Errorf("back row tiered price = %v, want 10", got)
	}

	pricing.Policy = utils.PricingPolicyFlat
	if got := SeatPrice(0, pricing); got != 8 {
		t.Errorf("flat price = %v, want 8", got)
	}
	if got := SeatPrice(5, pricing); got != 8 {
		t.Errorf("flat price must not depend on row, got %v", got)
	}
}

func TestComputeTotal(t *testing.T) {
	seats := []entity.SeatView{
		{ID: "a", Price: 15, Selected: true},
		{ID: "b", Price: 10, Selected: false},
		{ID: "c", Price: 10, Selected: true},
	}

	if got := ComputeTotal(seats); got != 25 {
		t.Fatalf("total = %v, want 25", got)
	}

	// Toggling one off decreases the total by exactly that seat's price
	seats[2].Selected = false
	if got := ComputeTotal(seats); got != 15 {
		t.Fatalf("total after deselect = %v, want 15", got)
	}

	if got := ComputeTotal(nil); got != 0 {
		t.Fatalf("empty selection total = %v, want 0", got)
	}
}

func TestRowLetter(t *testing.T) {
	cases := map[int]string{0: "A", 1: "B", 25: "Z", 26: "AA", 27: "AB"}
	for idx, want := range cases {
		if got := rowLetter(idx); got != want {
			t.Errorf("rowLetter(%d) = %s, want %s", idx, got, want)
		}
	}
}

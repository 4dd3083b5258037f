package store

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"cinemaspot-frontend/internal/data/entity"
	"cinemaspot-frontend/pkg/utils"

	"go.uber.org/zap"
)

func newTestStore() *SessionStore {
	return NewSessionStore(NewMemoryBackend(), utils.SessionConfig{
		CookieName: "csf_session",
		AuthTTL:    time.Hour,
		DraftTTL:   time.Hour,
	}, zap.NewNop())
}

func sampleDraft() *entity.ReservationDraft {
	return &entity.ReservationDraft{
		Movie:    &entity.Movie{ID: "m1", Title: "Arrival"},
		Showtime: &entity.Showtime{ID: "st1", MovieID: "m1", RoomID: "r1", StartTime: "18:00"},
		Seats: []entity.SelectedSeat{
			{ID: "s1", Number: 1, Label: "A1", Price: 15},
			{ID: "s3", Number: 3, Label: "A3", Price: 15},
		},
		Price: 30,
	}
}

func TestLoadUnknownSessionIsEmpty(t *testing.T) {
	s := newTestStore()

	sess, err := s.Load(context.Background(), "fresh")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if sess.Auth.Logged || sess.Booking != nil || sess.Reservation != nil {
		t.Fatalf("fresh session not empty: %+v", sess)
	}
}

// setReservation followed by a reload restores exactly what was written.
func TestReservationRoundTrip(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	sess := &Session{ID: "sid"}
	draft := sampleDraft()

	if err := s.SetReservation(ctx, sess, draft); err != nil {
		t.Fatalf("SetReservation: %v", err)
	}

	reloaded, err := s.Load(ctx, "sid")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !reflect.DeepEqual(reloaded.Reservation, draft) {
		t.Fatalf("round-trip mismatch:\n got %+v\nwant %+v", reloaded.Reservation, draft)
	}
}

// resetReservation followed by a reload yields an empty reservation.
func TestResetReservation(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	sess := &Session{
		ID: "sid",
		Booking: &BookingState{
			Movie: &entity.Movie{ID: "m1"},
			Seats: []entity.SeatView{
				{ID: "s1", Selected: true},
				{ID: "s2", Selected: true},
			},
		},
	}
	if err := s.SetReservation(ctx, sess, sampleDraft()); err != nil {
		t.Fatalf("SetReservation: %v", err)
	}

	if err := s.ResetReservation(ctx, sess); err != nil {
		t.Fatalf("ResetReservation: %v", err)
	}

	reloaded, err := s.Load(ctx, "sid")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if reloaded.Reservation != nil {
		t.Fatalf("residual reservation after reset: %+v", reloaded.Reservation)
	}
	if got := len(reloaded.Booking.SelectedSeats()); got != 0 {
		t.Fatalf("residual selection after reset: %d seats", got)
	}
}

// Every write replaces the draft wholesale; nothing merges.
func TestSetReservationReplaces(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	sess := &Session{ID: "sid"}
	if err := s.SetReservation(ctx, sess, sampleDraft()); err != nil {
		t.Fatalf("SetReservation: %v", err)
	}

	second := &entity.ReservationDraft{
		Movie:    &entity.Movie{ID: "m2", Title: "Dune"},
		Showtime: &entity.Showtime{ID: "st9", MovieID: "m2", RoomID: "r2"},
		Seats:    []entity.SelectedSeat{{ID: "s7", Number: 7, Label: "A7", Price: 15}},
		Price:    15,
	}
	if err := s.SetReservation(ctx, sess, second); err != nil {
		t.Fatalf("SetReservation: %v", err)
	}

	reloaded, _ := s.Load(ctx, "sid")
	if !reflect.DeepEqual(reloaded.Reservation, second) {
		t.Fatalf("second write did not replace the first: %+v", reloaded.Reservation)
	}
}

func TestAuthStatePersists(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	sess := &Session{ID: "sid"}
	user := &entity.User{ID: "u1", Email: "ada@example.com", Role: entity.RoleAdmin}

	if err := s.SetAuth(ctx, sess, "tok-abc", user); err != nil {
		t.Fatalf("SetAuth: %v", err)
	}

	reloaded, _ := s.Load(ctx, "sid")
	if !reloaded.Auth.Logged || reloaded.Auth.Token != "tok-abc" {
		t.Fatalf("auth state lost: %+v", reloaded.Auth)
	}
	if !reloaded.Auth.User.IsAdmin() {
		t.Error("user role lost in round-trip")
	}

	if err := s.ClearAuth(ctx, sess); err != nil {
		t.Fatalf("ClearAuth: %v", err)
	}

	reloaded, _ = s.Load(ctx, "sid")
	if reloaded.Auth.Logged || reloaded.Auth.Token != "" {
		t.Fatalf("auth state survived logout: %+v", reloaded.Auth)
	}
}

// Auth and draft slices are independent keys: logging out keeps the draft.
func TestAuthAndDraftAreIndependent(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	sess := &Session{ID: "sid"}
	if err := s.SetAuth(ctx, sess, "tok", &entity.User{ID: "u1"}); err != nil {
		t.Fatalf("SetAuth: %v", err)
	}
	if err := s.SetReservation(ctx, sess, sampleDraft()); err != nil {
		t.Fatalf("SetReservation: %v", err)
	}

	if err := s.ClearAuth(ctx, sess); err != nil {
		t.Fatalf("ClearAuth: %v", err)
	}

	reloaded, _ := s.Load(ctx, "sid")
	if reloaded.Auth.Logged {
		t.Error("auth must be cleared")
	}
	if reloaded.Reservation == nil {
		t.Error("draft must survive a logout")
	}
}

func TestMemoryBackendTTL(t *testing.T) {
	b := NewMemoryBackend()
	ctx := context.Background()

	if err := b.Set(ctx, "k", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if _, err := b.Get(ctx, "k"); err != nil {
		t.Fatalf("Get before expiry: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	if _, err := b.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after expiry, got %v", err)
	}
}

func TestMemoryBackendCopies(t *testing.T) {
	b := NewMemoryBackend()
	ctx := context.Background()

	value := []byte("original")
	if err := b.Set(ctx, "k", value, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value[0] = 'X'

	got, err := b.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "original" {
		t.Fatalf("stored value aliased caller slice: %q", got)
	}
}

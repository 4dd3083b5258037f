package usecase

import (
	"context"
	"fmt"

	"cinemaspot-frontend/internal/data/apiclient"
	"cinemaspot-frontend/internal/data/entity"
	"cinemaspot-frontend/internal/dto/response"
	"cinemaspot-frontend/internal/store"
	"cinemaspot-frontend/pkg/utils"

	"go.uber.org/zap"
)

type ReservationService interface {
	Summary(sess *store.Session) (*response.Summary, error)
	Submit(ctx context.Context, sess *store.Session) (*response.SubmitResult, error)
	Cancel(ctx context.Context, sess *store.Session) error
	UserReservations(ctx context.Context, sess *store.Session) ([]*entity.ReservationView, error)
	Ticket(ctx context.Context, sess *store.Session, reservationID string) ([]byte, error)
}

type reservationService struct {
	api      *apiclient.API
	sessions *store.SessionStore
	log      *zap.Logger
}

func NewReservationService(
	api *apiclient.API,
	sessions *store.SessionStore,
	log *zap.Logger,
) ReservationService {
	return &reservationService{
		api:      api,
		sessions: sessions,
		log:      log.With(zap.String("service", "reservation")),
	}
}

// Summary reads the reservation draft for the confirmation page.
func (s *reservationService) Summary(sess *store.Session) (*response.Summary, error) {
	if sess.Reservation == nil {
		return nil, ErrNoReservation
	}
	return response.DraftToSummary(sess.Reservation), nil
}

// Submit creates the reservation upstream, then marks each seat taken one by
// one, tracking failures per seat. There is no shared transaction upstream;
// instead of silent best-effort the result names exactly which seats failed.
// The draft is cleared once the reservation itself is created.
func (s *reservationService) Submit(ctx context.Context, sess *store.Session) (*response.SubmitResult, error) {
	if !sess.Auth.Logged || sess.Auth.User == nil {
		return nil, ErrLoginRequired
	}

	draft := sess.Reservation
	if draft == nil {
		return nil, ErrNoReservation
	}

	seatIDs := make([]string, len(draft.Seats))
	for i, seat := range draft.Seats {
		seatIDs[i] = seat.ID
	}

	reservation, err := s.api.Reservation.Create(ctx, sess.Auth.Token, sess.Auth.User.ID, draft.Showtime.ID, seatIDs)
	if err != nil {
		s.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("user_id", sess.Auth.User.ID),
			zap.String("showtime_id", draft.Showtime.ID))
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	result := &response.SubmitResult{ReservationID: reservation.ID}
	for _, seat := range draft.Seats {
		if err := s.api.Seat.UpdateAvailability(ctx, sess.Auth.Token, seat.ID, false); err != nil {
			s.log.Warn("Seat availability update failed",
				zap.Error(err),
				zap.String("seat_id", seat.ID),
				zap.String("reservation_id", reservation.ID))
			result.SeatsFailed = append(result.SeatsFailed, seat.Label)
			continue
		}
		result.SeatsBooked = append(result.SeatsBooked, seat.Label)
	}

	// The reservation exists upstream either way; clear the draft so the
	// flow cannot be resubmitted.
	if err := s.sessions.ResetReservation(ctx, sess); err != nil {
		s.log.Warn("Failed to clear reservation draft", zap.Error(err), zap.String("session_id", sess.ID))
	}

	s.log.Info("Reservation submitted",
		zap.String("reservation_id", reservation.ID),
		zap.Int("seats_booked", len(result.SeatsBooked)),
		zap.Int("seats_failed", len(result.SeatsFailed)))

	return result, nil
}

// Cancel drops the in-progress reservation.
func (s *reservationService) Cancel(ctx context.Context, sess *store.Session) error {
	return s.sessions.ResetReservation(ctx, sess)
}

func (s *reservationService) UserReservations(ctx context.Context, sess *store.Session) ([]*entity.ReservationView, error) {
	if !sess.Auth.Logged || sess.Auth.User == nil {
		return nil, ErrLoginRequired
	}

	reservations, err := s.api.Reservation.FindByUserID(ctx, sess.Auth.Token, sess.Auth.User.ID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	return reservations, nil
}

// Ticket renders a QR code for one of the user's reservations. The lookup
// goes through the user's own listing, so a session can only mint tickets
// for reservations it owns.
func (s *reservationService) Ticket(ctx context.Context, sess *store.Session, reservationID string) ([]byte, error) {
	reservations, err := s.UserReservations(ctx, sess)
	if err != nil {
		return nil, err
	}

	for _, r := range reservations {
		if r.ID != reservationID {
			continue
		}

		content := fmt.Sprintf("reservation:%s movie:%s room:%s start:%s",
			r.ID, r.MovieTitle, r.RoomName, r.StartTime)

		png, err := utils.GenerateQRCode(content, 256)
		if err != nil {
			return nil, fmt.Errorf("render ticket: %w", err)
		}
		return png, nil
	}

	return nil, apiclient.ErrNotFound
}

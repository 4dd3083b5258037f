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
	"golang.org/x/sync/errgroup"
)

type BookingService interface {
	LoadMovie(ctx context.Context, sess *store.Session, movieID string) (*response.MoviePage, error)
	SelectShowtime(ctx context.Context, sess *store.Session, showtimeID string) (*response.SeatMapPage, error)
	SeatMap(ctx context.Context, sess *store.Session) (*response.SeatMapPage, error)
	ToggleSeat(ctx context.Context, sess *store.Session, seatID string) (*response.SeatMapPage, error)
	ConfirmSelection(ctx context.Context, sess *store.Session) (*entity.ReservationDraft, error)
}

type bookingService struct {
	api      *apiclient.API
	sessions *store.SessionStore
	config   *utils.Config
	log      *zap.Logger
}

func NewBookingService(
	api *apiclient.API,
	sessions *store.SessionStore,
	config *utils.Config,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		api:      api,
		sessions: sessions,
		config:   config,
		log:      log.With(zap.String("service", "booking")),
	}
}

// LoadMovie fetches the movie and its showtimes concurrently. Either fetch
// failing leaves the page non-actionable. The first showtime is selected by
// default when none is chosen yet.
func (s *bookingService) LoadMovie(ctx context.Context, sess *store.Session, movieID string) (*response.MoviePage, error) {
	var (
		movie     *entity.Movie
		showtimes []*entity.Showtime
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		movie, err = s.api.Movie.FindByID(gCtx, movieID)
		return err
	})

	g.Go(func() error {
		var err error
		showtimes, err = s.api.Showtime.FindByMovieID(gCtx, movieID)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.Error("Failed to load movie page",
			zap.Error(err),
			zap.String("movie_id", movieID))
		return nil, fmt.Errorf("load movie %s: %w", movieID, err)
	}

	// Keep the visitor's active showtime across a reload of the same movie;
	// switching movies starts the flow over.
	active := ""
	if b := sess.Booking; b != nil && b.Movie != nil && b.Movie.ID == movieID && b.Showtime != nil {
		for _, st := range showtimes {
			if st.ID == b.Showtime.ID {
				active = st.ID
				break
			}
		}
	}

	if active == "" {
		sess.Booking = &store.BookingState{Movie: movie}
		if len(showtimes) > 0 {
			sess.Booking.Showtime = showtimes[0]
			active = showtimes[0].ID
		}
		if err := s.sessions.SaveDraft(ctx, sess); err != nil {
			return nil, err
		}
	}

	s.log.Info("Movie page loaded",
		zap.String("movie_id", movieID),
		zap.Int("showtimes", len(showtimes)),
		zap.String("active_showtime", active))

	return &response.MoviePage{
		Movie:            movie,
		Showtimes:        showtimes,
		ActiveShowtimeID: active,
	}, nil
}

// SelectShowtime replaces the active showtime and resets the selection.
// Selection never carries across showtimes: seat identity and layout are
// room-specific.
func (s *bookingService) SelectShowtime(ctx context.Context, sess *store.Session, showtimeID string) (*response.SeatMapPage, error) {
	showtime, err := s.api.Showtime.FindByID(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("resolve showtime %s: %w", showtimeID, err)
	}

	if showtime.RoomID == "" {
		s.log.Warn("Showtime without room", zap.String("showtime_id", showtimeID))
		return nil, ErrRoomUnresolved
	}

	seats, err := s.api.Seat.FindByRoomID(ctx, showtime.RoomID)
	if err != nil {
		return nil, fmt.Errorf("load seats for room %s: %w", showtime.RoomID, err)
	}

	movie := (*entity.Movie)(nil)
	if sess.Booking != nil {
		movie = sess.Booking.Movie
	}
	if movie == nil || movie.ID != showtime.MovieID {
		movie, err = s.api.Movie.FindByID(ctx, showtime.MovieID)
		if err != nil {
			return nil, fmt.Errorf("resolve movie for showtime %s: %w", showtimeID, err)
		}
	}

	sess.Booking = &store.BookingState{
		Movie:    movie,
		Showtime: showtime,
		Seats:    BuildSeatMap(seats, s.config.Grid, s.config.Pricing),
	}

	if err := s.sessions.SaveDraft(ctx, sess); err != nil {
		return nil, err
	}

	s.log.Info("Showtime selected",
		zap.String("showtime_id", showtimeID),
		zap.String("room_id", showtime.RoomID),
		zap.Int("seats", len(seats)))

	return s.page(sess), nil
}

// SeatMap returns the seat-selection page for the active showtime, loading
// the seat snapshot on first visit. A refresh keeps the selection.
func (s *bookingService) SeatMap(ctx context.Context, sess *store.Session) (*response.SeatMapPage, error) {
	b := sess.Booking
	if b == nil || b.Showtime == nil {
		return nil, ErrNoShowtime
	}

	if len(b.Seats) == 0 {
		return s.SelectShowtime(ctx, sess, b.Showtime.ID)
	}

	return s.page(sess), nil
}

// ToggleSeat flips one seat's selection. Unauthenticated sessions get an
// auth prompt instead; unavailable seats are a no-op. The selection set can
// never hold an unavailable seat or a duplicate id.
func (s *bookingService) ToggleSeat(ctx context.Context, sess *store.Session, seatID string) (*response.SeatMapPage, error) {
	if !sess.Auth.Logged {
		return nil, ErrLoginRequired
	}

	b := sess.Booking
	if b == nil || b.Showtime == nil || len(b.Seats) == 0 {
		return nil, ErrNoShowtime
	}

	found := false
	for i := range b.Seats {
		if b.Seats[i].ID != seatID {
			continue
		}
		found = true

		if !b.Seats[i].Available || b.Seats[i].OutOfGrid {
			// no-op: availability is trusted as of last fetch
			return s.page(sess), nil
		}

		b.Seats[i].Selected = !b.Seats[i].Selected
		break
	}

	if !found {
		return nil, ErrSeatUnknown
	}

	if err := s.sessions.SaveDraft(ctx, sess); err != nil {
		return nil, err
	}

	return s.page(sess), nil
}

// ConfirmSelection packages {movie, showtime, seats, price} into the
// reservation draft, replacing any previous draft wholesale. An empty
// selection is a validation error and changes nothing.
func (s *bookingService) ConfirmSelection(ctx context.Context, sess *store.Session) (*entity.ReservationDraft, error) {
	b := sess.Booking
	if b == nil || b.Showtime == nil {
		return nil, ErrNoShowtime
	}

	selected := b.SelectedSeats()
	if len(selected) == 0 {
		return nil, ErrNoSeatsSelected
	}

	seats := make([]entity.SelectedSeat, len(selected))
	for i, seat := range selected {
		seats[i] = entity.SelectedSeat{
			ID:     seat.ID,
			Number: seat.Number,
			Label:  seat.Label(),
			Price:  seat.Price,
		}
	}

	draft := &entity.ReservationDraft{
		Movie:    b.Movie,
		Showtime: b.Showtime,
		Seats:    seats,
		Price:    ComputeTotal(b.Seats),
	}

	if err := s.sessions.SetReservation(ctx, sess, draft); err != nil {
		return nil, err
	}

	s.log.Info("Selection confirmed",
		zap.String("showtime_id", b.Showtime.ID),
		zap.Int("seats", len(seats)),
		zap.Float64("price", draft.Price))

	return draft, nil
}

func (s *bookingService) page(sess *store.Session) *response.SeatMapPage {
	b := sess.Booking
	return response.SeatMapToPage(b.Showtime.ID, b.Showtime.RoomID, b.Seats, ComputeTotal(b.Seats))
}

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cinemaspot-frontend/internal/data/entity"
	"cinemaspot-frontend/pkg/utils"

	"go.uber.org/zap"
)

// SessionStore is the serialization boundary between typed session records
// and the persisted backend. Each session is mirrored as two keys so the two
// state slices can carry different lifetimes:
//
//	auth:<id>  holds token + user      (long TTL)
//	draft:<id> holds booking + draft   (short TTL)
//
// Every write is a full overwrite of its slice; no partial update exists, so
// a reservation can never hold a movie from one write and seats from another.
type SessionStore struct {
	backend Backend
	cfg     utils.SessionConfig
	log     *zap.Logger
}

func NewSessionStore(backend Backend, cfg utils.SessionConfig, log *zap.Logger) *SessionStore {
	return &SessionStore{
		backend: backend,
		cfg:     cfg,
		log:     log.With(zap.String("component", "session-store")),
	}
}

// Load materializes the session for an id. A visitor with no persisted state
// gets an empty session rather than an error.
func (s *SessionStore) Load(ctx context.Context, sessionID string) (*Session, error) {
	sess := &Session{ID: sessionID}

	raw, err := s.backend.Get(ctx, authKey(sessionID))
	switch {
	case errors.Is(err, ErrNotFound):
		// fresh visitor
	case err != nil:
		return nil, fmt.Errorf("load auth state: %w", err)
	default:
		if err := json.Unmarshal(raw, &sess.Auth); err != nil {
			s.log.Warn("Corrupt auth state dropped", zap.String("session_id", sessionID), zap.Error(err))
			sess.Auth = AuthState{}
		}
	}

	raw, err = s.backend.Get(ctx, draftKey(sessionID))
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("load draft state: %w", err)
	default:
		var draft draftRecord
		if err := json.Unmarshal(raw, &draft); err != nil {
			s.log.Warn("Corrupt draft state dropped", zap.String("session_id", sessionID), zap.Error(err))
		} else {
			sess.Booking = draft.Booking
			sess.Reservation = draft.Reservation
		}
	}

	return sess, nil
}

// draftRecord is the persisted shape of the per-tab slice.
type draftRecord struct {
	Booking     *BookingState            `json:"booking,omitempty"`
	Reservation *entity.ReservationDraft `json:"reservation,omitempty"`
}

// SaveAuth overwrites the persisted auth slice.
func (s *SessionStore) SaveAuth(ctx context.Context, sess *Session) error {
	raw, err := json.Marshal(sess.Auth)
	if err != nil {
		return fmt.Errorf("encode auth state: %w", err)
	}

	if err := s.backend.Set(ctx, authKey(sess.ID), raw, s.cfg.AuthTTL); err != nil {
		return fmt.Errorf("persist auth state: %w", err)
	}

	return nil
}

// SaveDraft overwrites the persisted booking + reservation slice.
func (s *SessionStore) SaveDraft(ctx context.Context, sess *Session) error {
	raw, err := json.Marshal(draftRecord{Booking: sess.Booking, Reservation: sess.Reservation})
	if err != nil {
		return fmt.Errorf("encode draft state: %w", err)
	}

	if err := s.backend.Set(ctx, draftKey(sess.ID), raw, s.cfg.DraftTTL); err != nil {
		return fmt.Errorf("persist draft state: %w", err)
	}

	return nil
}

// SetAuth records a successful login.
func (s *SessionStore) SetAuth(ctx context.Context, sess *Session, token string, user *entity.User) error {
	sess.Auth = AuthState{Logged: true, Token: token, User: user}
	return s.SaveAuth(ctx, sess)
}

// ClearAuth logs the session out.
func (s *SessionStore) ClearAuth(ctx context.Context, sess *Session) error {
	sess.Auth = AuthState{}
	if err := s.backend.Delete(ctx, authKey(sess.ID)); err != nil {
		return fmt.Errorf("clear auth state: %w", err)
	}
	return nil
}

// SetReservation replaces the reservation draft wholesale.
func (s *SessionStore) SetReservation(ctx context.Context, sess *Session, draft *entity.ReservationDraft) error {
	sess.Reservation = draft
	return s.SaveDraft(ctx, sess)
}

// ResetReservation clears the draft and the seat selection behind it, both
// in memory and in the backend.
func (s *SessionStore) ResetReservation(ctx context.Context, sess *Session) error {
	sess.Reservation = nil
	sess.Booking.ClearSelection()
	return s.SaveDraft(ctx, sess)
}

func authKey(sessionID string) string {
	return "auth:" + sessionID
}

func draftKey(sessionID string) string {
	return "draft:" + sessionID
}

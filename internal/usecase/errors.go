package usecase

import "errors"

var (
	// ErrLoginRequired gates actions that need an authenticated session.
	ErrLoginRequired = errors.New("login required")
	// ErrAdminRequired gates the back-office operations.
	ErrAdminRequired = errors.New("admin access required")
	// ErrNoShowtime means the booking flow has no active showtime yet.
	ErrNoShowtime = errors.New("no showtime selected")
	// ErrRoomUnresolved marks a showtime without a resolvable room; it is a
	// hard error for that showtime only.
	ErrRoomUnresolved = errors.New("showtime has no resolvable room")
	// ErrSeatUnknown means the toggled seat is not part of the loaded map.
	ErrSeatUnknown = errors.New("unknown seat")
	// ErrNoSeatsSelected rejects confirming an empty selection.
	ErrNoSeatsSelected = errors.New("no seats selected")
	// ErrNoReservation means the confirmation page has nothing to show.
	ErrNoReservation = errors.New("no reservation in progress")
	// ErrUnknownResource rejects admin calls for resources outside the registry.
	ErrUnknownResource = errors.New("unknown admin resource")
)

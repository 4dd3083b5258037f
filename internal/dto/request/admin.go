package request

// Typed payloads for the admin resources whose shape the storefront knows.
// The remaining resources pass through as raw JSON; the upstream validates.

type MovieRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required"`
	Poster      string `json:"poster" validate:"omitempty,url"`
	Banner      string `json:"banner" validate:"omitempty,url"`
	Category    string `json:"category" validate:"required"`
	Duration    string `json:"duration" validate:"required"`
	Rating      string `json:"rating" validate:"required"`
	Director    string `json:"director" validate:"required"`
}

type ShowtimeRequest struct {
	MovieID   string `json:"movie" validate:"required"`
	RoomID    string `json:"room" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	IsFull    bool   `json:"is_full"`
}

type RoomRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

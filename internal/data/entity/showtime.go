package entity

// Showtime belongs to exactly one room. Start/end times are kept as the
// upstream's string encoding and never parsed to a temporal type.
type Showtime struct {
	ID        string `json:"id"`
	MovieID   string `json:"movie"`
	RoomID    string `json:"room"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsFull    bool   `json:"is_full"`
}

type Room struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

package entity

// Movie mirrors the upstream API resource. Immutable from the storefront's
// point of view during the reservation flow.
type Movie struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Poster      string `json:"poster"`
	Banner      string `json:"banner"`
	Category    string `json:"category"`
	Duration    string `json:"duration"`
	Rating      string `json:"rating"`
	Director    string `json:"director"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Actor struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Biography string `json:"biography,omitempty"`
}

// CastMember links an actor to a movie (movie-cast resource).
type CastMember struct {
	ID        string `json:"id"`
	MovieID   string `json:"movie"`
	ActorID   string `json:"actor"`
	Character string `json:"character,omitempty"`
}

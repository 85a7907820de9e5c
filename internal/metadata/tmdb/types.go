// Package tmdb provides a rate-limited client for The Movie Database API.
package tmdb

// Movie is a catalog entry as TMDB returns it. The service treats it as an
// opaque pass-through record; only ID is read when chaining lookups.
type Movie struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title,omitempty"`
	OriginalLanguage string  `json:"original_language,omitempty"`
	Overview         string  `json:"overview,omitempty"`
	PosterPath       string  `json:"poster_path,omitempty"`
	BackdropPath     string  `json:"backdrop_path,omitempty"`
	ReleaseDate      string  `json:"release_date,omitempty"`
	GenreIDs         []int   `json:"genre_ids,omitempty"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	Adult            bool    `json:"adult"`
	Video            bool    `json:"video"`
}

// Person is a cast or crew member from person search.
type Person struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	KnownForDepartment string  `json:"known_for_department,omitempty"`
	ProfilePath        string  `json:"profile_path,omitempty"`
	Popularity         float64 `json:"popularity"`
}

// Keyword is a TMDB keyword from keyword search.
type Keyword struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CastCredit is a movie a person appeared in.
type CastCredit struct {
	Movie
	Character string `json:"character,omitempty"`
}

// CrewCredit is a movie a person worked on behind the camera.
type CrewCredit struct {
	Movie
	Department string `json:"department,omitempty"`
	Job        string `json:"job,omitempty"`
}

// Credits holds a person's movie credits, cast and crew kept separate as
// the API returns them.
type Credits struct {
	Cast []CastCredit `json:"cast"`
	Crew []CrewCredit `json:"crew"`
}

// moviePage is the raw paged response most movie endpoints share.
type moviePage struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// personPage is the raw response from person search.
type personPage struct {
	Page    int      `json:"page"`
	Results []Person `json:"results"`
}

// keywordPage is the raw response from keyword search.
type keywordPage struct {
	Page    int       `json:"page"`
	Results []Keyword `json:"results"`
}

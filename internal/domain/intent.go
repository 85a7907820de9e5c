// Package domain defines the core types shared across the Binaried services.
package domain

// IntentType classifies what kind of catalog lookup the user is asking for.
type IntentType string

// Recognized intent types. Anything else is coerced to IntentTopRated.
const (
	IntentSimilar   IntentType = "similar"
	IntentGenre     IntentType = "genre"
	IntentTopRated  IntentType = "top_rated"
	IntentTrending  IntentType = "trending"
	IntentActor     IntentType = "actor"
	IntentDirector  IntentType = "director"
	IntentVibe      IntentType = "vibe"
	IntentKeyword   IntentType = "keyword"
	IntentYearRange IntentType = "year_range"
)

// DefaultLimit is the number of movies returned when the caller does not ask
// for a specific count.
const DefaultLimit = 10

// Known reports whether t is one of the recognized intent types.
func (t IntentType) Known() bool {
	switch t {
	case IntentSimilar, IntentGenre, IntentTopRated, IntentTrending,
		IntentActor, IntentDirector, IntentVibe, IntentKeyword, IntentYearRange:
		return true
	}
	return false
}

// YearRange bounds a release-date window. A zero From or To means the bound
// was not supplied and the resolver applies its default.
type YearRange struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Intent is the validated result of interpreting a free-text prompt.
// It lives for a single request: built by the interpreter, consumed by the
// resolver, then discarded.
type Intent struct {
	Type         IntentType `json:"type"`
	MovieTitle   string     `json:"movie,omitempty"`
	GenreOrVibe  string     `json:"genre,omitempty"`
	ActorName    string     `json:"actor,omitempty"`
	DirectorName string     `json:"director,omitempty"`
	Keyword      string     `json:"keyword,omitempty"`
	Years        YearRange  `json:"years,omitempty"`
	Limit        int        `json:"limit"`
}

// FallbackIntent is what interpretation failures collapse into: the safest
// possible answer is a list of well-rated movies.
func FallbackIntent() Intent {
	return Intent{Type: IntentTopRated, Limit: DefaultLimit}
}

// Normalize coerces an intent into a valid state: unknown or empty types
// become top_rated and a non-positive limit becomes DefaultLimit. Other
// fields are kept as supplied.
func (i *Intent) Normalize() {
	if !i.Type.Known() {
		i.Type = IntentTopRated
	}
	if i.Limit <= 0 {
		i.Limit = DefaultLimit
	}
}

// Package genre maps genre names and informal mood phrases onto TMDB genre
// identifiers.
package genre

import "strings"

// TMDB genre identifiers for the vocabulary this service understands.
const (
	Action    = 28
	Animation = 16
	Comedy    = 35
	Crime     = 80
	Horror    = 27
	Romance   = 10749
	SciFi     = 878
	Thriller  = 53
)

// table maps canonical genre names to TMDB identifiers. Loaded once, never
// mutated.
var table = map[string]int{
	"comedy":    Comedy,
	"action":    Action,
	"thriller":  Thriller,
	"horror":    Horror,
	"romance":   Romance,
	"crime":     Crime,
	"animation": Animation,
	"scifi":     SciFi,
}

// fuzzyRule pairs a list of substring triggers with the genre they resolve
// to. Rules are evaluated top-down and the first hit wins, so ordering is
// part of the contract: "dark crime comedy" is a thriller-shaped phrase
// only if the comedy rule did not already claim it.
type fuzzyRule struct {
	triggers []string
	genreID  int
}

var fuzzyRules = []fuzzyRule{
	{[]string{"fun", "laugh", "feel good", "light"}, Comedy},
	{[]string{"sci", "space"}, SciFi},
	{[]string{"thrill", "suspense", "dark", "crime"}, Thriller},
	{[]string{"horror", "scary", "spooky"}, Horror},
	{[]string{"romance", "love", "emotional"}, Romance},
	{[]string{"kids", "family", "animation", "children"}, Animation},
}

// Lookup returns the TMDB identifier for an exact canonical genre name.
func Lookup(name string) (int, bool) {
	id, ok := table[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}

// MapVibe resolves an informal mood or vibe phrase through the ordered
// fuzzy rule list. Returns false when no rule matches.
func MapVibe(phrase string) (int, bool) {
	p := strings.ToLower(phrase)
	if p == "" {
		return 0, false
	}
	for _, rule := range fuzzyRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(p, trigger) {
				return rule.genreID, true
			}
		}
	}
	return 0, false
}

// Resolve maps a genre name or vibe phrase to a TMDB genre identifier,
// trying the exact table first and the fuzzy rules second.
func Resolve(nameOrVibe string) (int, bool) {
	if id, ok := Lookup(nameOrVibe); ok {
		return id, true
	}
	return MapVibe(nameOrVibe)
}

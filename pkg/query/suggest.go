package query

import (
	"sort"

	"github.com/awsf-cli/awsf/internal/models"
	"github.com/pmezard/go-difflib/difflib"
)

const (
	// suggestionCutoff is the minimum similarity ratio (0-1 scale) for a
	// name to qualify as a "did you mean" hint.
	suggestionCutoff = 0.3

	// maxSuggestions caps the hints shown for a failed search.
	maxSuggestions = 3
)

// Suggestion is a near-match for a term that produced no direct hits.
type Suggestion struct {
	Name   string
	Record models.Record
	Ratio  float64
}

// Suggest returns up to three visible names similar to term, best
// first. It only sees the visible set, so disabled services are never
// recommended.
func Suggest(visible models.ResourceCache, term string) []Suggestion {
	var suggestions []Suggestion
	for name, record := range visible {
		ratio := similarityRatio(term, name)
		if ratio >= suggestionCutoff {
			suggestions = append(suggestions, Suggestion{Name: name, Record: record, Ratio: ratio})
		}
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Ratio != suggestions[j].Ratio {
			return suggestions[i].Ratio > suggestions[j].Ratio
		}
		return suggestions[i].Name < suggestions[j].Name
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// similarityRatio scores two strings with the sequence-matcher ratio on
// their characters (2*M/T on a 0-1 scale).
func similarityRatio(a, b string) float64 {
	return difflib.NewMatcher(explode(a), explode(b)).Ratio()
}

func explode(s string) []string {
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return chars
}

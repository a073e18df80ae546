// Package query implements the filter and match pipeline over a loaded
// resource cache. Filtering happens in two stages whose order matters:
// the enabled-services set is applied first, so a disabled service is
// invisible to explicit service filters, substring matches and
// suggestions alike.
package query

import (
	"sort"
	"strings"

	"github.com/awsf-cli/awsf/internal/models"
)

// Match pairs a resource name with its record.
type Match struct {
	Name   string
	Record models.Record
}

// Decision is the terminal outcome of one query invocation.
type Decision int

const (
	// DecisionNoMatch means nothing was visible to search at all.
	DecisionNoMatch Decision = iota
	// DecisionDirectOpen means exactly one record matched.
	DecisionDirectOpen
	// DecisionInteractive means several records matched (or no term was
	// given) and the caller should hand them to the interactive matcher.
	DecisionInteractive
	// DecisionSuggest means no record matched but near-matches exist.
	DecisionSuggest
)

// Result carries the decision plus the data the caller needs to act on
// it: the match set for open/select, or suggestions for the fallback.
type Result struct {
	Decision    Decision
	Matches     []Match
	Suggestions []Suggestion
}

// Visible intersects the cache with the enabled services, then with the
// explicit service filter when one is given.
func Visible(resources models.ResourceCache, enabled map[string]bool, serviceFilter string) models.ResourceCache {
	visible := make(models.ResourceCache)
	for name, record := range resources {
		if !enabled[strings.ToLower(record.Service)] {
			continue
		}
		visible[name] = record
	}

	if serviceFilter == "" {
		return visible
	}

	serviceFilter = strings.ToLower(serviceFilter)
	filtered := make(models.ResourceCache)
	for name, record := range visible {
		if strings.ToLower(record.Service) == serviceFilter {
			filtered[name] = record
		}
	}
	return filtered
}

// Substring returns every visible record whose name contains term,
// case-insensitively, sorted by name.
func Substring(visible models.ResourceCache, term string) []Match {
	term = strings.ToLower(term)
	var matches []Match
	for name, record := range visible {
		if strings.Contains(strings.ToLower(name), term) {
			matches = append(matches, Match{Name: name, Record: record})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Name < matches[j].Name
	})
	return matches
}

// All returns every visible record sorted by name, for interactive mode.
func All(visible models.ResourceCache) []Match {
	return Substring(visible, "")
}

// Run executes one query: filter, substring match, then decide.
// An empty term always resolves to interactive mode over the full
// visible set.
func Run(resources models.ResourceCache, enabled map[string]bool, serviceFilter, term string) Result {
	visible := Visible(resources, enabled, serviceFilter)
	if len(visible) == 0 {
		return Result{Decision: DecisionNoMatch}
	}

	if term == "" {
		return Result{Decision: DecisionInteractive, Matches: All(visible)}
	}

	matches := Substring(visible, term)
	switch len(matches) {
	case 0:
		suggestions := Suggest(visible, term)
		if len(suggestions) == 0 {
			return Result{Decision: DecisionNoMatch}
		}
		return Result{Decision: DecisionSuggest, Suggestions: suggestions}
	case 1:
		return Result{Decision: DecisionDirectOpen, Matches: matches}
	default:
		return Result{Decision: DecisionInteractive, Matches: matches}
	}
}

// Package formatter renders resource records for the interactive
// matcher and prints collection summaries in a tabwriter table.
package formatter

import (
	"fmt"
	"strings"

	"github.com/awsf-cli/awsf/internal/models"
	"github.com/awsf-cli/awsf/pkg/query"
)

// lineSeparator joins the fields of a matcher line. The matcher splits
// on the bare "|" delimiter, so names containing it are not supported.
const lineSeparator = " | "

// ResourceLine formats one record as the single line handed to the
// interactive matcher: name | service | environment | url.
func ResourceLine(name string, record models.Record) string {
	return strings.Join([]string{
		name,
		models.DisplayNameFor(record),
		query.EnvironmentTag(name),
		record.URL,
	}, lineSeparator)
}

// MatchLines formats a match set, preserving its order.
func MatchLines(matches []query.Match) []string {
	lines := make([]string, 0, len(matches))
	for _, match := range matches {
		lines = append(lines, ResourceLine(match.Name, match.Record))
	}
	return lines
}

// ParsedLine is a matcher line split back into its fields.
type ParsedLine struct {
	Name           string
	ServiceDisplay string
	Environment    string
	URL            string
}

// ParseResourceLine recovers the fields from a selected matcher line.
func ParseResourceLine(line string) (ParsedLine, error) {
	parts := strings.Split(line, lineSeparator)
	if len(parts) < 4 {
		return ParsedLine{}, fmt.Errorf("malformed selection: %q", line)
	}
	return ParsedLine{
		Name:           parts[0],
		ServiceDisplay: parts[1],
		Environment:    parts[2],
		URL:            parts[3],
	}, nil
}

package formatter

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/awsf-cli/awsf/internal/models"
	"github.com/awsf-cli/awsf/pkg/query"
)

var envColors = map[string]*color.Color{
	query.EnvProd:  color.New(color.FgGreen),
	query.EnvStage: color.New(color.FgYellow),
	query.EnvDev:   color.New(color.FgBlue),
	query.EnvTest:  color.New(color.FgMagenta),
	query.EnvOther: color.New(color.FgWhite),
}

// ColoredEnvironmentTag renders an environment tag in its conventional
// color (green PROD, yellow STAGE, blue DEV, magenta TEST).
func ColoredEnvironmentTag(tag string) string {
	if c, ok := envColors[tag]; ok {
		return c.Sprint(tag)
	}
	return tag
}

// PrintOpening announces which record is being opened in the console.
func PrintOpening(w io.Writer, name string, record models.Record) {
	fmt.Fprintf(w, "Opening %s (%s) %s in AWS Console\n",
		name, models.DisplayNameFor(record), ColoredEnvironmentTag(query.EnvironmentTag(name)))
}

// PrintSuggestions lists "did you mean" hints for a failed search.
func PrintSuggestions(w io.Writer, suggestions []query.Suggestion) {
	fmt.Fprintln(w, "Did you mean:")
	for _, s := range suggestions {
		fmt.Fprintf(w, "  - %s (%s)\n", s.Name, models.DisplayNameFor(s.Record))
	}
}

// PrintNoMatch reports a search with no direct hits.
func PrintNoMatch(w io.Writer, term, serviceFilter string) {
	if serviceFilter != "" {
		fmt.Fprintf(w, "No %s resources found matching: %q\n", models.ServiceDisplayName(serviceFilter), term)
		return
	}
	fmt.Fprintf(w, "No resources found matching: %q\n", term)
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/awsf-cli/awsf/internal/models"
	"github.com/awsf-cli/awsf/internal/version"
	"github.com/awsf-cli/awsf/pkg/cache"
	"github.com/awsf-cli/awsf/pkg/finder"
	"github.com/awsf-cli/awsf/pkg/formatter"
	"github.com/awsf-cli/awsf/pkg/menu"
	"github.com/awsf-cli/awsf/pkg/query"
	"github.com/awsf-cli/awsf/pkg/store"
)

// staleAfter is when the query side starts nudging for a re-collect.
const staleAfter = 7 * 24 * time.Hour

var (
	openSettings bool
	openConfig   bool
	showVersion  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "awsf [service] [term...]",
		Short: "Fuzzy search for AWS resources",
		Long: `awsf searches the resource cache written by awsf-collect and opens
the selected resource in the AWS console.

When the first argument names a service (lambda, s3, sqs, kinesis,
dynamodb, rds, apigateway) the search is scoped to it; the remaining
arguments form the search term. With no term, awsf hands every visible
resource to fzf for interactive selection.`,
		Example: `  awsf                      # interactive mode, all services
  awsf lambda payment       # search Lambda functions for "payment"
  awsf s3 media             # search S3 buckets for "media"
  awsf payment              # search all services for "payment"
  awsf --settings           # toggle services, view settings
  awsf --config             # edit region, profile, console URL`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Printf("awsf version %s\n", version.String())
				return nil
			}
			return run(args)
		},
	}

	rootCmd.Flags().BoolVarP(&openSettings, "settings", "s", false, "Open the settings menu")
	rootCmd.Flags().BoolVarP(&openConfig, "config", "c", false, "Edit region, profile and console URL")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(args []string) error {
	st, err := store.NewDefault()
	if err != nil {
		return err
	}
	cachePath, err := store.DefaultCachePath()
	if err != nil {
		return err
	}

	if openSettings {
		return menu.New(os.Stdin, os.Stdout, st, cachePath).RunSettings()
	}
	if openConfig {
		return menu.New(os.Stdin, os.Stdout, st, cachePath).RunConfigEditor()
	}

	settings, err := st.LoadSettings()
	if err != nil {
		return err
	}

	serviceFilter, term := parseQueryArgs(args)

	// A disabled service is invisible everywhere, including explicit
	// service-scoped queries.
	if serviceFilter != "" && !settings.IsEnabled(serviceFilter) {
		fmt.Printf("Service %q is disabled in settings.\n", serviceFilter)
		fmt.Println("Use 'awsf --settings' to enable it, or search the enabled services.")
		return nil
	}

	resources := loadCache(cachePath)
	if age, ok := cache.Age(cachePath); ok && age > staleAfter {
		fmt.Printf("Note: resource cache was written %s. Run 'awsf-collect' to refresh.\n",
			humanize.Time(time.Now().Add(-age)))
	}

	return executeQuery(resources, settings, serviceFilter, term, true)
}

// loadCache reports missing or corrupt caches and degrades to an empty
// set; the search then simply finds nothing.
func loadCache(path string) models.ResourceCache {
	resources, err := cache.Load(path)
	if err != nil {
		switch {
		case errors.Is(err, cache.ErrNotFound):
			fmt.Println("No resource cache found.")
		case errors.Is(err, cache.ErrCorrupt):
			fmt.Println("Resource cache is not valid JSON.")
		default:
			fmt.Println(err)
		}
		fmt.Println("Run 'awsf-collect' to build the cache.")
		return models.ResourceCache{}
	}
	return resources
}

// parseQueryArgs splits the positional args into an optional service
// scope and the search term.
func parseQueryArgs(args []string) (serviceFilter, term string) {
	if len(args) == 0 {
		return "", ""
	}
	first := strings.ToLower(args[0])
	if models.IsValidService(first) {
		return first, strings.Join(args[1:], " ")
	}
	return "", strings.Join(args, " ")
}

func executeQuery(resources models.ResourceCache, settings models.Settings, serviceFilter, term string, allowManual bool) error {
	result := query.Run(resources, settings.EnabledSet(), serviceFilter, term)

	switch result.Decision {
	case query.DecisionNoMatch:
		if term == "" {
			if serviceFilter != "" {
				fmt.Printf("No %s resources found.\n", models.ServiceDisplayName(serviceFilter))
			} else {
				fmt.Println("No AWS resources found.")
			}
			return nil
		}
		formatter.PrintNoMatch(os.Stdout, term, serviceFilter)
		return nil

	case query.DecisionSuggest:
		formatter.PrintNoMatch(os.Stdout, term, serviceFilter)
		formatter.PrintSuggestions(os.Stdout, result.Suggestions)
		return nil

	case query.DecisionDirectOpen:
		return openMatch(result.Matches[0])

	default:
		return interactiveSelect(result.Matches, resources, settings, serviceFilter, term, allowManual)
	}
}

// openMatch opens the single match in the console, falling back to the
// clipboard when no URL handler is available.
func openMatch(match query.Match) error {
	if match.Record.URL == "" {
		fmt.Printf("No console URL available for %s\n", match.Name)
		return nil
	}
	if err := finder.OpenURL(match.Record.URL); err != nil {
		if copyErr := finder.CopyText(match.Record.URL); copyErr == nil {
			fmt.Printf("Could not open a browser; copied URL for %s to clipboard\n", match.Name)
			return nil
		}
		return fmt.Errorf("error opening %s: %w", match.Name, err)
	}
	formatter.PrintOpening(os.Stdout, match.Name, match.Record)
	return nil
}

func interactiveSelect(matches []query.Match, resources models.ResourceCache, settings models.Settings, serviceFilter, term string, allowManual bool) error {
	matcher := finder.NewFzfMatcher()
	if !matcher.Available() {
		fmt.Println(finder.ErrMatcherNotFound)
		if allowManual && term == "" {
			return manualSearch(resources, settings, serviceFilter)
		}
		return nil
	}

	opts := finder.Options{
		Header: "Search AWS resources (Enter=Open, Ctrl-C=Copy URL)",
		Prompt: "Search: ",
	}
	if serviceFilter != "" {
		opts.Header = fmt.Sprintf("Search %s resources (Enter=Open, Ctrl-C=Copy URL)", models.ServiceDisplayName(serviceFilter))
	}
	if term != "" {
		opts.Header = fmt.Sprintf("Found %d matches for %q - select one", len(matches), term)
		opts.Prompt = "Select: "
	}

	line, outcome, err := matcher.Present(formatter.MatchLines(matches), opts)
	if err != nil {
		return err
	}

	switch outcome {
	case finder.OutcomeSelected:
		parsed, err := formatter.ParseResourceLine(line)
		if err != nil {
			return err
		}
		if record, ok := resources[parsed.Name]; ok {
			return openMatch(query.Match{Name: parsed.Name, Record: record})
		}
		return openMatch(query.Match{Name: parsed.Name, Record: models.Record{URL: parsed.URL}})
	case finder.OutcomeCopied:
		fmt.Println("URL copied to clipboard")
		return nil
	default:
		fmt.Println("Search cancelled")
		return nil
	}
}

// manualSearch is the single-prompt fallback when fzf is missing.
func manualSearch(resources models.ResourceCache, settings models.Settings, serviceFilter string) error {
	fmt.Print("Enter search term: ")
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return nil
	}
	term := strings.TrimSpace(scanner.Text())
	if term == "" {
		return nil
	}
	return executeQuery(resources, settings, serviceFilter, term, false)
}

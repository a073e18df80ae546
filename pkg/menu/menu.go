// Package menu implements the interactive settings and config flows
// reached through the --settings and --config flags.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/awsf-cli/awsf/internal/models"
	"github.com/awsf-cli/awsf/pkg/cache"
	"github.com/awsf-cli/awsf/pkg/store"
	"github.com/awsf-cli/awsf/pkg/utils"
)

// Menu drives the prompt loops. Reader and writer are injected so the
// flows are testable without a terminal.
type Menu struct {
	in        *bufio.Scanner
	out       io.Writer
	store     *store.Store
	cachePath string
}

// New creates a menu bound to a store and the resource cache location.
func New(in io.Reader, out io.Writer, st *store.Store, cachePath string) *Menu {
	return &Menu{
		in:        bufio.NewScanner(in),
		out:       out,
		store:     st,
		cachePath: cachePath,
	}
}

// RunSettings shows the top-level settings menu until the user leaves.
func (m *Menu) RunSettings() error {
	for {
		fmt.Fprintln(m.out, "\nawsf settings")
		fmt.Fprintln(m.out, "  1. Toggle services")
		fmt.Fprintln(m.out, "  2. View current settings")
		fmt.Fprintln(m.out, "  3. Back")

		choice, ok := m.prompt("Select option (1-3): ")
		if !ok {
			return nil
		}
		switch choice {
		case "1":
			if err := m.toggleServices(); err != nil {
				return err
			}
		case "2":
			if err := m.showSettings(); err != nil {
				return err
			}
		case "3", "":
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option.")
		}
	}
}

// toggleServices lets the user flip services on and off, then saves.
// Saving an empty selection re-enables everything: a settings file that
// hides every service would make every search come back empty.
func (m *Menu) toggleServices() error {
	settings, err := m.store.LoadSettings()
	if err != nil {
		return err
	}
	enabled := settings.EnabledSet()

	for {
		fmt.Fprintln(m.out, "\nService toggles")
		for i, tag := range models.ServiceTags {
			mark := " "
			if enabled[tag] {
				mark = "x"
			}
			fmt.Fprintf(m.out, "  %d. [%s] %s\n", i+1, mark, models.ServiceDisplayName(tag))
		}
		total := len(models.ServiceTags)
		fmt.Fprintf(m.out, "  %d. Toggle all\n", total+1)
		fmt.Fprintf(m.out, "  %d. Save & back\n", total+2)

		input, ok := m.prompt(fmt.Sprintf("Select (1-%d): ", total+2))
		if !ok {
			return nil
		}
		choice, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(m.out, "Please enter a number.")
			continue
		}

		switch {
		case choice >= 1 && choice <= total:
			tag := models.ServiceTags[choice-1]
			enabled[tag] = !enabled[tag]
		case choice == total+1:
			allOn := len(enabledTags(enabled)) == total
			for _, tag := range models.ServiceTags {
				enabled[tag] = !allOn
			}
		case choice == total+2:
			tags := enabledTags(enabled)
			if len(tags) == 0 {
				fmt.Fprintln(m.out, "Warning: no services enabled, enabling all.")
				tags = models.DefaultSettings().EnabledServices
			}
			if err := m.store.SaveSettings(models.Settings{EnabledServices: tags}); err != nil {
				return err
			}
			fmt.Fprintln(m.out, "Settings saved.")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option.")
		}
	}
}

// showSettings prints the enabled services, the connection config and
// how much of the cache is currently visible.
func (m *Menu) showSettings() error {
	settings, err := m.store.LoadSettings()
	if err != nil {
		return err
	}
	config, err := m.store.LoadConfig()
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "\nEnabled services:")
	for _, tag := range models.ServiceTags {
		mark := " "
		if settings.IsEnabled(tag) {
			mark = "x"
		}
		fmt.Fprintf(m.out, "  [%s] %s\n", mark, models.ServiceDisplayName(tag))
	}

	profile := config.Profile()
	if profile == "" {
		profile = "default"
	}
	fmt.Fprintln(m.out, "\nConfiguration:")
	fmt.Fprintf(m.out, "  Region:      %s (%s)\n", config.AWSRegion, utils.RegionDescriptiveName(config.AWSRegion))
	fmt.Fprintf(m.out, "  Profile:     %s\n", profile)
	fmt.Fprintf(m.out, "  Console URL: %s\n", config.ConsoleBaseURL)

	if resources, err := cache.Load(m.cachePath); err == nil {
		enabled := settings.EnabledSet()
		visible := 0
		for _, record := range resources {
			if enabled[record.Service] {
				visible++
			}
		}
		fmt.Fprintf(m.out, "\nResources: %d/%d available\n", visible, len(resources))
	}
	return nil
}

// RunConfigEditor prompts for each config value; an empty answer keeps
// the current one, except the profile where empty switches back to the
// default credential chain.
func (m *Menu) RunConfigEditor() error {
	config, err := m.store.LoadConfig()
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "\nConfiguration editor")

	fmt.Fprintf(m.out, "Current AWS region: %s\n", config.AWSRegion)
	if region, _ := m.prompt("New region (empty to keep): "); region != "" {
		if !utils.IsValidRegion(region) {
			fmt.Fprintf(m.out, "Warning: %q is not a known region, keeping %s\n", region, config.AWSRegion)
		} else {
			config.AWSRegion = region
		}
	}

	fmt.Fprintf(m.out, "Current AWS profile: %s\n", profileOrDefault(config))
	if profile, _ := m.prompt("New profile (empty for default credentials): "); profile != "" {
		config.AWSProfile = &profile
	} else {
		config.AWSProfile = nil
	}

	fmt.Fprintf(m.out, "Current console URL: %s\n", config.ConsoleBaseURL)
	if url, _ := m.prompt("New console URL (empty to keep): "); url != "" {
		config.ConsoleBaseURL = url
	}

	if err := m.store.SaveConfig(config); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Configuration saved.")
	return nil
}

// prompt reads one answer. ok is false once the input is exhausted so
// the menu loops can stop re-prompting.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func enabledTags(enabled map[string]bool) []string {
	var tags []string
	for _, tag := range models.ServiceTags {
		if enabled[tag] {
			tags = append(tags, tag)
		}
	}
	return tags
}

func profileOrDefault(config models.Config) string {
	if p := config.Profile(); p != "" {
		return p
	}
	return "default"
}

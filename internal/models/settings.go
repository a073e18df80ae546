package models

// Settings controls which services the query side considers. A record
// whose service is not enabled is invisible to every query path,
// including explicit service-scoped searches and suggestions.
type Settings struct {
	EnabledServices []string `json:"enabled_services"`
}

// DefaultSettings enables every supported service.
func DefaultSettings() Settings {
	tags := make([]string, len(ServiceTags))
	copy(tags, ServiceTags)
	return Settings{EnabledServices: tags}
}

// EnabledSet returns the enabled services as a set for filtering.
func (s Settings) EnabledSet() map[string]bool {
	set := make(map[string]bool, len(s.EnabledServices))
	for _, tag := range s.EnabledServices {
		set[tag] = true
	}
	return set
}

// IsEnabled reports whether a service tag is enabled.
func (s Settings) IsEnabled(tag string) bool {
	for _, enabled := range s.EnabledServices {
		if enabled == tag {
			return true
		}
	}
	return false
}

// Config holds the connection parameters shared by both binaries.
// AWSProfile is a pointer so a null profile round-trips through the
// config file unchanged.
type Config struct {
	AWSRegion      string  `json:"aws_region"`
	AWSProfile     *string `json:"aws_profile"`
	ConsoleBaseURL string  `json:"console_base_url"`
}

// DefaultConsoleBaseURL is the public AWS console endpoint.
const DefaultConsoleBaseURL = "https://console.aws.amazon.com"

// DefaultConfig returns the configuration used when no config file
// exists yet.
func DefaultConfig() Config {
	return Config{
		AWSRegion:      "us-east-1",
		AWSProfile:     nil,
		ConsoleBaseURL: DefaultConsoleBaseURL,
	}
}

// Profile returns the configured profile name or "" when unset.
func (c Config) Profile() string {
	if c.AWSProfile == nil {
		return ""
	}
	return *c.AWSProfile
}

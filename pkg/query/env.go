package query

import "strings"

// Environment tags derived from resource names.
const (
	EnvProd  = "PROD"
	EnvStage = "STAGE"
	EnvDev   = "DEV"
	EnvTest  = "TEST"
	EnvOther = "OTHER"
)

// envMarkers is checked in order; the first category with a matching
// substring wins, so "prod-test-runner" tags as PROD.
var envMarkers = []struct {
	tag     string
	markers []string
}{
	{EnvProd, []string{"prod", "production"}},
	{EnvStage, []string{"stag", "staging", "stage"}},
	{EnvDev, []string{"dev", "development"}},
	{EnvTest, []string{"test", "testing"}},
}

// EnvironmentTag classifies a resource name by the environment markers
// it contains.
func EnvironmentTag(name string) string {
	lower := strings.ToLower(name)
	for _, category := range envMarkers {
		for _, marker := range category.markers {
			if strings.Contains(lower, marker) {
				return category.tag
			}
		}
	}
	return EnvOther
}

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironmentTag(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"orders-prod", EnvProd},
		{"production-api", EnvProd},
		{"Orders-PROD", EnvProd},
		{"checkout-staging", EnvStage},
		{"stage-gateway", EnvStage},
		{"billing-dev", EnvDev},
		{"development-db", EnvDev},
		{"smoke-test", EnvTest},
		{"testing-harness", EnvTest},
		{"media-bucket", EnvOther},
		{"", EnvOther},

		// Precedence: PROD beats STAGE beats DEV beats TEST when
		// several markers appear in one name.
		{"prod-test-runner", EnvProd},
		{"staging-dev-mirror", EnvStage},
		{"dev-test-sandbox", EnvDev},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EnvironmentTag(tt.name))
		})
	}
}

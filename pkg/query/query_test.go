package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awsf-cli/awsf/internal/models"
)

func testResources() models.ResourceCache {
	return models.ResourceCache{
		"orders-prod":     {Service: "lambda", Type: "function", URL: "https://console/lambda/orders-prod"},
		"orders-dev":      {Service: "lambda", Type: "function", URL: "https://console/lambda/orders-dev"},
		"payment-queue":   {Service: "sqs", Type: "queue", URL: "https://console/sqs/payment-queue"},
		"media-bucket":    {Service: "s3", Type: "bucket", URL: "https://console/s3/media-bucket"},
		"sessions-table":  {Service: "dynamodb", Type: "table", URL: "https://console/dynamodb/sessions-table"},
		"events-stream":   {Service: "kinesis", Type: "stream", URL: "https://console/kinesis/events-stream"},
		"reports-cluster": {Service: "rds", Type: "cluster", URL: "https://console/rds/reports-cluster"},
	}
}

func allEnabled() map[string]bool {
	return models.DefaultSettings().EnabledSet()
}

func TestVisibleAppliesEnabledServicesFirst(t *testing.T) {
	resources := testResources()

	// A disabled service is invisible even when explicitly asked for.
	visible := Visible(resources, map[string]bool{"s3": true}, "lambda")
	assert.Empty(t, visible)

	visible = Visible(resources, map[string]bool{"s3": true}, "")
	require.Len(t, visible, 1)
	assert.Contains(t, visible, "media-bucket")

	visible = Visible(resources, allEnabled(), "lambda")
	assert.Len(t, visible, 2)
	assert.Contains(t, visible, "orders-prod")
	assert.Contains(t, visible, "orders-dev")
}

func TestSubstringIsCaseInsensitive(t *testing.T) {
	visible := Visible(testResources(), allEnabled(), "")

	tests := []struct {
		term string
		want []string
	}{
		{"ORDERS", []string{"orders-dev", "orders-prod"}},
		{"Orders-P", []string{"orders-prod"}},
		{"-", []string{"events-stream", "media-bucket", "orders-dev", "orders-prod", "payment-queue", "reports-cluster", "sessions-table"}},
		{"zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			matches := Substring(visible, tt.term)
			var names []string
			for _, m := range matches {
				names = append(names, m.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestRunDecisions(t *testing.T) {
	resources := testResources()

	t.Run("single match opens directly", func(t *testing.T) {
		result := Run(resources, allEnabled(), "", "payment")
		require.Equal(t, DecisionDirectOpen, result.Decision)
		require.Len(t, result.Matches, 1)
		assert.Equal(t, "payment-queue", result.Matches[0].Name)
	})

	t.Run("several matches go interactive", func(t *testing.T) {
		result := Run(resources, allEnabled(), "", "orders")
		require.Equal(t, DecisionInteractive, result.Decision)
		require.Len(t, result.Matches, 2)
		assert.Equal(t, "orders-dev", result.Matches[0].Name)
		assert.Equal(t, "orders-prod", result.Matches[1].Name)
	})

	t.Run("empty term is interactive over everything visible", func(t *testing.T) {
		result := Run(resources, allEnabled(), "", "")
		require.Equal(t, DecisionInteractive, result.Decision)
		assert.Len(t, result.Matches, len(resources))
	})

	t.Run("near miss suggests", func(t *testing.T) {
		result := Run(resources, allEnabled(), "", "ordrs")
		require.Equal(t, DecisionSuggest, result.Decision)
		assert.Empty(t, result.Matches)
		require.NotEmpty(t, result.Suggestions)
		assert.Contains(t, []string{"orders-prod", "orders-dev"}, result.Suggestions[0].Name)
	})

	t.Run("service filter narrows the match set", func(t *testing.T) {
		result := Run(resources, allEnabled(), "lambda", "orders-prod")
		require.Equal(t, DecisionDirectOpen, result.Decision)
		assert.Equal(t, "orders-prod", result.Matches[0].Name)
	})

	t.Run("lambda search finds nothing when only s3 is enabled", func(t *testing.T) {
		result := Run(resources, map[string]bool{"s3": true}, "", "orders")
		assert.Equal(t, DecisionNoMatch, result.Decision)
		assert.Empty(t, result.Suggestions)
	})

	t.Run("empty visible set is a no-match even without a term", func(t *testing.T) {
		result := Run(resources, map[string]bool{}, "", "")
		assert.Equal(t, DecisionNoMatch, result.Decision)
	})
}

func TestRunEnabledFilterIsIndependentOfMapOrder(t *testing.T) {
	resources := testResources()

	// Same enabled set built two ways must give the same outcome.
	a := map[string]bool{"lambda": true, "sqs": true}
	b := map[string]bool{"sqs": true, "lambda": true}

	ra := Run(resources, a, "", "orders")
	rb := Run(resources, b, "", "orders")
	assert.Equal(t, ra.Decision, rb.Decision)
	assert.Equal(t, ra.Matches, rb.Matches)
}

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awsf-cli/awsf/internal/models"
)

func TestSimilarityRatio(t *testing.T) {
	assert.Equal(t, 1.0, similarityRatio("orders", "orders"))
	assert.Equal(t, 0.0, similarityRatio("abc", "xyz"))

	// A close typo scores well above the cutoff.
	assert.Greater(t, similarityRatio("ordrs", "orders"), 0.8)
	assert.Less(t, similarityRatio("orders", "media-bucket"), suggestionCutoff)
}

func TestSuggestCapsAtThree(t *testing.T) {
	visible := models.ResourceCache{
		"orders-1": {Service: "lambda"},
		"orders-2": {Service: "lambda"},
		"orders-3": {Service: "lambda"},
		"orders-4": {Service: "lambda"},
		"orders-5": {Service: "lambda"},
	}

	suggestions := Suggest(visible, "odres")
	require.Len(t, suggestions, maxSuggestions)

	// Equal ratios fall back to name order.
	assert.Equal(t, "orders-1", suggestions[0].Name)
	assert.Equal(t, "orders-2", suggestions[1].Name)
	assert.Equal(t, "orders-3", suggestions[2].Name)
}

func TestSuggestOrdersByRatio(t *testing.T) {
	visible := models.ResourceCache{
		"orders-prod":        {Service: "lambda"},
		"orders-prod-backup": {Service: "lambda"},
	}

	suggestions := Suggest(visible, "orders-prdo")
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "orders-prod", suggestions[0].Name)
	for i := 1; i < len(suggestions); i++ {
		assert.GreaterOrEqual(t, suggestions[i-1].Ratio, suggestions[i].Ratio)
	}
}

func TestSuggestBelowCutoffIsEmpty(t *testing.T) {
	visible := models.ResourceCache{
		"media-bucket": {Service: "s3"},
	}
	assert.Empty(t, Suggest(visible, "qqqq"))
}

package formatter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awsf-cli/awsf/internal/models"
	"github.com/awsf-cli/awsf/pkg/query"
)

func TestPrintCollectionSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintCollectionSummary(&buf, map[string]int{
		"sqs":    3,
		"lambda": 12,
		"s3":     5,
	})

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)

	assert.Contains(t, lines[0], "SERVICE")
	assert.Contains(t, lines[0], "RESOURCES")

	// Rows sorted by service tag, total last.
	assert.Contains(t, lines[1], "lambda")
	assert.Contains(t, lines[2], "s3")
	assert.Contains(t, lines[3], "sqs")
	assert.Contains(t, lines[4], "Total:")
	assert.Contains(t, lines[4], "20")
}

func TestPrintCacheWritten(t *testing.T) {
	var buf bytes.Buffer
	PrintCacheWritten(&buf, "/tmp/awsf/resources.json", 2048, 17)

	out := buf.String()
	assert.Contains(t, out, "17 resources")
	assert.Contains(t, out, "2.0 kB")
	assert.Contains(t, out, "/tmp/awsf/resources.json")
}

func TestPrintSuggestions(t *testing.T) {
	var buf bytes.Buffer
	PrintSuggestions(&buf, []query.Suggestion{
		{Name: "orders-prod", Record: models.Record{Service: "lambda"}},
		{Name: "orders-dev", Record: models.Record{Service: "lambda"}},
	})

	out := buf.String()
	assert.Contains(t, out, "Did you mean:")
	assert.Contains(t, out, "  - orders-prod (Lambda)")
	assert.Contains(t, out, "  - orders-dev (Lambda)")
}

func TestPrintNoMatch(t *testing.T) {
	var buf bytes.Buffer
	PrintNoMatch(&buf, "orders", "")
	assert.Equal(t, "No resources found matching: \"orders\"\n", buf.String())

	buf.Reset()
	PrintNoMatch(&buf, "orders", "sqs")
	assert.Equal(t, "No SQS resources found matching: \"orders\"\n", buf.String())
}

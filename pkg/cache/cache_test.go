package cache

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awsf-cli/awsf/internal/models"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resources.json")

	resources := models.ResourceCache{
		"orders-prod": {
			Service:      "lambda",
			Type:         "function",
			URL:          "https://us-east-1.console.aws.amazon.com/lambda/home?region=us-east-1#/functions/orders-prod?tab=configuration",
			Region:       "us-east-1",
			Runtime:      "python3.12",
			LastModified: "2024-05-01T12:00:00Z",
		},
		"payment-queue": {
			Service:  "sqs",
			Type:     "queue",
			URL:      "https://us-east-1.console.aws.amazon.com/sqs/v2/home?region=us-east-1#/queues/https%3A//sqs.us-east-1.amazonaws.com/123/payment-queue",
			Region:   "us-east-1",
			QueueURL: "https://sqs.us-east-1.amazonaws.com/123/payment-queue",
		},
		"events-stream": {
			Service:    "kinesis",
			Type:       "stream",
			URL:        "https://console/kinesis",
			Region:     "us-east-1",
			Status:     "ACTIVE",
			ShardCount: 4,
		},
	}

	require.NoError(t, Save(path, resources))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, resources, loaded)
}

func TestSaveCreatesCacheDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "awsf", "resources.json")
	require.NoError(t, Save(path, models.ResourceCache{}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSaveFileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix file modes")
	}
	path := filepath.Join(t.TempDir(), "resources.json")
	require.NoError(t, Save(path, models.ResourceCache{}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestSaveReplacesPreviousCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resources.json")

	require.NoError(t, Save(path, models.ResourceCache{
		"old": {Service: "s3", Type: "bucket"},
	}))
	require.NoError(t, Save(path, models.ResourceCache{
		"new": {Service: "lambda", Type: "function"},
	}))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
	assert.Contains(t, loaded, "new")

	// No stray temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLoadMissingCache(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "resources.json"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadCorruptCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resources.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestLoadNormalizesIncompleteRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resources.json")
	raw := `{"mystery-resource": {"url": "https://console/x", "region": "us-east-1"}}`
	require.NoError(t, os.WriteFile(path, []byte(raw+"\n"), 0o644))

	loaded, err := Load(path)
	require.NoError(t, err)

	record := loaded["mystery-resource"]
	assert.Equal(t, models.UnknownValue, record.Service)
	assert.Equal(t, models.UnknownValue, record.Type)
	assert.Equal(t, models.UnknownValue, models.DisplayNameFor(record))
	assert.Equal(t, "https://console/x", record.URL)
}

func TestAge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resources.json")

	_, ok := Age(path)
	assert.False(t, ok)

	require.NoError(t, Save(path, models.ResourceCache{}))
	age, ok := Age(path)
	assert.True(t, ok)
	assert.Less(t, age, time.Minute)
}

func TestErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrNotFound, ErrCorrupt))
}

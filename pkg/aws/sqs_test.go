package aws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueNameFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://sqs.us-east-1.amazonaws.com/123456789012/payment-queue", "payment-queue"},
		{"https://sqs.eu-west-1.amazonaws.com/123456789012/orders.fifo", "orders.fifo"},
		{"bare-name", "bare-name"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, queueNameFromURL(tt.url))
		})
	}
}

func TestSQSConsoleURLEscapesScheme(t *testing.T) {
	f := &SQSFetcher{region: "us-east-1"}
	url := f.consoleURL("https://sqs.us-east-1.amazonaws.com/123456789012/payment-queue")

	assert.Equal(t,
		"https://us-east-1.console.aws.amazon.com/sqs/v2/home?region=us-east-1#/queues/https%3A//sqs.us-east-1.amazonaws.com/123456789012/payment-queue",
		url)

	// Only the embedded queue URL's scheme separator is escaped, and
	// only once.
	assert.Contains(t, url, "https://us-east-1.console")
}

package aws

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/awsf-cli/awsf/internal/models"
)

// SQSFetcher enumerates SQS queues.
type SQSFetcher struct {
	client *sqs.Client
	region string
}

// NewSQSFetcher creates an SQS fetcher from a loaded config.
func NewSQSFetcher(cfg aws.Config, region string) *SQSFetcher {
	return &SQSFetcher{
		client: sqs.NewFromConfig(cfg),
		region: region,
	}
}

// ServiceTag returns the sqs service tag.
func (f *SQSFetcher) ServiceTag() string {
	return "sqs"
}

// Fetch lists every queue, keyed by the queue name extracted from its
// URL.
func (f *SQSFetcher) Fetch(ctx context.Context) (models.ResourceCache, error) {
	resources := make(models.ResourceCache)

	paginator := sqs.NewListQueuesPaginator(f.client, &sqs.ListQueuesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return resources, fmt.Errorf("error listing SQS queues: %w", err)
		}

		for _, queueURL := range page.QueueUrls {
			name := queueNameFromURL(queueURL)
			resources[name] = models.Record{
				Service:  "sqs",
				Type:     "queue",
				URL:      f.consoleURL(queueURL),
				QueueURL: queueURL,
				Region:   f.region,
			}
		}
	}

	return resources, nil
}

// consoleURL embeds the queue URL in the console fragment. The scheme
// separator must be escaped or the console drops everything after it.
func (f *SQSFetcher) consoleURL(queueURL string) string {
	escaped := strings.Replace(queueURL, "://", "%3A//", 1)
	return fmt.Sprintf("https://%s.console.aws.amazon.com/sqs/v2/home?region=%s#/queues/%s",
		f.region, f.region, escaped)
}

// queueNameFromURL extracts the queue name, the last path segment of
// the queue URL.
func queueNameFromURL(queueURL string) string {
	if idx := strings.LastIndex(queueURL, "/"); idx >= 0 {
		return queueURL[idx+1:]
	}
	return queueURL
}

package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"

	"github.com/awsf-cli/awsf/internal/models"
)

// KinesisFetcher enumerates Kinesis data streams.
type KinesisFetcher struct {
	client *kinesis.Client
	region string
}

// NewKinesisFetcher creates a Kinesis fetcher from a loaded config.
func NewKinesisFetcher(cfg aws.Config, region string) *KinesisFetcher {
	return &KinesisFetcher{
		client: kinesis.NewFromConfig(cfg),
		region: region,
	}
}

// ServiceTag returns the kinesis service tag.
func (f *KinesisFetcher) ServiceTag() string {
	return "kinesis"
}

// Fetch lists all streams and describes each one for its ARN, status
// and shard count. Streams the caller cannot describe are skipped;
// their siblings still make it into the cache.
func (f *KinesisFetcher) Fetch(ctx context.Context) (models.ResourceCache, error) {
	resources := make(models.ResourceCache)

	paginator := kinesis.NewListStreamsPaginator(f.client, &kinesis.ListStreamsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return resources, fmt.Errorf("error listing Kinesis streams: %w", err)
		}

		for _, name := range page.StreamNames {
			summary, err := f.client.DescribeStreamSummary(ctx, &kinesis.DescribeStreamSummaryInput{
				StreamName: aws.String(name),
			})
			if err != nil {
				continue
			}

			desc := summary.StreamDescriptionSummary
			status := string(desc.StreamStatus)
			if status == "" {
				status = models.UnknownValue
			}

			resources[name] = models.Record{
				Service:    "kinesis",
				Type:       "stream",
				URL:        f.consoleURL(name),
				ARN:        aws.ToString(desc.StreamARN),
				Status:     status,
				ShardCount: int(aws.ToInt32(desc.OpenShardCount)),
				Region:     f.region,
			}
		}
	}

	return resources, nil
}

func (f *KinesisFetcher) consoleURL(name string) string {
	return fmt.Sprintf("https://%s.console.aws.amazon.com/kinesis/home?region=%s#/streams/details/%s/monitoring",
		f.region, f.region, name)
}

package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/awsf-cli/awsf/internal/models"
)

// S3Fetcher enumerates S3 buckets. ListBuckets is account-wide, so the
// records carry the configured region only for the console link.
type S3Fetcher struct {
	client *s3.Client
	region string
}

// NewS3Fetcher creates an S3 fetcher from a loaded config.
func NewS3Fetcher(cfg aws.Config, region string) *S3Fetcher {
	return &S3Fetcher{
		client: s3.NewFromConfig(cfg),
		region: region,
	}
}

// ServiceTag returns the s3 service tag.
func (f *S3Fetcher) ServiceTag() string {
	return "s3"
}

// Fetch lists all buckets in the account.
func (f *S3Fetcher) Fetch(ctx context.Context) (models.ResourceCache, error) {
	resources := make(models.ResourceCache)

	out, err := f.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return resources, fmt.Errorf("error listing S3 buckets: %w", err)
	}

	for _, bucket := range out.Buckets {
		name := aws.ToString(bucket.Name)
		if name == "" {
			continue
		}

		var creationDate string
		if bucket.CreationDate != nil {
			creationDate = bucket.CreationDate.UTC().Format(time.RFC3339)
		}

		resources[name] = models.Record{
			Service:      "s3",
			Type:         "bucket",
			URL:          f.consoleURL(name),
			CreationDate: creationDate,
			Region:       f.region,
		}
	}

	return resources, nil
}

func (f *S3Fetcher) consoleURL(name string) string {
	return fmt.Sprintf("https://s3.console.aws.amazon.com/s3/buckets/%s?region=%s", name, f.region)
}

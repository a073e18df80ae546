package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/briandowns/spinner"

	"github.com/awsf-cli/awsf/internal/models"
)

// Fetcher enumerates one service and normalizes its items into records.
// Implementations return whatever they managed to collect even when an
// error occurred partway through.
type Fetcher interface {
	ServiceTag() string
	Fetch(ctx context.Context) (models.ResourceCache, error)
}

// ServiceError records a per-service fetch failure. These do not abort
// the run; the failing service just contributes fewer (or zero) records.
type ServiceError struct {
	Service string
	Err     error
}

func (e ServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

// Collector runs every service fetcher sequentially and merges the
// results into one cache.
type Collector struct {
	fetchers []Fetcher
}

// NewCollector wires up fetchers for all supported services against one
// SDK configuration.
func NewCollector(cfg aws.Config, region string) *Collector {
	return &Collector{
		fetchers: []Fetcher{
			NewLambdaFetcher(cfg, region),
			NewS3Fetcher(cfg, region),
			NewSQSFetcher(cfg, region),
			NewKinesisFetcher(cfg, region),
			NewDynamoDBFetcher(cfg, region),
			NewRDSFetcher(cfg, region),
			NewAPIGatewayFetcher(cfg, region),
		},
	}
}

// Collect fetches all services in order. Per-service failures are
// returned alongside the merged cache; partial results from a failing
// service are kept.
func (c *Collector) Collect(ctx context.Context) (models.ResourceCache, []ServiceError) {
	resources := make(models.ResourceCache)
	var failures []ServiceError

	for _, fetcher := range c.fetchers {
		tag := fetcher.ServiceTag()

		sp := spinner.New(spinner.CharSets[9], 200*time.Millisecond)
		sp.Suffix = fmt.Sprintf(" Fetching %s resources ...", models.ServiceDisplayName(tag))
		sp.Start()

		start := time.Now()
		found, err := fetcher.Fetch(ctx)

		if err != nil {
			sp.FinalMSG = fmt.Sprintf("✗ %s fetch failed after %.2f seconds\n",
				models.ServiceDisplayName(tag), time.Since(start).Seconds())
			failures = append(failures, ServiceError{Service: tag, Err: err})
		} else {
			sp.FinalMSG = fmt.Sprintf("✓ [%d found] %s resources fetched in %.2f seconds\n",
				len(found), models.ServiceDisplayName(tag), time.Since(start).Seconds())
		}
		sp.Stop()

		resources.Merge(found)
	}

	return resources, failures
}

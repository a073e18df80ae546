package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"

	"github.com/awsf-cli/awsf/internal/models"
)

// RDSFetcher enumerates RDS DB instances and clusters.
type RDSFetcher struct {
	client *rds.Client
	region string
}

// NewRDSFetcher creates an RDS fetcher from a loaded config.
func NewRDSFetcher(cfg aws.Config, region string) *RDSFetcher {
	return &RDSFetcher{
		client: rds.NewFromConfig(cfg),
		region: region,
	}
}

// ServiceTag returns the rds service tag.
func (f *RDSFetcher) ServiceTag() string {
	return "rds"
}

// Fetch lists instances and clusters. The two sub-fetches fail
// independently: records from the one that succeeded are kept and the
// other's error is reported with them.
func (f *RDSFetcher) Fetch(ctx context.Context) (models.ResourceCache, error) {
	resources := make(models.ResourceCache)

	instanceErr := f.fetchInstances(ctx, resources)
	clusterErr := f.fetchClusters(ctx, resources)

	return resources, errors.Join(instanceErr, clusterErr)
}

func (f *RDSFetcher) fetchInstances(ctx context.Context, resources models.ResourceCache) error {
	paginator := rds.NewDescribeDBInstancesPaginator(f.client, &rds.DescribeDBInstancesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("error describing RDS instances: %w", err)
		}

		for _, instance := range page.DBInstances {
			name := aws.ToString(instance.DBInstanceIdentifier)
			if name == "" {
				continue
			}

			resources[name] = models.Record{
				Service: "rds",
				Type:    "instance",
				URL:     f.consoleURL(name, false),
				ARN:     aws.ToString(instance.DBInstanceArn),
				Engine:  orUnknown(aws.ToString(instance.Engine)),
				Status:  orUnknown(aws.ToString(instance.DBInstanceStatus)),
				Region:  f.region,
			}
		}
	}
	return nil
}

func (f *RDSFetcher) fetchClusters(ctx context.Context, resources models.ResourceCache) error {
	paginator := rds.NewDescribeDBClustersPaginator(f.client, &rds.DescribeDBClustersInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("error describing RDS clusters: %w", err)
		}

		for _, cluster := range page.DBClusters {
			name := aws.ToString(cluster.DBClusterIdentifier)
			if name == "" {
				continue
			}

			resources[name] = models.Record{
				Service: "rds",
				Type:    "cluster",
				URL:     f.consoleURL(name, true),
				ARN:     aws.ToString(cluster.DBClusterArn),
				Engine:  orUnknown(aws.ToString(cluster.Engine)),
				Status:  orUnknown(aws.ToString(cluster.Status)),
				Region:  f.region,
			}
		}
	}
	return nil
}

func (f *RDSFetcher) consoleURL(name string, isCluster bool) string {
	return fmt.Sprintf("https://%s.console.aws.amazon.com/rds/home?region=%s#database:id=%s;is-cluster=%t",
		f.region, f.region, name, isCluster)
}

func orUnknown(s string) string {
	if s == "" {
		return models.UnknownValue
	}
	return s
}

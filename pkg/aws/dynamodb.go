package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/awsf-cli/awsf/internal/models"
)

// DynamoDBFetcher enumerates DynamoDB tables.
type DynamoDBFetcher struct {
	client *dynamodb.Client
	region string
}

// NewDynamoDBFetcher creates a DynamoDB fetcher from a loaded config.
func NewDynamoDBFetcher(cfg aws.Config, region string) *DynamoDBFetcher {
	return &DynamoDBFetcher{
		client: dynamodb.NewFromConfig(cfg),
		region: region,
	}
}

// ServiceTag returns the dynamodb service tag.
func (f *DynamoDBFetcher) ServiceTag() string {
	return "dynamodb"
}

// Fetch lists all tables and describes each for its ARN, status and
// item count. Tables the caller cannot describe are skipped.
func (f *DynamoDBFetcher) Fetch(ctx context.Context) (models.ResourceCache, error) {
	resources := make(models.ResourceCache)

	paginator := dynamodb.NewListTablesPaginator(f.client, &dynamodb.ListTablesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return resources, fmt.Errorf("error listing DynamoDB tables: %w", err)
		}

		for _, name := range page.TableNames {
			desc, err := f.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
				TableName: aws.String(name),
			})
			if err != nil {
				continue
			}

			table := desc.Table
			status := string(table.TableStatus)
			if status == "" {
				status = models.UnknownValue
			}

			resources[name] = models.Record{
				Service:   "dynamodb",
				Type:      "table",
				URL:       f.consoleURL(name),
				ARN:       aws.ToString(table.TableArn),
				Status:    status,
				ItemCount: aws.ToInt64(table.ItemCount),
				Region:    f.region,
			}
		}
	}

	return resources, nil
}

func (f *DynamoDBFetcher) consoleURL(name string) string {
	return fmt.Sprintf("https://%s.console.aws.amazon.com/dynamodbv2/home?region=%s#table?name=%s",
		f.region, f.region, name)
}

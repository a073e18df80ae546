package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"

	"github.com/awsf-cli/awsf/internal/models"
)

// LambdaFetcher enumerates Lambda functions.
type LambdaFetcher struct {
	client *lambda.Client
	region string
}

// NewLambdaFetcher creates a Lambda fetcher from a loaded config.
func NewLambdaFetcher(cfg aws.Config, region string) *LambdaFetcher {
	return &LambdaFetcher{
		client: lambda.NewFromConfig(cfg),
		region: region,
	}
}

// ServiceTag returns the lambda service tag.
func (f *LambdaFetcher) ServiceTag() string {
	return "lambda"
}

// Fetch lists every function and builds its configuration deep link.
func (f *LambdaFetcher) Fetch(ctx context.Context) (models.ResourceCache, error) {
	resources := make(models.ResourceCache)

	paginator := lambda.NewListFunctionsPaginator(f.client, &lambda.ListFunctionsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return resources, fmt.Errorf("error listing Lambda functions: %w", err)
		}

		for _, function := range page.Functions {
			name := aws.ToString(function.FunctionName)
			if name == "" {
				continue
			}

			runtime := string(function.Runtime)
			if runtime == "" {
				runtime = models.UnknownValue
			}

			resources[name] = models.Record{
				Service:      "lambda",
				Type:         "function",
				ARN:          aws.ToString(function.FunctionArn),
				URL:          f.consoleURL(name),
				Runtime:      runtime,
				LastModified: aws.ToString(function.LastModified),
				Region:       f.region,
			}
		}
	}

	return resources, nil
}

func (f *LambdaFetcher) consoleURL(name string) string {
	return fmt.Sprintf("https://%s.console.aws.amazon.com/lambda/home?region=%s#/functions/%s?tab=configuration",
		f.region, f.region, name)
}

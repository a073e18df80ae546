package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"

	"github.com/awsf-cli/awsf/internal/models"
)

// APIGatewayFetcher enumerates API Gateway REST APIs.
type APIGatewayFetcher struct {
	client *apigateway.Client
	region string
}

// NewAPIGatewayFetcher creates an API Gateway fetcher from a loaded
// config.
func NewAPIGatewayFetcher(cfg aws.Config, region string) *APIGatewayFetcher {
	return &APIGatewayFetcher{
		client: apigateway.NewFromConfig(cfg),
		region: region,
	}
}

// ServiceTag returns the apigateway service tag.
func (f *APIGatewayFetcher) ServiceTag() string {
	return "apigateway"
}

// Fetch lists every REST API, keyed by API name.
func (f *APIGatewayFetcher) Fetch(ctx context.Context) (models.ResourceCache, error) {
	resources := make(models.ResourceCache)

	paginator := apigateway.NewGetRestApisPaginator(f.client, &apigateway.GetRestApisInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return resources, fmt.Errorf("error listing API Gateway APIs: %w", err)
		}

		for _, api := range page.Items {
			name := aws.ToString(api.Name)
			id := aws.ToString(api.Id)
			if name == "" || id == "" {
				continue
			}

			var createdDate string
			if api.CreatedDate != nil {
				createdDate = api.CreatedDate.UTC().Format(time.RFC3339)
			}

			resources[name] = models.Record{
				Service:     "apigateway",
				Type:        "rest_api",
				URL:         f.consoleURL(id),
				APIID:       id,
				Description: aws.ToString(api.Description),
				CreatedDate: createdDate,
				Region:      f.region,
			}
		}
	}

	return resources, nil
}

func (f *APIGatewayFetcher) consoleURL(id string) string {
	return fmt.Sprintf("https://%s.console.aws.amazon.com/apigateway/home?region=%s#/apis/%s",
		f.region, f.region, id)
}

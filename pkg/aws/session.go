// Package aws enumerates resources across the supported AWS services
// and normalizes them into the shared record format.
package aws

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// NewSession loads the SDK configuration for a region, optionally
// through a named shared-config profile.
func NewSession(ctx context.Context, region, profile string) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("error loading AWS config: %w", err)
	}
	return cfg, nil
}

// Identity describes the caller the collection run authenticates as.
type Identity struct {
	Account string
	Caller  string
}

// VerifyIdentity resolves the caller identity via STS. Failure here is
// fatal for a collection run: without credentials every service fetch
// would fail the same way.
func VerifyIdentity(ctx context.Context, cfg aws.Config) (Identity, error) {
	client := sts.NewFromConfig(cfg)
	out, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return Identity{}, fmt.Errorf("error resolving AWS credentials: %w", err)
	}

	arn := aws.ToString(out.Arn)
	caller := arn
	if idx := strings.LastIndex(arn, "/"); idx >= 0 {
		caller = arn[idx+1:]
	}

	return Identity{
		Account: aws.ToString(out.Account),
		Caller:  caller,
	}, nil
}

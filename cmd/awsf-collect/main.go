package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/awsf-cli/awsf/internal/models"
	"github.com/awsf-cli/awsf/internal/version"
	"github.com/awsf-cli/awsf/pkg/aws"
	"github.com/awsf-cli/awsf/pkg/cache"
	"github.com/awsf-cli/awsf/pkg/formatter"
	"github.com/awsf-cli/awsf/pkg/store"
	"github.com/awsf-cli/awsf/pkg/utils"
)

var (
	region      string
	profile     string
	showVersion bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "awsf-collect",
		Short: "Collect AWS resources into the awsf search cache",
		Long: `awsf-collect enumerates Lambda functions, S3 buckets, SQS queues,
Kinesis streams, DynamoDB tables, RDS databases and API Gateway APIs,
and caches them as JSON for the awsf search command.

A service that cannot be fetched contributes zero records and the run
continues; only a credential failure or a cache write failure aborts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Printf("awsf-collect version %s\n", version.String())
				return nil
			}
			return runCollect(cmd.Context())
		},
	}

	rootCmd.Flags().StringVarP(&region, "region", "r", "", "AWS region to collect from (default: configured region)")
	rootCmd.Flags().StringVarP(&profile, "profile", "p", "", "AWS shared-config profile (default: configured profile)")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runCollect(ctx context.Context) error {
	st, err := store.NewDefault()
	if err != nil {
		return err
	}
	config, err := st.LoadConfig()
	if err != nil {
		return err
	}

	if region == "" {
		region = config.AWSRegion
	}
	if profile == "" {
		profile = config.Profile()
	}
	if !utils.IsValidRegion(region) {
		return fmt.Errorf("invalid AWS region: %q", region)
	}

	fmt.Println("AWS resource collection")
	fmt.Printf("Region: %s (%s)\n", region, utils.RegionDescriptiveName(region))
	if profile != "" {
		fmt.Printf("Profile: %s\n", profile)
	}

	cfg, err := aws.NewSession(ctx, region, profile)
	if err != nil {
		return err
	}

	// No credentials means every fetch would fail; bail out before
	// touching any service.
	identity, err := aws.VerifyIdentity(ctx, cfg)
	if err != nil {
		fmt.Println("Hint: run 'aws configure' or set AWS environment variables")
		return err
	}
	fmt.Printf("Account: %s\n", identity.Account)
	fmt.Printf("User/Role: %s\n\n", identity.Caller)

	collector := aws.NewCollector(cfg, region)
	resources, failures := collector.Collect(ctx)

	for _, failure := range failures {
		fmt.Printf("Error fetching %s resources: %v\n", models.ServiceDisplayName(failure.Service), failure.Err)
	}

	cachePath, err := store.DefaultCachePath()
	if err != nil {
		return err
	}
	if err := cache.Save(cachePath, resources); err != nil {
		return err
	}

	var size int64
	if info, statErr := os.Stat(cachePath); statErr == nil {
		size = info.Size()
	}
	formatter.PrintCacheWritten(os.Stdout, cachePath, size, len(resources))

	fmt.Println("\nResource summary:")
	formatter.PrintCollectionSummary(os.Stdout, resources.CountByService())

	fmt.Println("\nResource collection complete. Use 'awsf' to search.")
	return nil
}

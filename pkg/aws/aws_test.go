package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
)

// testConfig returns an SDK config good enough to construct clients.
// Nothing in the tests makes a real API call.
func testConfig() aws.Config {
	return aws.Config{Region: "us-east-1"}
}

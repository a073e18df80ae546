package models

// ServiceTags lists the supported service tags in canonical order.
// The collector fetches them in this order and summaries print in this
// order after sorting.
var ServiceTags = []string{
	"apigateway",
	"dynamodb",
	"kinesis",
	"lambda",
	"rds",
	"s3",
	"sqs",
}

// serviceDisplayNames maps service tags to their console display names.
var serviceDisplayNames = map[string]string{
	"apigateway": "API Gateway",
	"dynamodb":   "DynamoDB",
	"kinesis":    "Kinesis",
	"lambda":     "Lambda",
	"rds":        "RDS",
	"s3":         "S3",
	"sqs":        "SQS",
}

// IsValidService reports whether tag names a supported service.
func IsValidService(tag string) bool {
	_, ok := serviceDisplayNames[tag]
	return ok
}

// ServiceDisplayName returns the human-readable name for a service tag.
// Unknown tags fall back to the tag itself so a cache written by a newer
// collector still renders.
func ServiceDisplayName(tag string) string {
	if name, ok := serviceDisplayNames[tag]; ok {
		return name
	}
	return tag
}

// DisplayNameFor returns the display name for a record, qualifying RDS
// clusters the way the console groups them.
func DisplayNameFor(record Record) string {
	name := ServiceDisplayName(record.Service)
	if record.Type == "cluster" {
		return name + " Cluster"
	}
	return name
}

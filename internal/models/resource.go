package models

// Record is the normalized form of one discovered AWS resource.
// Every record carries service, type, url and region; the remaining
// fields are service-specific and omitted from the cache file when
// empty. Upstream timestamps are stringified during collection so the
// cache stays plain JSON.
type Record struct {
	Service      string `json:"service"`
	Type         string `json:"type"`
	URL          string `json:"url"`
	Region       string `json:"region"`
	ARN          string `json:"arn,omitempty"`
	Runtime      string `json:"runtime,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
	CreationDate string `json:"creation_date,omitempty"`
	QueueURL     string `json:"queue_url,omitempty"`
	Status       string `json:"status,omitempty"`
	ShardCount   int    `json:"shard_count,omitempty"`
	ItemCount    int64  `json:"item_count,omitempty"`
	Engine       string `json:"engine,omitempty"`
	APIID        string `json:"api_id,omitempty"`
	Description  string `json:"description,omitempty"`
	CreatedDate  string `json:"created_date,omitempty"`
}

// UnknownValue is substituted when an upstream response lacks a field
// the record contract requires.
const UnknownValue = "unknown"

// Normalize fills the required fields with placeholders instead of
// letting an incomplete upstream item fail the collection run.
func (r Record) Normalize() Record {
	if r.Service == "" {
		r.Service = UnknownValue
	}
	if r.Type == "" {
		r.Type = UnknownValue
	}
	return r
}

// ResourceCache maps resource name to its record. Names collide across
// services on rare occasions; the last service collected wins, matching
// the on-disk cache format.
type ResourceCache map[string]Record

// Merge copies all records from other into the cache.
func (c ResourceCache) Merge(other ResourceCache) {
	for name, record := range other {
		c[name] = record
	}
}

// CountByService returns the number of records per service tag.
func (c ResourceCache) CountByService() map[string]int {
	counts := make(map[string]int)
	for _, record := range c {
		counts[record.Service]++
	}
	return counts
}

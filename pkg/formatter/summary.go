package formatter

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
)

// PrintCollectionSummary prints per-service record counts sorted by
// service tag, kubectl style.
func PrintCollectionSummary(w io.Writer, counts map[string]int) {
	var tags []string
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "SERVICE\tRESOURCES")

	total := 0
	for _, tag := range tags {
		fmt.Fprintf(tw, "%s\t%d\n", tag, counts[tag])
		total += counts[tag]
	}
	fmt.Fprintf(tw, "Total:\t%d\n", total)
	tw.Flush()
}

// PrintCacheWritten reports where the cache landed and how big it is.
func PrintCacheWritten(w io.Writer, path string, size int64, records int) {
	fmt.Fprintf(w, "\n✓ Saved %d resources (%s) to %s\n", records, humanize.Bytes(uint64(size)), path)
}

package core

import (
	"time"

	"github.com/huangsam/devpulse/schema"
)

// ComputeDistribution buckets the sampled commits into an hour-by-weekday
// grid in the given fixed offset. Samples without a usable timestamp are
// skipped. Weekdays are Monday-based, matching the rendered table.
func ComputeDistribution(samples []schema.CommitSample, offset *time.Location, label string) *schema.TimeDistribution {
	dist := schema.NewTimeDistribution(label)
	for _, sample := range samples {
		if sample.AuthoredAt == nil {
			continue
		}
		local := sample.AuthoredAt.In(offset)
		dist.Add(local.Hour(), mondayIndex(local.Weekday()))

		date := local.Format("2006-01-02")
		if dist.EarliestDate == nil || date < *dist.EarliestDate {
			earliest := date
			dist.EarliestDate = &earliest
		}
		if dist.LatestDate == nil || date > *dist.LatestDate {
			latest := date
			dist.LatestDate = &latest
		}
	}
	dist.Finalize()
	return dist
}

// mondayIndex remaps Go's Sunday-based weekday to Monday=0 .. Sunday=6.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

package core

import (
	"testing"
	"time"

	"github.com/huangsam/devpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAt(ts time.Time) schema.CommitSample {
	return schema.CommitSample{Repo: "octocat/app", SHA: "sha", AuthoredAt: &ts}
}

func TestComputeDistributionBuckets(t *testing.T) {
	offset := time.FixedZone("UTC+02:00", 2*3600)

	// 2024-01-01 is a Monday. 22:30 UTC lands on Tuesday 00:30 local.
	samples := []schema.CommitSample{
		sampleAt(time.Date(2024, 1, 1, 22, 30, 0, 0, time.UTC)),
		sampleAt(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)),
		{Repo: "octocat/app", SHA: "undated"},
	}

	dist := ComputeDistribution(samples, offset, "+02:00")
	require.NotNil(t, dist)

	assert.Equal(t, uint64(2), dist.TotalCommits)
	assert.Equal(t, "+02:00", dist.Timezone)
	assert.Equal(t, uint32(1), dist.Grid[0][1], "22:30Z shifts to Tuesday 00:30 local")
	assert.Equal(t, uint32(1), dist.Grid[10][0], "08:00Z shifts to Monday 10:00 local")

	require.NotNil(t, dist.EarliestDate)
	require.NotNil(t, dist.LatestDate)
	assert.Equal(t, "2024-01-01", *dist.EarliestDate)
	assert.Equal(t, "2024-01-02", *dist.LatestDate)
}

func TestComputeDistributionPeakTies(t *testing.T) {
	offset := time.UTC

	// Two cells with count 2; the row-major scan keeps the lower hour.
	samples := []schema.CommitSample{
		sampleAt(time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC)), // Tue 14:00
		sampleAt(time.Date(2024, 1, 9, 14, 5, 0, 0, time.UTC)), // Tue 14:05
		sampleAt(time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)),  // Fri 09:00
		sampleAt(time.Date(2024, 1, 12, 9, 0, 0, 0, time.UTC)), // Fri 09:00
	}

	dist := ComputeDistribution(samples, offset, "+00:00")
	assert.Equal(t, 9, dist.PeakHour)
	assert.Equal(t, 4, dist.PeakWeekday) // Friday

	var sum uint64
	for h := range dist.Grid {
		for w := range dist.Grid[h] {
			sum += uint64(dist.Grid[h][w])
		}
	}
	assert.Equal(t, dist.TotalCommits, sum)
}

func TestComputeDistributionEmpty(t *testing.T) {
	dist := ComputeDistribution(nil, time.UTC, "+00:00")
	require.NotNil(t, dist)
	assert.Equal(t, uint64(0), dist.TotalCommits)
	assert.Nil(t, dist.EarliestDate)
	assert.Nil(t, dist.LatestDate)
	assert.Equal(t, 0, dist.PeakHour)
	assert.Equal(t, 0, dist.PeakWeekday)
}

func TestMondayIndex(t *testing.T) {
	assert.Equal(t, 0, mondayIndex(time.Monday))
	assert.Equal(t, 5, mondayIndex(time.Saturday))
	assert.Equal(t, 6, mondayIndex(time.Sunday))
}

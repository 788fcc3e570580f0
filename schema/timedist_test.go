package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeDistributionAdd(t *testing.T) {
	dist := NewTimeDistribution("+00:00")

	dist.Add(9, 0)
	dist.Add(9, 0)
	dist.Add(23, 6)

	// Out-of-range values are ignored
	dist.Add(-1, 0)
	dist.Add(24, 0)
	dist.Add(0, 7)

	assert.Equal(t, uint64(3), dist.TotalCommits)
	assert.Equal(t, uint32(2), dist.Grid[9][0])
	assert.Equal(t, uint32(1), dist.Grid[23][6])
}

func TestTimeDistributionFinalize(t *testing.T) {
	dist := NewTimeDistribution("+00:00")
	dist.Add(14, 2)
	dist.Add(14, 2)
	dist.Add(8, 1)
	dist.Finalize()

	assert.Equal(t, 14, dist.PeakHour)
	assert.Equal(t, 2, dist.PeakWeekday)
}

func TestTimeDistributionFinalizeTieKeepsFirstCell(t *testing.T) {
	dist := NewTimeDistribution("+00:00")
	dist.Add(20, 0)
	dist.Add(3, 5)
	dist.Finalize()

	// Row-major scan with strict greater-than: the lower hour wins ties
	assert.Equal(t, 3, dist.PeakHour)
	assert.Equal(t, 5, dist.PeakWeekday)
}

func TestTimeDistributionFinalizeEmpty(t *testing.T) {
	dist := NewTimeDistribution("+00:00")
	dist.Finalize()
	assert.Equal(t, 0, dist.PeakHour)
	assert.Equal(t, 0, dist.PeakWeekday)
}

package schema

// TimeDistribution counts commits across a 24x7 grid of local hour and
// weekday (Monday=0 .. Sunday=6) in a fixed UTC offset.
type TimeDistribution struct {
	// Grid[hour][weekday] = commit count
	Grid         [24][7]uint32 `json:"grid"`
	TotalCommits uint64        `json:"total_commits"`
	PeakHour     int           `json:"peak_hour"`
	PeakWeekday  int           `json:"peak_weekday"`
	Timezone     string        `json:"timezone"` // offset label, e.g. "+02:00"
	EarliestDate *string       `json:"earliest_date"`
	LatestDate   *string       `json:"latest_date"`
}

// NewTimeDistribution returns an empty distribution for the given offset label.
func NewTimeDistribution(timezone string) *TimeDistribution {
	return &TimeDistribution{Timezone: timezone}
}

// Add records one commit at the given local hour (0-23) and weekday
// (0=Monday .. 6=Sunday). Out-of-range values are ignored.
func (d *TimeDistribution) Add(hour, weekday int) {
	if hour < 0 || hour > 23 || weekday < 0 || weekday > 6 {
		return
	}
	d.Grid[hour][weekday]++
	d.TotalCommits++
}

// Finalize computes the peak cell after all commits are added. The scan is
// row-major with a strict greater-than comparison, so on ties the cell with
// the lowest hour, then the lowest weekday, wins.
func (d *TimeDistribution) Finalize() {
	var maxCount uint32
	peakHour, peakWeekday := 0, 0
	for h := range d.Grid {
		for w, count := range d.Grid[h] {
			if count > maxCount {
				maxCount = count
				peakHour = h
				peakWeekday = w
			}
		}
	}
	d.PeakHour = peakHour
	d.PeakWeekday = peakWeekday
}

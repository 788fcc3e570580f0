package schema

import "sort"

// ContributionCalendar is a day-indexed record of contribution counts over
// roughly one year, grouped into weeks as the upstream API returns them.
type ContributionCalendar struct {
	TotalContributions uint64             `json:"total_contributions"`
	Weeks              []ContributionWeek `json:"weeks"`
}

// ContributionWeek is one column of the calendar.
type ContributionWeek struct {
	Days []ContributionDay `json:"days"`
}

// ContributionDay is a single calendar cell.
type ContributionDay struct {
	Date              string `json:"date"` // YYYY-MM-DD
	ContributionCount uint64 `json:"contribution_count"`
	Level             uint8  `json:"level"` // 0 (none) .. 4 (highest quartile)
}

// StreakStats is derived from a calendar snapshot, never stored.
type StreakStats struct {
	CurrentStreak   uint64  `json:"current_streak"`
	LongestStreak   uint64  `json:"longest_streak"`
	StreakStartDate *string `json:"streak_start_date"`
}

// Days flattens the calendar into a single sequence sorted ascending by
// date. YYYY-MM-DD strings sort correctly as plain strings.
func (c *ContributionCalendar) Days() []ContributionDay {
	var days []ContributionDay
	for _, w := range c.Weeks {
		days = append(days, w.Days...)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})
	return days
}

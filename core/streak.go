// Package core derives analytics from fetched activity: contribution
// streaks, the commit time distribution, language usage, and the assembly
// of the final stats record.
package core

import "github.com/huangsam/devpulse/schema"

// ComputeStreaks derives streak stats from a contribution calendar.
//
// The longest streak is the longest run of consecutive nonzero days in date
// order. The current streak is counted backward from the end of the
// calendar, first skipping any trailing zero days, so a streak that ended
// yesterday (or a calendar whose final cells are in the future) still
// reports as current.
func ComputeStreaks(calendar *schema.ContributionCalendar) *schema.StreakStats {
	if calendar == nil {
		return nil
	}
	days := calendar.Days()
	stats := &schema.StreakStats{}

	var run uint64
	for _, day := range days {
		if day.ContributionCount > 0 {
			run++
			if run > stats.LongestStreak {
				stats.LongestStreak = run
			}
		} else {
			run = 0
		}
	}

	idx := len(days) - 1
	for idx >= 0 && days[idx].ContributionCount == 0 {
		idx--
	}
	for idx >= 0 && days[idx].ContributionCount > 0 {
		stats.CurrentStreak++
		date := days[idx].Date
		stats.StreakStartDate = &date
		idx--
	}

	return stats
}

package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/devpulse/internal/contract"
	"github.com/huangsam/devpulse/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeStatsText renders the human-readable report: identity and count
// lines, then one table per extended section that is present.
func writeStatsText(stats *schema.UserStats, cfg *contract.Config, w io.Writer) error {
	writeIdentity(stats, w)
	writeCounts(stats, w)
	writeContributions(stats, w)
	writeStreaks(stats.Streaks, w)

	if len(stats.PinnedRepos) > 0 {
		if err := writePinnedTable(stats.PinnedRepos, w); err != nil {
			return err
		}
	}
	if len(stats.LanguageUsage) > 0 {
		if err := writeLanguageTable(stats, w); err != nil {
			return err
		}
	}
	if stats.TimeDistribution != nil {
		writeTimeDistribution(stats.TimeDistribution, w)
	}

	fmt.Fprintf(w, "\nSource: %s. Cache backend: %s\n", cfg.Source, cfg.CacheBackend)
	return nil
}

func writeIdentity(stats *schema.UserStats, w io.Writer) {
	display := stats.Username
	if stats.Name != nil && *stats.Name != "" {
		display = fmt.Sprintf("%s (%s)", *stats.Name, stats.Username)
	}
	fmt.Fprintf(w, "GitHub activity for %s\n", display)

	writeOptional(w, "Bio", stats.Bio)
	writeOptional(w, "Company", stats.Company)
	writeOptional(w, "Location", stats.Location)
	writeOptional(w, "Website", stats.WebsiteURL)
	writeOptional(w, "Twitter", stats.TwitterUsername)
	fmt.Fprintln(w)
}

func writeOptional(w io.Writer, label string, value *string) {
	if value != nil && *value != "" {
		fmt.Fprintf(w, "%s: %s\n", label, *value)
	}
}

func writeCounts(stats *schema.UserStats, w io.Writer) {
	fmt.Fprintf(w, "Repos: %d | Stars: %d | Forks: %d | Followers: %d\n",
		stats.Repos, stats.Stars, stats.Forks, stats.Followers)
	fmt.Fprintf(w, "Commits: %d | PRs: %d | Issues: %d\n",
		stats.Commits, stats.PRs, stats.Issues)
	fmt.Fprintf(w, "Account age: %d years (%d days)\n",
		stats.AccountAgeYears, stats.AccountAgeDays)
	if stats.Organizations != nil {
		fmt.Fprintf(w, "Organizations: %d\n", *stats.Organizations)
	}
}

func writeContributions(stats *schema.UserStats, w io.Writer) {
	if stats.ContributionCalendar != nil {
		fmt.Fprintf(w, "Contributions (last year): %d\n", stats.ContributionCalendar.TotalContributions)
	}
	if stats.RestrictedContributions != nil && *stats.RestrictedContributions > 0 {
		fmt.Fprintf(w, "Restricted contributions: %d\n", *stats.RestrictedContributions)
	}
	if len(stats.ContributionYears) > 0 {
		years := make([]string, len(stats.ContributionYears))
		for i, year := range stats.ContributionYears {
			years[i] = strconv.Itoa(year)
		}
		fmt.Fprintf(w, "Active years: %s\n", strings.Join(years, ", "))
	}
	writeOptional(w, "First issue", stats.FirstIssueContribution)
	writeOptional(w, "First PR", stats.FirstPullRequestContribution)
	writeOptional(w, "First repo", stats.FirstRepositoryContribution)
}

func writeStreaks(streaks *schema.StreakStats, w io.Writer) {
	if streaks == nil {
		return
	}
	fmt.Fprintf(w, "Current streak: %d days | Longest streak: %d days\n",
		streaks.CurrentStreak, streaks.LongestStreak)
	if streaks.StreakStartDate != nil {
		fmt.Fprintf(w, "Streak started: %s\n", *streaks.StreakStartDate)
	}
}

// writePinnedTable renders the pinned repositories with their recent
// activity attributed to the user.
func writePinnedTable(pinned []schema.PinnedRepo, w io.Writer) error {
	fmt.Fprintln(w, "\nPinned repositories:")
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Repo", "Stars", "Forks", "Language", "Commits", "+Lines", "-Lines", "Last Commit"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := getMaxNameWidth()
	var data [][]string
	for _, repo := range pinned {
		language := "-"
		if repo.Language != nil {
			language = *repo.Language
		}
		lastCommit := "-"
		if repo.LastCommitDate != nil {
			lastCommit = *repo.LastCommitDate
		}
		data = append(data, []string{
			contract.TruncateName(repo.Name, maxWidth),
			strconv.FormatUint(repo.Stars, 10),
			strconv.FormatUint(repo.Forks, 10),
			language,
			strconv.FormatUint(repo.RecentCommits, 10),
			strconv.FormatUint(repo.RecentAdditions, 10),
			strconv.FormatUint(repo.RecentDeletions, 10),
			lastCommit,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeLanguageTable renders the ranked language usage with colored share
// labels.
func writeLanguageTable(stats *schema.UserStats, w io.Writer) error {
	fmt.Fprintln(w, "\nLanguage usage:")
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Language", "Changes", "Percent", "Label"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := getMaxNameWidth()
	var data [][]string
	for i, usage := range stats.LanguageUsage {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(usage.Name, maxWidth),
			strconv.FormatUint(usage.Changes, 10),
			fmt.Sprintf("%.1f%%", usage.Percent),
			contract.GetColorLabel(usage.Percent),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if stats.LanguageTotalChanges != nil && stats.LanguageSampledCommits != nil {
		fmt.Fprintf(w, "Counted %d changed lines across %d commits",
			*stats.LanguageTotalChanges, *stats.LanguageSampledCommits)
		if stats.LanguageFailedCommits != nil && *stats.LanguageFailedCommits > 0 {
			fmt.Fprintf(w, " (%d commits skipped)", *stats.LanguageFailedCommits)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// writeTimeDistribution renders per-weekday commit totals plus the peak cell.
func writeTimeDistribution(dist *schema.TimeDistribution, w io.Writer) {
	fmt.Fprintf(w, "\nCommit times (%s):\n", dist.Timezone)
	if dist.TotalCommits == 0 {
		fmt.Fprintln(w, "No dated commits sampled.")
		return
	}

	var byWeekday [7]uint64
	for hour := range dist.Grid {
		for weekday, count := range dist.Grid[hour] {
			byWeekday[weekday] += uint64(count)
		}
	}
	for weekday, total := range byWeekday {
		bar := strings.Repeat("#", int(total*40/dist.TotalCommits))
		fmt.Fprintf(w, "%s %5d %s\n", formatWeekday(weekday), total, bar)
	}

	fmt.Fprintf(w, "Peak: %s %02d:00 | Total commits: %d\n",
		formatWeekday(dist.PeakWeekday), dist.PeakHour, dist.TotalCommits)
	if dist.EarliestDate != nil && dist.LatestDate != nil {
		fmt.Fprintf(w, "Sampled range: %s to %s\n", *dist.EarliestDate, *dist.LatestDate)
	}
}

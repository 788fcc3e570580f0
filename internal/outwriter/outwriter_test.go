package outwriter

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/devpulse/internal/contract"
	"github.com/huangsam/devpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textConfig() *contract.Config {
	return &contract.Config{
		Username:     "octocat",
		Source:       schema.GraphQLSource,
		Output:       schema.TextOut,
		CacheBackend: schema.SQLiteBackend,
	}
}

func fullStats() *schema.UserStats {
	name := "The Octocat"
	location := "San Francisco"
	startDate := "2024-02-20"
	total := uint64(300)
	sampled := uint64(42)
	earliest, latest := "2024-01-02", "2024-03-05"
	lastCommit := "2024-03-05"

	dist := schema.NewTimeDistribution("+00:00")
	dist.Add(9, 0)
	dist.Add(9, 0)
	dist.Add(22, 4)
	dist.Finalize()
	dist.EarliestDate = &earliest
	dist.LatestDate = &latest

	return &schema.UserStats{
		Name:            &name,
		Username:        "octocat",
		Location:        &location,
		Repos:           8,
		Stars:           125,
		Forks:           15,
		Followers:       400,
		Commits:         1200,
		PRs:             90,
		Issues:          45,
		AccountAgeYears: 13,
		AccountAgeDays:  4748,
		ContributionCalendar: &schema.ContributionCalendar{
			TotalContributions: 812,
		},
		Streaks: &schema.StreakStats{
			CurrentStreak:   14,
			LongestStreak:   60,
			StreakStartDate: &startDate,
		},
		PinnedRepos: []schema.PinnedRepo{
			{Name: "app", Stars: 42, Forks: 7, RecentCommits: 30, LastCommitDate: &lastCommit},
		},
		LanguageUsage: []schema.LanguageUsage{
			{Name: "Go", Changes: 200, Percent: 66.7},
			{Name: "Python", Changes: 100, Percent: 33.3},
		},
		LanguageTotalChanges:   &total,
		LanguageSampledCommits: &sampled,
		TimeDistribution:       dist,
	}
}

func TestWriteStatsTextSections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeStatsText(fullStats(), textConfig(), &buf))
	out := buf.String()

	assert.Contains(t, out, "GitHub activity for The Octocat (octocat)")
	assert.Contains(t, out, "Location: San Francisco")
	assert.Contains(t, out, "Repos: 8 | Stars: 125 | Forks: 15 | Followers: 400")
	assert.Contains(t, out, "Commits: 1200 | PRs: 90 | Issues: 45")
	assert.Contains(t, out, "Account age: 13 years (4748 days)")
	assert.Contains(t, out, "Contributions (last year): 812")
	assert.Contains(t, out, "Current streak: 14 days | Longest streak: 60 days")
	assert.Contains(t, out, "Streak started: 2024-02-20")
	assert.Contains(t, out, "Pinned repositories:")
	assert.Contains(t, out, "Language usage:")
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "Counted 300 changed lines across 42 commits")
	assert.Contains(t, out, "Commit times (+00:00):")
	assert.Contains(t, out, "Peak: Mon 09:00 | Total commits: 3")
	assert.Contains(t, out, "Sampled range: 2024-01-02 to 2024-03-05")
}

func TestWriteStatsTextBasicRecord(t *testing.T) {
	stats := &schema.UserStats{Username: "octocat", Repos: 2}

	var buf bytes.Buffer
	require.NoError(t, writeStatsText(stats, textConfig(), &buf))
	out := buf.String()

	assert.Contains(t, out, "GitHub activity for octocat")
	// Extended sections stay silent when absent
	assert.NotContains(t, out, "Pinned repositories:")
	assert.NotContains(t, out, "Language usage:")
	assert.NotContains(t, out, "Commit times")
	assert.NotContains(t, out, "Current streak")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]int{"value": 1}))
	assert.JSONEq(t, `{"value":1}`, buf.String())
	// Encoder indents with two spaces
	assert.Contains(t, buf.String(), "  \"value\": 1")
}

func TestWriteWithFile(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "report.txt")

	err := writeWithFile(outputPath, func(w io.Writer) error {
		_, err := w.Write([]byte("hello"))
		return err
	}, "Wrote report")
	require.NoError(t, err)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}

func TestWriteWithFileBadPath(t *testing.T) {
	err := writeWithFile("/nonexistent/dir/report.txt", func(io.Writer) error {
		return nil
	}, "Wrote report")
	assert.Error(t, err)
}

func TestFormatWeekday(t *testing.T) {
	assert.Equal(t, "Mon", formatWeekday(0))
	assert.Equal(t, "Sun", formatWeekday(6))
	assert.Equal(t, "day 7", formatWeekday(7))
}

func TestWriteParquetFilesRequiresSections(t *testing.T) {
	cfg := textConfig()
	cfg.Output = schema.ParquetOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "out")

	err := writeParquetFiles(&schema.UserStats{Username: "octocat"}, cfg)
	assert.Error(t, err)
}

func TestWriteParquetFilesWritesSections(t *testing.T) {
	cfg := textConfig()
	cfg.Output = schema.ParquetOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "out")

	require.NoError(t, writeParquetFiles(fullStats(), cfg))

	_, err := os.Stat(cfg.OutputFile + ".language_usage.parquet")
	assert.NoError(t, err)
	// The sample calendar has no weeks, so no day rows were produced
	_, err = os.Stat(cfg.OutputFile + ".contribution_days.parquet")
	assert.True(t, os.IsNotExist(err))
}

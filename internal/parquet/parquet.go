// Package parquet exports fetched activity stats to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/huangsam/devpulse/schema"
	"github.com/parquet-go/parquet-go"
)

// LanguageUsageRow is one ranked language with its attributed line changes.
type LanguageUsageRow struct {
	// Username is the user the usage was computed for
	Username string `parquet:"username,snappy"`

	// Rank is the 1-based position in the ranking
	Rank int32 `parquet:"rank,snappy"`

	// Language is the classified language name
	Language string `parquet:"language,snappy"`

	// Changes is the number of changed lines attributed to the language
	Changes int64 `parquet:"changes,snappy"`

	// Percent is the share of all counted changes (0-100)
	Percent float64 `parquet:"percent,snappy"`
}

// ContributionDayRow is one cell of the contribution calendar.
type ContributionDayRow struct {
	// Username is the user the calendar belongs to
	Username string `parquet:"username,snappy"`

	// Date is the calendar day in YYYY-MM-DD form
	Date string `parquet:"date,snappy"`

	// Contributions is the contribution count for the day
	Contributions int64 `parquet:"contributions,snappy"`

	// Level is the rendered intensity quartile (0-4)
	Level int32 `parquet:"level,snappy"`
}

// WriteLanguageUsageParquet writes the ranked language rows to a Parquet file.
func WriteLanguageUsageParquet(data []LanguageUsageRow, outputPath string) error {
	return writeRows(data, outputPath)
}

// WriteContributionDaysParquet writes the calendar rows to a Parquet file.
func WriteContributionDaysParquet(data []ContributionDayRow, outputPath string) error {
	return writeRows(data, outputPath)
}

// writeRows writes any row slice using struct schema inference; the Parquet
// schema is derived from the struct tags.
func writeRows[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// ConvertLanguageUsage flattens the ranked usage list into Parquet rows.
func ConvertLanguageUsage(stats *schema.UserStats) []LanguageUsageRow {
	rows := make([]LanguageUsageRow, len(stats.LanguageUsage))
	for i, usage := range stats.LanguageUsage {
		rows[i] = LanguageUsageRow{
			Username: stats.Username,
			Rank:     int32(i + 1),
			Language: usage.Name,
			Changes:  int64(usage.Changes),
			Percent:  usage.Percent,
		}
	}
	return rows
}

// ConvertContributionDays flattens the calendar into Parquet rows, one per
// day in ascending date order.
func ConvertContributionDays(stats *schema.UserStats) []ContributionDayRow {
	if stats.ContributionCalendar == nil {
		return nil
	}
	days := stats.ContributionCalendar.Days()
	rows := make([]ContributionDayRow, len(days))
	for i, day := range days {
		rows[i] = ContributionDayRow{
			Username:      stats.Username,
			Date:          day.Date,
			Contributions: int64(day.ContributionCount),
			Level:         int32(day.Level),
		}
	}
	return rows
}

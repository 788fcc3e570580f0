// Package outwriter renders the final stats record to its configured
// destination: pretty JSON, human-readable tables, or Parquet files.
package outwriter

import (
	"fmt"
	"io"

	"github.com/huangsam/devpulse/internal/contract"
	"github.com/huangsam/devpulse/schema"
)

// WriteStats outputs the stats record, dispatching on the configured format.
func WriteStats(stats *schema.UserStats, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, stats)
		}, "Wrote JSON")
	case schema.ParquetOut:
		return writeParquetFiles(stats, cfg)
	default:
		// Default to human-readable text
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStatsText(stats, cfg, w)
		}, "Wrote report")
	}
}

// weekdayNames is indexed by the Monday-based weekday of the distribution grid.
var weekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func formatWeekday(weekday int) string {
	if weekday < 0 || weekday >= len(weekdayNames) {
		return fmt.Sprintf("day %d", weekday)
	}
	return weekdayNames[weekday]
}

package outwriter

import (
	"errors"
	"fmt"

	"github.com/huangsam/devpulse/internal/contract"
	"github.com/huangsam/devpulse/internal/parquet"
	"github.com/huangsam/devpulse/schema"
)

// writeParquetFiles exports the tabular sections of the record to Parquet,
// one file per section under the configured output prefix.
func writeParquetFiles(stats *schema.UserStats, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("--output is required for parquet format")
	}

	usageRows := parquet.ConvertLanguageUsage(stats)
	dayRows := parquet.ConvertContributionDays(stats)
	if len(usageRows) == 0 && len(dayRows) == 0 {
		return errors.New("no tabular sections to export; run with the graphql source")
	}

	if len(usageRows) > 0 {
		usageFile := cfg.OutputFile + ".language_usage.parquet"
		if err := parquet.WriteLanguageUsageParquet(usageRows, usageFile); err != nil {
			return fmt.Errorf("failed to write language usage: %w", err)
		}
		fmt.Printf("Exported %d language rows to: %s\n", len(usageRows), usageFile)
	}

	if len(dayRows) > 0 {
		daysFile := cfg.OutputFile + ".contribution_days.parquet"
		if err := parquet.WriteContributionDaysParquet(dayRows, daysFile); err != nil {
			return fmt.Errorf("failed to write contribution days: %w", err)
		}
		fmt.Printf("Exported %d calendar rows to: %s\n", len(dayRows), daysFile)
	}

	return nil
}

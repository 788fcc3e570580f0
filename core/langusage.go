package core

import (
	"context"
	"sort"
	"strings"

	"github.com/huangsam/devpulse/internal/contract"
	"github.com/huangsam/devpulse/internal/langmap"
	"github.com/huangsam/devpulse/schema"
)

// UsageConfig narrows the runtime config to what language attribution needs.
type UsageConfig struct {
	TopN       int
	Exclude    map[string]struct{} // lowercased language names
	Categories map[string]struct{} // lowercased categories
}

// UsageResult is the outcome of one attribution pass.
type UsageResult struct {
	Usage          []schema.LanguageUsage
	TotalChanges   uint64
	SampledCommits uint64
	FailedCommits  uint64
}

// ComputeUsage fetches the changed-file list of each sampled commit and
// attributes line changes to languages by file extension. A commit whose
// detail fetch fails is counted and skipped; the rest of the sample still
// contributes. Files with an unknown extension, a filtered category, an
// excluded language, or zero changed lines are ignored.
func ComputeUsage(ctx context.Context, fetcher contract.CommitFileFetcher, samples []schema.CommitSample, cfg UsageConfig) (UsageResult, error) {
	result := UsageResult{}
	changesByLang := make(map[string]uint64)

	for _, sample := range samples {
		if err := ctx.Err(); err != nil {
			return UsageResult{}, err
		}
		files, err := fetcher.CommitFiles(ctx, sample.Repo, sample.SHA)
		if err != nil {
			result.FailedCommits++
			continue
		}
		result.SampledCommits++

		for _, file := range files {
			lang, ok := langmap.ForFilename(file.Filename)
			if !ok {
				continue
			}
			if _, keep := cfg.Categories[strings.ToLower(lang.Category)]; !keep {
				continue
			}
			if _, dropped := cfg.Exclude[strings.ToLower(lang.Name)]; dropped {
				continue
			}
			changes := file.Additions + file.Deletions
			if file.Changes != nil {
				changes = *file.Changes
			}
			if changes == 0 {
				continue
			}
			changesByLang[lang.Name] += changes
			result.TotalChanges += changes
		}
	}

	if result.TotalChanges == 0 {
		return result, nil
	}

	result.Usage = make([]schema.LanguageUsage, 0, len(changesByLang))
	for name, changes := range changesByLang {
		result.Usage = append(result.Usage, schema.LanguageUsage{
			Name:    name,
			Changes: changes,
			Percent: float64(changes) / float64(result.TotalChanges) * 100,
		})
	}
	sort.Slice(result.Usage, func(i, j int) bool {
		if result.Usage[i].Changes != result.Usage[j].Changes {
			return result.Usage[i].Changes > result.Usage[j].Changes
		}
		return result.Usage[i].Name < result.Usage[j].Name
	})
	if cfg.TopN > 0 && len(result.Usage) > cfg.TopN {
		result.Usage = result.Usage[:cfg.TopN]
	}
	return result, nil
}

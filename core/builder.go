package core

import (
	"context"
	"time"

	"github.com/huangsam/devpulse/internal/contract"
	"github.com/huangsam/devpulse/internal/gh"
	"github.com/huangsam/devpulse/schema"
)

// BuildRESTStats assembles the basic stats record from the REST endpoints:
// profile, repository totals, and the three search counts. The extended
// sections stay empty on this path.
func BuildRESTStats(ctx context.Context, client *gh.Client, cfg *contract.Config) (*schema.UserStats, error) {
	profile, err := client.FetchProfile(ctx, cfg.Username)
	if err != nil {
		return nil, err
	}
	repos, err := client.FetchAllRepos(ctx, cfg.Username, cfg.Orgs)
	if err != nil {
		return nil, err
	}
	commits, prs, issues, err := client.CountAll(ctx, cfg.Username)
	if err != nil {
		return nil, err
	}

	stats := &schema.UserStats{
		Name:      profile.Name,
		Username:  profile.Login,
		Followers: profile.Followers,
		Repos:     uint64(len(repos)),
		Commits:   commits,
		PRs:       prs,
		Issues:    issues,
	}
	for _, repo := range repos {
		stats.Stars += repo.StargazersCount
		stats.Forks += repo.ForksCount
	}
	stats.AccountAgeYears, stats.AccountAgeDays = accountAge(profile.CreatedAt, time.Now())

	return stats, nil
}

// BuildGraphQLStats assembles the full stats record: the GraphQL overview
// (profile, repository totals, contributions calendar), derived streaks,
// the pinned-repo queries, and the REST-sampled time distribution and
// language usage.
func BuildGraphQLStats(ctx context.Context, client *gh.Client, cfg *contract.Config) (*schema.UserStats, error) {
	account, err := client.FetchUserOverview(ctx, cfg.Username)
	if err != nil {
		return nil, err
	}
	contrib := account.Contributions

	stats := &schema.UserStats{
		Name:            account.Name,
		Username:        account.Login,
		Bio:             account.Bio,
		Company:         account.Company,
		Location:        account.Location,
		WebsiteURL:      account.WebsiteURL,
		TwitterUsername: account.TwitterUsername,
		AvatarURL:       account.AvatarURL,
		Organizations:   &account.Organizations,

		Repos:     account.RepoCount,
		Stars:     account.Stars,
		Forks:     account.Forks,
		Followers: account.Followers,
		Commits:   contrib.TotalCommits,
		PRs:       contrib.TotalPRs,
		Issues:    contrib.TotalIssues,

		TotalRepositoryContributions: &contrib.TotalRepos,
		RestrictedContributions:      &contrib.Restricted,
		ContributionYears:            contrib.Years,
		FirstIssueContribution:       contrib.FirstIssue,
		FirstPullRequestContribution: contrib.FirstPR,
		FirstRepositoryContribution:  contrib.FirstRepo,

		ContributionCalendar: contrib.Calendar,
		Streaks:              ComputeStreaks(contrib.Calendar),
	}
	stats.AccountAgeYears, stats.AccountAgeDays = accountAge(account.CreatedAt, time.Now())

	if len(cfg.Pinned) > 0 {
		stats.PinnedRepos = client.FetchPinnedRepos(ctx, cfg.Pinned, account.ID)
	}

	if cfg.CommitsLimit > 0 {
		samples, err := client.FetchCommitSample(ctx, cfg.Username, cfg.CommitsLimit)
		if err != nil {
			return nil, err
		}
		stats.TimeDistribution = ComputeDistribution(samples, cfg.UTCOffset, cfg.TimezoneLabel)

		usage, err := ComputeUsage(ctx, client, samples, UsageConfig{
			TopN:       cfg.TopN,
			Exclude:    cfg.Exclude,
			Categories: cfg.Categories,
		})
		if err != nil {
			return nil, err
		}
		stats.LanguageUsage = usage.Usage
		stats.LanguageTotalChanges = &usage.TotalChanges
		stats.LanguageSampledCommits = &usage.SampledCommits
		stats.LanguageFailedCommits = &usage.FailedCommits
	}

	return stats, nil
}

// accountAge reports whole years and days since the account was created.
// Years use a flat 365-day year, matching the rest of the output.
func accountAge(createdAt, now time.Time) (years, days uint64) {
	elapsed := now.Sub(createdAt)
	if elapsed < 0 {
		return 0, 0
	}
	days = uint64(elapsed.Hours() / 24)
	return days / 365, days
}

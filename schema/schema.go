// Package schema holds the data model shared across devpulse.
package schema

// UserStats is the flat record assembled from one fetch run. Optional
// sections are pointers (or nil slices) so that only the sections the
// exercised source path produced end up in the serialized output.
type UserStats struct {
	Name            *string `json:"name"`
	Username        string  `json:"username"`
	Bio             *string `json:"bio,omitempty"`
	Company         *string `json:"company,omitempty"`
	Location        *string `json:"location,omitempty"`
	WebsiteURL      *string `json:"website_url,omitempty"`
	TwitterUsername *string `json:"twitter_username,omitempty"`
	AvatarURL       *string `json:"avatar_url,omitempty"`
	Organizations   *uint64 `json:"organizations,omitempty"`

	Repos     uint64 `json:"repos"`
	Stars     uint64 `json:"stars"`
	Forks     uint64 `json:"forks"`
	Followers uint64 `json:"followers"`
	Commits   uint64 `json:"commits"`
	PRs       uint64 `json:"prs"`
	Issues    uint64 `json:"issues"`

	TotalRepositoryContributions *uint64 `json:"total_repository_contributions,omitempty"`
	RestrictedContributions      *uint64 `json:"restricted_contributions,omitempty"`
	ContributionYears            []int   `json:"contribution_years,omitempty"`
	FirstIssueContribution       *string `json:"first_issue_contribution,omitempty"`
	FirstPullRequestContribution *string `json:"first_pull_request_contribution,omitempty"`
	FirstRepositoryContribution  *string `json:"first_repository_contribution,omitempty"`

	AccountAgeYears uint64 `json:"account_age_years"`
	AccountAgeDays  uint64 `json:"account_age_days"`

	ContributionCalendar   *ContributionCalendar `json:"contribution_calendar,omitempty"`
	Streaks                *StreakStats          `json:"streaks,omitempty"`
	PinnedRepos            []PinnedRepo          `json:"pinned_repos,omitempty"`
	TimeDistribution       *TimeDistribution     `json:"time_distribution,omitempty"`
	LanguageUsage          []LanguageUsage       `json:"language_usage,omitempty"`
	LanguageTotalChanges   *uint64               `json:"language_total_changes,omitempty"`
	LanguageSampledCommits *uint64               `json:"language_sampled_commits,omitempty"`
	LanguageFailedCommits  *uint64               `json:"language_failed_commits,omitempty"`
}

// PinnedRepo is a showcased repository with recent activity attributed
// to the fetched user.
type PinnedRepo struct {
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	Stars           uint64  `json:"stars"`
	Forks           uint64  `json:"forks"`
	Language        *string `json:"language"`
	LanguageColor   *string `json:"language_color"`
	RecentAdditions uint64  `json:"recent_additions"`
	RecentDeletions uint64  `json:"recent_deletions"`
	RecentCommits   uint64  `json:"recent_commits"`
	LastCommitDate  *string `json:"last_commit_date"`
}

package gh

import "time"

// GraphQL wire shapes. These mirror the embedded queries field for field;
// anything GitHub may omit is a pointer.

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type userOverviewData struct {
	User *userNode `json:"user"`
}

type userNode struct {
	ID                      string                  `json:"id"`
	Login                   string                  `json:"login"`
	Name                    *string                 `json:"name"`
	Bio                     *string                 `json:"bio"`
	Company                 *string                 `json:"company"`
	Location                *string                 `json:"location"`
	WebsiteURL              *string                 `json:"websiteUrl"`
	TwitterUsername         *string                 `json:"twitterUsername"`
	AvatarURL               *string                 `json:"avatarUrl"`
	CreatedAt               time.Time               `json:"createdAt"`
	Followers               totalCount              `json:"followers"`
	Organizations           totalCount              `json:"organizations"`
	Repositories            repositoryConnection    `json:"repositories"`
	ContributionsCollection contributionsCollection `json:"contributionsCollection"`
}

type totalCount struct {
	TotalCount uint64 `json:"totalCount"`
}

type repositoryConnection struct {
	TotalCount uint64          `json:"totalCount"`
	Nodes      []repoCountNode `json:"nodes"`
	PageInfo   pageInfo        `json:"pageInfo"`
}

type repoCountNode struct {
	StargazerCount uint64 `json:"stargazerCount"`
	ForkCount      uint64 `json:"forkCount"`
}

type pageInfo struct {
	HasNextPage bool    `json:"hasNextPage"`
	EndCursor   *string `json:"endCursor"`
}

type contributionsCollection struct {
	TotalCommitContributions      uint64                `json:"totalCommitContributions"`
	TotalPullRequestContributions uint64                `json:"totalPullRequestContributions"`
	TotalIssueContributions       uint64                `json:"totalIssueContributions"`
	TotalRepositoryContributions  uint64                `json:"totalRepositoryContributions"`
	RestrictedContributionsCount  uint64                `json:"restrictedContributionsCount"`
	ContributionYears             []int                 `json:"contributionYears"`
	FirstIssueContribution        *occurredAt           `json:"firstIssueContribution"`
	FirstPullRequestContribution  *occurredAt           `json:"firstPullRequestContribution"`
	FirstRepositoryContribution   *occurredAt           `json:"firstRepositoryContribution"`
	ContributionCalendar          *contributionCalendar `json:"contributionCalendar"`
}

// occurredAt decodes the Created*Contribution union members; restricted
// variants carry no occurredAt and decode to a nil field.
type occurredAt struct {
	OccurredAt *string `json:"occurredAt"`
}

type contributionCalendar struct {
	TotalContributions uint64             `json:"totalContributions"`
	Weeks              []contributionWeek `json:"weeks"`
}

type contributionWeek struct {
	ContributionDays []contributionDay `json:"contributionDays"`
}

type contributionDay struct {
	Date              string `json:"date"`
	ContributionCount uint64 `json:"contributionCount"`
	ContributionLevel string `json:"contributionLevel"`
}

type pinnedRepoData struct {
	Repository *pinnedRepoNode `json:"repository"`
}

type pinnedRepoNode struct {
	Name            string            `json:"name"`
	Description     *string           `json:"description"`
	StargazerCount  uint64            `json:"stargazerCount"`
	ForkCount       uint64            `json:"forkCount"`
	PrimaryLanguage *languageNode     `json:"primaryLanguage"`
	DefaultBranch   *defaultBranchRef `json:"defaultBranchRef"`
}

type languageNode struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

type defaultBranchRef struct {
	Target *branchTarget `json:"target"`
}

type branchTarget struct {
	History *commitHistory `json:"history"`
}

type commitHistory struct {
	TotalCount uint64              `json:"totalCount"`
	Nodes      []commitHistoryNode `json:"nodes"`
}

type commitHistoryNode struct {
	CommittedDate string `json:"committedDate"`
	Additions     uint64 `json:"additions"`
	Deletions     uint64 `json:"deletions"`
}

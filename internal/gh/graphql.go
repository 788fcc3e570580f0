package gh

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/huangsam/devpulse/internal"
	"github.com/huangsam/devpulse/internal/contract"
	"github.com/huangsam/devpulse/schema"
)

//go:embed queries/user.graphql
var userOverviewQuery string

//go:embed queries/pinned.graphql
var pinnedRepoQuery string

// UserAccount is the aggregate of one GraphQL overview walk: the profile
// fields, the star and fork totals summed across every repository page, and
// the contributions collection.
type UserAccount struct {
	ID              string
	Login           string
	Name            *string
	Bio             *string
	Company         *string
	Location        *string
	WebsiteURL      *string
	TwitterUsername *string
	AvatarURL       *string
	CreatedAt       time.Time

	Followers     uint64
	Organizations uint64
	RepoCount     uint64
	Stars         uint64
	Forks         uint64

	Contributions ContributionsSummary
}

// ContributionsSummary is the contributionsCollection payload with the
// calendar already converted into the output shape.
type ContributionsSummary struct {
	TotalCommits uint64
	TotalPRs     uint64
	TotalIssues  uint64
	TotalRepos   uint64
	Restricted   uint64
	Years        []int
	FirstIssue   *string
	FirstPR      *string
	FirstRepo    *string
	Calendar     *schema.ContributionCalendar
}

// FetchUserOverview runs the overview query, following the repositories
// cursor until every page of star and fork counts was summed. Profile and
// contribution fields are taken from the first page; later pages only feed
// the repository totals.
func (c *Client) FetchUserOverview(ctx context.Context, username string) (*UserAccount, error) {
	var account *UserAccount
	var cursor *string

	for {
		vars := map[string]any{"login": username}
		if cursor != nil {
			vars["cursor"] = *cursor
		}

		var data userOverviewData
		if err := c.postGraphQL(ctx, userOverviewQuery, vars, "user overview", &data); err != nil {
			return nil, err
		}
		if data.User == nil {
			return nil, fmt.Errorf("user overview: no user named %q", username)
		}
		node := data.User

		if account == nil {
			account = &UserAccount{
				ID:              node.ID,
				Login:           node.Login,
				Name:            node.Name,
				Bio:             node.Bio,
				Company:         node.Company,
				Location:        node.Location,
				WebsiteURL:      node.WebsiteURL,
				TwitterUsername: node.TwitterUsername,
				AvatarURL:       node.AvatarURL,
				CreatedAt:       node.CreatedAt,
				Followers:       node.Followers.TotalCount,
				Organizations:   node.Organizations.TotalCount,
				RepoCount:       node.Repositories.TotalCount,
				Contributions:   summarizeContributions(node.ContributionsCollection),
			}
		}
		for _, repo := range node.Repositories.Nodes {
			account.Stars += repo.StargazerCount
			account.Forks += repo.ForkCount
		}

		info := node.Repositories.PageInfo
		if !info.HasNextPage || info.EndCursor == nil {
			return account, nil
		}
		cursor = info.EndCursor
	}
}

// FetchPinnedRepos runs the per-repository query for each configured
// "owner/name" entry, attributing recent default-branch activity to
// authorID. A repo that fails or does not exist is warned about and
// skipped, so one stale pin cannot abort the run.
func (c *Client) FetchPinnedRepos(ctx context.Context, pinned []string, authorID string) []schema.PinnedRepo {
	var repos []schema.PinnedRepo
	for _, entry := range pinned {
		owner, name, ok := strings.Cut(entry, "/")
		if !ok {
			internal.Warningf("skipping pinned repo %s: expected owner/name", entry)
			continue
		}

		vars := map[string]any{"owner": owner, "name": name, "authorId": authorID}
		var data pinnedRepoData
		if err := c.postGraphQL(ctx, pinnedRepoQuery, vars,
			fmt.Sprintf("pinned repo %s", entry), &data); err != nil {
			internal.Warningf("skipping pinned repo %s: %v", entry, err)
			continue
		}
		if data.Repository == nil {
			internal.Warningf("skipping pinned repo %s: not found", entry)
			continue
		}
		repos = append(repos, convertPinnedRepo(data.Repository))
	}
	return repos
}

func convertPinnedRepo(node *pinnedRepoNode) schema.PinnedRepo {
	repo := schema.PinnedRepo{
		Name:        node.Name,
		Description: node.Description,
		Stars:       node.StargazerCount,
		Forks:       node.ForkCount,
	}
	if node.PrimaryLanguage != nil {
		repo.Language = &node.PrimaryLanguage.Name
		repo.LanguageColor = node.PrimaryLanguage.Color
	}
	if node.DefaultBranch != nil && node.DefaultBranch.Target != nil &&
		node.DefaultBranch.Target.History != nil {
		history := node.DefaultBranch.Target.History
		repo.RecentCommits = history.TotalCount
		for _, commit := range history.Nodes {
			repo.RecentAdditions += commit.Additions
			repo.RecentDeletions += commit.Deletions
		}
		// History is newest first, so the first node carries the most
		// recent commit.
		if len(history.Nodes) > 0 {
			date := dateOnly(history.Nodes[0].CommittedDate)
			repo.LastCommitDate = &date
		}
	}
	return repo
}

// postGraphQL posts one query through the retry loop. A 200 response that
// carries a GraphQL errors array is terminal: the query itself is wrong or
// denied, and retrying would not change that.
func (c *Client) postGraphQL(ctx context.Context, query string, vars map[string]any, label string, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", label, err)
	}

	key := "/graphql#" + label
	if varsJSON, err := json.Marshal(vars); err == nil {
		key += "#" + string(varsJSON)
	}
	if c.cache != nil {
		if value, version, ts, err := c.cache.Get(key); err == nil &&
			version == cacheVersion && c.now().Sub(time.Unix(ts, 0)) < contract.CacheTTL {
			return json.Unmarshal(value, out)
		}
	}

	resp, err := c.send(ctx, RequestSpec{Method: http.MethodPost, Path: "/graphql", Body: body}, label)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphQLError  `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%s: parse response: %w", label, err)
	}
	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, gqlErr := range envelope.Errors {
			messages = append(messages, gqlErr.Message)
		}
		return fmt.Errorf("%s failed: %s", label, strings.Join(messages, "; "))
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%s: parse data: %w", label, err)
	}

	if c.cache != nil {
		_ = c.cache.Set(key, envelope.Data, cacheVersion, c.now().Unix())
	}
	return nil
}

func summarizeContributions(coll contributionsCollection) ContributionsSummary {
	summary := ContributionsSummary{
		TotalCommits: coll.TotalCommitContributions,
		TotalPRs:     coll.TotalPullRequestContributions,
		TotalIssues:  coll.TotalIssueContributions,
		TotalRepos:   coll.TotalRepositoryContributions,
		Restricted:   coll.RestrictedContributionsCount,
		Years:        coll.ContributionYears,
		FirstIssue:   firstContributionDate(coll.FirstIssueContribution),
		FirstPR:      firstContributionDate(coll.FirstPullRequestContribution),
		FirstRepo:    firstContributionDate(coll.FirstRepositoryContribution),
	}
	if coll.ContributionCalendar != nil {
		summary.Calendar = convertCalendar(*coll.ContributionCalendar)
	}
	return summary
}

func firstContributionDate(contribution *occurredAt) *string {
	if contribution == nil || contribution.OccurredAt == nil {
		return nil
	}
	date := dateOnly(*contribution.OccurredAt)
	return &date
}

func convertCalendar(calendar contributionCalendar) *schema.ContributionCalendar {
	out := &schema.ContributionCalendar{
		TotalContributions: calendar.TotalContributions,
		Weeks:              make([]schema.ContributionWeek, 0, len(calendar.Weeks)),
	}
	for _, week := range calendar.Weeks {
		days := make([]schema.ContributionDay, 0, len(week.ContributionDays))
		for _, day := range week.ContributionDays {
			days = append(days, schema.ContributionDay{
				Date:              day.Date,
				ContributionCount: day.ContributionCount,
				Level:             contributionLevel(day.ContributionLevel),
			})
		}
		out.Weeks = append(out.Weeks, schema.ContributionWeek{Days: days})
	}
	return out
}

// contributionLevel maps GitHub's quartile enum onto 0..4. Unknown values
// collapse to zero rather than failing the calendar.
func contributionLevel(level string) uint8 {
	switch level {
	case "FIRST_QUARTILE":
		return 1
	case "SECOND_QUARTILE":
		return 2
	case "THIRD_QUARTILE":
		return 3
	case "FOURTH_QUARTILE":
		return 4
	default:
		return 0
	}
}

// dateOnly trims an ISO-8601 timestamp down to its calendar date.
func dateOnly(timestamp string) string {
	if ts, err := time.Parse(time.RFC3339, timestamp); err == nil {
		return ts.UTC().Format("2006-01-02")
	}
	if len(timestamp) >= 10 {
		return timestamp[:10]
	}
	return timestamp
}

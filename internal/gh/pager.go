package gh

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/huangsam/devpulse/internal"
)

// pageSize is the fixed per_page value for REST pagination.
const pageSize = 100

// fetchPaged walks a page-number REST endpoint from page 1 until an empty
// page or a page shorter than the page size signals exhaustion.
func fetchPaged[T any](ctx context.Context, c *Client, path string, base url.Values, label string) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		query := url.Values{}
		for k, v := range base {
			query[k] = v
		}
		query.Set("per_page", strconv.Itoa(pageSize))
		query.Set("page", strconv.Itoa(page))

		var batch []T
		if err := c.getJSON(ctx, path, query, fmt.Sprintf("%s page %d", label, page), &batch); err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}
		all = append(all, batch...)
		if len(batch) < pageSize {
			break
		}
	}
	return all, nil
}

// FetchAllRepos merges the user's own repositories with those of each
// configured organization, deduplicated by full name with the first
// occurrence winning. The user's own listing is required; an organization
// that fails after retries is warned about and skipped so one bad org cannot
// abort the whole run.
func (c *Client) FetchAllRepos(ctx context.Context, username string, orgs []string) ([]Repo, error) {
	seen := make(map[string]struct{})
	var all []Repo

	merge := func(repos []Repo) {
		for _, repo := range repos {
			if repo.FullName == "" {
				continue
			}
			if _, dup := seen[repo.FullName]; dup {
				continue
			}
			seen[repo.FullName] = struct{}{}
			all = append(all, repo)
		}
	}

	own, err := fetchPaged[Repo](ctx, c, "/users/"+url.PathEscape(username)+"/repos",
		url.Values{"type": {"owner"}}, "fetch user repos")
	if err != nil {
		return nil, err
	}
	merge(own)

	for _, org := range orgs {
		repos, err := fetchPaged[Repo](ctx, c, "/orgs/"+url.PathEscape(org)+"/repos",
			nil, fmt.Sprintf("fetch %s repos", org))
		if err != nil {
			internal.Warningf("skipping org %s: %v", org, err)
			continue
		}
		merge(repos)
	}

	return all, nil
}

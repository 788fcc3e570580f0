package gh

import (
	"context"
	"net/url"

	"golang.org/x/sync/errgroup"
)

// CountCommits returns the total number of commits authored by the user.
func (c *Client) CountCommits(ctx context.Context, username string) (uint64, error) {
	return c.searchTotal(ctx, "/search/commits", "author:"+username, "search commits")
}

// CountPRs returns the total number of pull requests authored by the user.
func (c *Client) CountPRs(ctx context.Context, username string) (uint64, error) {
	return c.searchTotal(ctx, "/search/issues", "author:"+username+" is:pr", "search PRs")
}

// CountIssues returns the total number of issues authored by the user.
func (c *Client) CountIssues(ctx context.Context, username string) (uint64, error) {
	return c.searchTotal(ctx, "/search/issues", "author:"+username+" is:issue", "search issues")
}

// CountAll runs the three count queries concurrently and joins them. The
// first error fails the whole triple; there is no partial success here.
func (c *Client) CountAll(ctx context.Context, username string) (commits, prs, issues uint64, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		commits, err = c.CountCommits(gctx, username)
		return err
	})
	g.Go(func() error {
		var err error
		prs, err = c.CountPRs(gctx, username)
		return err
	})
	g.Go(func() error {
		var err error
		issues, err = c.CountIssues(gctx, username)
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, 0, 0, err
	}
	return commits, prs, issues, nil
}

func (c *Client) searchTotal(ctx context.Context, path, q, label string) (uint64, error) {
	var result searchCount
	if err := c.getJSON(ctx, path, url.Values{"q": {q}, "per_page": {"1"}}, label, &result); err != nil {
		return 0, err
	}
	return result.TotalCount, nil
}

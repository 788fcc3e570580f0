package gh

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/huangsam/devpulse/internal/contract"
	"github.com/huangsam/devpulse/schema"
)

// FetchCommitSample returns up to limit of the user's most recent commits
// via the commit search endpoint, newest first. The walk stops at the
// limit, at an empty page, at a short page, or once ceil(limit/pageSize)
// pages were fetched, whichever comes first.
func (c *Client) FetchCommitSample(ctx context.Context, username string, limit int) ([]schema.CommitSample, error) {
	if limit <= 0 {
		return nil, nil
	}

	maxPages := (limit + pageSize - 1) / pageSize
	var samples []schema.CommitSample

	for page := 1; page <= maxPages && len(samples) < limit; page++ {
		query := url.Values{
			"q":        {"author:" + username},
			"sort":     {"author-date"},
			"order":    {"desc"},
			"per_page": {strconv.Itoa(pageSize)},
			"page":     {strconv.Itoa(page)},
		}

		var result commitSearchResponse
		if err := c.getJSON(ctx, "/search/commits", query,
			fmt.Sprintf("commit search page %d", page), &result); err != nil {
			return nil, err
		}
		if len(result.Items) == 0 {
			break
		}

		for _, item := range result.Items {
			if len(samples) >= limit {
				break
			}
			if item.Repository == nil || item.Commit == nil || item.SHA == nil {
				continue
			}
			sample := schema.CommitSample{
				Repo: item.Repository.FullName,
				SHA:  *item.SHA,
			}
			// Keep the sample even when the timestamp is missing or
			// unparsable; consumers tolerate partial data.
			if item.Commit.Author != nil {
				if ts, err := time.Parse(time.RFC3339, item.Commit.Author.Date); err == nil {
					utc := ts.UTC()
					sample.AuthoredAt = &utc
				}
			}
			samples = append(samples, sample)
		}

		if len(result.Items) < pageSize {
			break
		}
	}

	return samples, nil
}

// CommitFiles fetches the changed-file list of one commit.
func (c *Client) CommitFiles(ctx context.Context, repo, sha string) ([]contract.ChangedFile, error) {
	var detail commitDetail
	if err := c.getJSON(ctx, "/repos/"+repo+"/commits/"+url.PathEscape(sha), nil,
		"commit detail", &detail); err != nil {
		return nil, err
	}
	files := make([]contract.ChangedFile, 0, len(detail.Files))
	for _, f := range detail.Files {
		files = append(files, contract.ChangedFile{
			Filename:  f.Filename,
			Additions: f.Additions,
			Deletions: f.Deletions,
			Changes:   f.Changes,
		})
	}
	return files, nil
}

var _ contract.CommitFileFetcher = (*Client)(nil) // Compile-time check

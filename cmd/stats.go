package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/devpulse/core"
	"github.com/huangsam/devpulse/internal/gh"
	"github.com/huangsam/devpulse/internal/iocache"
	"github.com/huangsam/devpulse/internal/outwriter"
	"github.com/huangsam/devpulse/schema"
	"github.com/spf13/cobra"
)

// statsCmd fetches and renders activity stats for one user.
var statsCmd = &cobra.Command{
	Use:   "stats <username>",
	Short: "Fetch activity stats for a GitHub user",
	Long: `Fetch a user's GitHub activity and distill it into a single report.

The graphql source produces the full record: profile, repository totals,
the contribution calendar with streaks, pinned repositories, commit time
rhythms and language usage. The rest source produces the basic counts only
and works with tokens that lack GraphQL scopes.

A GitHub token must be provided via the GITHUB_TOKEN environment variable
(a .env file in the working directory is honored).

Examples:
  # Full report for a user
  devpulse stats octocat

  # Basic counts via REST, including two orgs' repositories
  devpulse stats octocat --source rest --orgs github,actions

  # JSON to a file, commit times in Central Europe
  devpulse stats octocat --timezone +01:00 --format json -o octocat.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		client := gh.NewClient(cfg.Token).WithCache(iocache.Store())

		fmt.Fprintf(os.Stderr, "🔎 Fetching %s stats for %s...\n", cfg.Source, cfg.Username)
		start := time.Now()

		var stats *schema.UserStats
		var err error
		switch cfg.Source {
		case schema.RESTSource:
			stats, err = core.BuildRESTStats(rootCtx, client, cfg)
		default:
			stats, err = core.BuildGraphQLStats(rootCtx, client, cfg)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "✅ Fetched in %v\n", time.Since(start).Round(time.Millisecond))
		return outwriter.WriteStats(stats, cfg)
	},
}

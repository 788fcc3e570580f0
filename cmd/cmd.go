// Package cmd defines the command-line interface for devpulse.
package cmd

import (
	"github.com/huangsam/devpulse/internal/contract"
	"github.com/huangsam/devpulse/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("source", string(schema.GraphQLSource), "API surface to fetch from: graphql or rest")
	rootCmd.PersistentFlags().StringSlice("orgs", nil, "Organizations whose repositories count toward totals (rest source)")
	rootCmd.PersistentFlags().StringSlice("pinned", nil, "Pinned repositories to showcase, as owner/name entries (graphql source)")
	rootCmd.PersistentFlags().Int("commits-limit", contract.DefaultCommitsLimit, "Maximum number of recent commits to sample (0 disables sampling)")
	rootCmd.PersistentFlags().Int("top-n", contract.DefaultTopN, "Number of languages to keep in the usage ranking")
	rootCmd.PersistentFlags().StringSlice("exclude", nil, "Language names to drop from the usage ranking")
	rootCmd.PersistentFlags().StringSlice("categories", nil, "Language categories to count: programming, markup, data, prose")
	rootCmd.PersistentFlags().String("timezone", contract.DefaultTimezone, "UTC offset for commit times, e.g. +02:00")
	rootCmd.PersistentFlags().String("format", string(schema.TextOut), "Output format: text or json or parquet")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Optional path to write output to (file prefix for parquet)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}

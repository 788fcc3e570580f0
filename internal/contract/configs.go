package contract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/devpulse/schema"
)

// Default values for configuration.
const (
	DefaultCommitsLimit = 1000
	MaxCommitsLimit     = 10000
	DefaultTopN         = 10
	MaxTopN             = 100
	DefaultTimezone     = "+00:00"
)

// CacheTTL is how long a cached upstream response stays fresh.
const CacheTTL = time.Hour

// DefaultCategories are the language categories counted when none are
// configured. Only real code by default; markup/data/prose opt in.
var DefaultCategories = []string{"programming"}

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	Source         string   `mapstructure:"source"`
	Orgs           []string `mapstructure:"orgs"`
	Pinned         []string `mapstructure:"pinned"`
	CommitsLimit   int      `mapstructure:"commits-limit"`
	TopN           int      `mapstructure:"top-n"`
	Exclude        []string `mapstructure:"exclude"`
	Categories     []string `mapstructure:"categories"`
	Timezone       string   `mapstructure:"timezone"`
	Format         string   `mapstructure:"format"`
	OutputFile     string   `mapstructure:"output"`
	CacheBackend   string   `mapstructure:"cache-backend"`
	CacheDBConnect string   `mapstructure:"cache-db-connect"`
}

// Config is the final, validated runtime configuration.
type Config struct {
	Username string
	Token    string

	Source schema.Source
	Orgs   []string
	Pinned []string // "owner/name" entries for the pinned-repo queries

	CommitsLimit int
	TopN         int
	Exclude      map[string]struct{} // lowercased language names to drop
	Categories   map[string]struct{} // lowercased categories to keep

	UTCOffset     *time.Location // fixed offset for the time distribution
	TimezoneLabel string         // e.g. "+02:00"

	Output     schema.OutputMode
	OutputFile string

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string
}

// ProcessAndValidate populates cfg from the raw input, normalizing and
// validating every value. username comes from the positional argument and
// token from the environment; neither flows through viper.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput, username, token string) error {
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if token == "" {
		return fmt.Errorf("GITHUB_TOKEN is not set (a GitHub token is required)")
	}
	cfg.Username = username
	cfg.Token = token

	switch schema.Source(input.Source) {
	case schema.GraphQLSource, schema.RESTSource:
		cfg.Source = schema.Source(input.Source)
	default:
		return fmt.Errorf("invalid source %q: must be graphql or rest", input.Source)
	}

	cfg.Orgs = trimNonEmpty(input.Orgs)
	cfg.Pinned = trimNonEmpty(input.Pinned)
	for _, p := range cfg.Pinned {
		if !strings.Contains(p, "/") {
			return fmt.Errorf("invalid pinned repo %q: expected owner/name", p)
		}
	}

	if input.CommitsLimit < 0 || input.CommitsLimit > MaxCommitsLimit {
		return fmt.Errorf("commits-limit must be between 0 and %d", MaxCommitsLimit)
	}
	cfg.CommitsLimit = input.CommitsLimit

	if input.TopN < 0 || input.TopN > MaxTopN {
		return fmt.Errorf("top-n must be between 0 and %d", MaxTopN)
	}
	cfg.TopN = input.TopN

	cfg.Exclude = lowerSet(input.Exclude)
	categories := input.Categories
	if len(trimNonEmpty(categories)) == 0 {
		categories = DefaultCategories
	}
	cfg.Categories = lowerSet(categories)

	tz := input.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}
	offset, label, err := ParseUTCOffset(tz)
	if err != nil {
		return err
	}
	cfg.UTCOffset = offset
	cfg.TimezoneLabel = label

	switch schema.OutputMode(input.Format) {
	case schema.JSONOut, schema.TextOut, schema.ParquetOut:
		cfg.Output = schema.OutputMode(input.Format)
	default:
		return fmt.Errorf("invalid format %q: must be json, text or parquet", input.Format)
	}
	cfg.OutputFile = input.OutputFile
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output with a file path prefix")
	}

	backend := schema.DatabaseBackend(input.CacheBackend)
	if err := ValidateDatabaseConnectionString(backend, input.CacheDBConnect); err != nil {
		return err
	}
	cfg.CacheBackend = backend
	cfg.CacheDBConnect = input.CacheDBConnect

	return nil
}

// utcOffsetRe matches offsets like "+02:00" or "-05:30".
var utcOffsetRe = regexp.MustCompile(`^([+-])(\d{2}):(\d{2})$`)

// ParseUTCOffset converts a "+HH:MM" style offset into a fixed time.Location
// and a normalized label. "Z" and "UTC" are accepted as aliases for +00:00.
func ParseUTCOffset(s string) (*time.Location, string, error) {
	s = strings.TrimSpace(s)
	if s == "Z" || strings.EqualFold(s, "UTC") {
		s = "+00:00"
	}
	matches := utcOffsetRe.FindStringSubmatch(s)
	if matches == nil {
		return nil, "", fmt.Errorf("invalid timezone offset %q: expected +HH:MM or -HH:MM", s)
	}

	hours, _ := strconv.Atoi(matches[2])
	minutes, _ := strconv.Atoi(matches[3])
	if hours > 14 || minutes > 59 {
		return nil, "", fmt.Errorf("timezone offset %q is out of range", s)
	}

	seconds := hours*3600 + minutes*60
	if matches[1] == "-" {
		seconds = -seconds
	}
	label := fmt.Sprintf("%s%02d:%02d", matches[1], hours, minutes)
	return time.FixedZone("UTC"+label, seconds), label, nil
}

// ValidateDatabaseConnectionString checks backend/connection-string pairing
// before any store is opened.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend, schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache backend %s requires cache-db-connect", backend)
		}
		return nil
	default:
		return fmt.Errorf("unsupported cache backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}
}

// trimNonEmpty trims whitespace and drops empty entries.
func trimNonEmpty(items []string) []string {
	var out []string
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// lowerSet builds a lowercase membership set.
func lowerSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if trimmed := strings.ToLower(strings.TrimSpace(item)); trimmed != "" {
			set[trimmed] = struct{}{}
		}
	}
	return set
}

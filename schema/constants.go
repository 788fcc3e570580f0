package schema

import "time"

// Source selects which GitHub API surface drives a fetch run.
type Source string

// Supported fetch sources.
const (
	GraphQLSource Source = "graphql"
	RESTSource    Source = "rest"
)

// OutputMode defines how the final record is rendered.
type OutputMode string

// Supported output modes.
const (
	JSONOut    OutputMode = "json"
	TextOut    OutputMode = "text"
	ParquetOut OutputMode = "parquet"
)

// DatabaseBackend identifies a response-cache storage backend.
type DatabaseBackend string

// Supported cache backends.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// CacheStatus holds summary information about the response cache.
type CacheStatus struct {
	Backend         string
	Connected       bool
	TotalEntries    int64
	LastEntryTime   time.Time
	OldestEntryTime time.Time
	TableSizeBytes  int64
}

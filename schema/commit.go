package schema

import "time"

// CommitSample identifies one sampled commit. Samples are immutable once
// produced: the sampler creates them and the derived analytics only read
// them. AuthoredAt is nil when the upstream field was missing or failed
// to parse; such samples are kept for consumers that tolerate partial data.
type CommitSample struct {
	Repo       string     // full repository name, e.g. "owner/repo"
	SHA        string     // commit identifier
	AuthoredAt *time.Time // author timestamp in UTC, best effort
}

// LanguageUsage is one ranked entry of changed-line attribution.
type LanguageUsage struct {
	Name    string  `json:"name"`
	Changes uint64  `json:"changes"` // added + deleted lines attributed
	Percent float64 `json:"percent"` // share of total attributed changes, 0..100
}

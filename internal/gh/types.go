package gh

import "time"

// Repo is the subset of a REST repository object the aggregation needs.
type Repo struct {
	FullName        string `json:"full_name"`
	StargazersCount uint64 `json:"stargazers_count"`
	ForksCount      uint64 `json:"forks_count"`
}

// Profile is the REST /users/{username} response.
type Profile struct {
	Login     string    `json:"login"`
	Name      *string   `json:"name"`
	Followers uint64    `json:"followers"`
	CreatedAt time.Time `json:"created_at"`
}

// searchCount carries just the hit count of a search response.
type searchCount struct {
	TotalCount uint64 `json:"total_count"`
}

// Commit search response shapes. Every nested field is optional on the wire;
// items missing any identifying field are dropped by the sampler.
type commitSearchResponse struct {
	Items []commitSearchItem `json:"items"`
}

type commitSearchItem struct {
	SHA        *string     `json:"sha"`
	Commit     *commitInfo `json:"commit"`
	Repository *repoRef    `json:"repository"`
}

type repoRef struct {
	FullName string `json:"full_name"`
}

type commitInfo struct {
	Author *commitAuthor `json:"author"`
}

type commitAuthor struct {
	Date string `json:"date"`
}

// commitDetail is the /repos/{full_name}/commits/{sha} response.
type commitDetail struct {
	Files []commitDetailFile `json:"files"`
}

type commitDetailFile struct {
	Filename  string  `json:"filename"`
	Additions uint64  `json:"additions"`
	Deletions uint64  `json:"deletions"`
	Changes   *uint64 `json:"changes"`
}

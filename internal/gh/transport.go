// Package gh is the GitHub API access layer: a retrying, rate-limit aware
// transport plus the REST and GraphQL fetch paths built on top of it.
package gh

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/devpulse/internal/contract"
)

// Transport constants.
const (
	DefaultBaseURL = "https://api.github.com"
	defaultTimeout = 30 * time.Second
	userAgent      = "devpulse"
	acceptHeader   = "application/vnd.github+json"

	retryMaxAttempts = 3 // retries after the initial attempt
	retryBaseDelay   = 500 * time.Millisecond
	retryMaxDelay    = 5000 * time.Millisecond
)

// cacheVersion invalidates previously cached response bodies when the
// cached representation changes shape.
const cacheVersion = 1

// Client performs GitHub API calls. Every outgoing request goes through a
// retry loop that backs off on transient failures and honors the rate-limit
// headers GitHub sends with 403/429 responses.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
	cache   contract.CacheStore

	// sleep and now are swappable for tests.
	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
}

// NewClient returns a client authenticated with the given token.
func NewClient(token string) *Client {
	return &Client{
		http:    &http.Client{Timeout: defaultTimeout},
		baseURL: DefaultBaseURL,
		token:   token,
		sleep:   sleepContext,
		now:     time.Now,
	}
}

// WithBaseURL points the client at a different API root. Used by tests.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = strings.TrimSuffix(u, "/")
	return c
}

// WithCache attaches a response cache consulted for GET requests.
func (c *Client) WithCache(store contract.CacheStore) *Client {
	c.cache = store
	return c
}

// RequestSpec describes how to build one attempt of a request. The transport
// builds a fresh http.Request from it on every attempt, so bodies and URLs
// never need to be replayed after consumption.
type RequestSpec struct {
	Method string
	Path   string // joined onto the client's base URL
	Query  url.Values
	Body   []byte // sent as application/json when non-nil
}

func (s RequestSpec) build(ctx context.Context, baseURL, token string) (*http.Request, error) {
	u := baseURL + s.Path
	if len(s.Query) > 0 {
		u += "?" + s.Query.Encode()
	}
	var body io.Reader
	if s.Body != nil {
		body = bytes.NewReader(s.Body)
	}
	req, err := http.NewRequestWithContext(ctx, s.Method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Authorization", "Bearer "+token)
	if s.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// StatusError is a terminal HTTP failure, reported after any retries were
// spent.
type StatusError struct {
	Label      string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s failed with status %d: %s", e.Label, e.StatusCode, e.Body)
}

// send runs the retry loop for one logical request: one initial attempt plus
// up to retryMaxAttempts retries. The caller owns the returned body.
func (c *Client) send(ctx context.Context, spec RequestSpec, label string) (*http.Response, error) {
	attempt := 0
	for {
		req, err := spec.build(ctx, c.baseURL, c.token)
		if err != nil {
			return nil, fmt.Errorf("%s: build request: %w", label, err)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if attempt < retryMaxAttempts {
				delay := retryDelay(attempt, http.StatusInternalServerError, nil, c.now())
				if err := c.sleep(ctx, delay); err != nil {
					return nil, err
				}
				attempt++
				continue
			}
			return nil, fmt.Errorf("%s failed to send request: %w", label, err)
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, nil
		}

		if attempt < retryMaxAttempts && shouldRetry(resp.StatusCode, resp.Header) {
			delay := retryDelay(attempt, resp.StatusCode, resp.Header, c.now())
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			if err := c.sleep(ctx, delay); err != nil {
				return nil, err
			}
			attempt++
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		return nil, &StatusError{Label: label, StatusCode: resp.StatusCode, Body: string(body)}
	}
}

// getJSON performs a GET through the retry loop and decodes the body into
// out. Fresh cached responses short-circuit the network entirely.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, label string, out any) error {
	spec := RequestSpec{Method: http.MethodGet, Path: path, Query: query}
	key := spec.Path
	if len(spec.Query) > 0 {
		key += "?" + spec.Query.Encode()
	}

	if c.cache != nil {
		if value, version, ts, err := c.cache.Get(key); err == nil &&
			version == cacheVersion && c.now().Sub(time.Unix(ts, 0)) < contract.CacheTTL {
			return json.Unmarshal(value, out)
		}
	}

	resp, err := c.send(ctx, spec, label)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", label, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: parse response: %w", label, err)
	}

	if c.cache != nil {
		_ = c.cache.Set(key, body, cacheVersion, c.now().Unix())
	}
	return nil
}

// shouldRetry reports whether a non-success response is worth another
// attempt: 429, any 5xx, or a 403 that carries rate-limit exhaustion markers.
func shouldRetry(status int, header http.Header) bool {
	if status == http.StatusTooManyRequests {
		return true
	}
	if status >= 500 && status <= 599 {
		return true
	}
	if status == http.StatusForbidden {
		if header.Get("x-ratelimit-remaining") == "0" {
			return true
		}
		if header.Get("retry-after") != "" {
			return true
		}
	}
	return false
}

// retryDelay computes the wait before retry number attempt (0-based). A
// retry-after header always wins; for 429/403 a future x-ratelimit-reset
// epoch wins next; otherwise exponential backoff capped at retryMaxDelay.
func retryDelay(attempt, status int, header http.Header, now time.Time) time.Duration {
	if secs, ok := retryAfterSeconds(status, header, now); ok {
		return time.Duration(secs) * time.Second
	}
	backoff := retryBaseDelay << uint(attempt)
	if backoff > retryMaxDelay || backoff <= 0 {
		backoff = retryMaxDelay
	}
	return backoff
}

func retryAfterSeconds(status int, header http.Header, now time.Time) (int64, bool) {
	if header == nil {
		return 0, false
	}
	if value := header.Get("retry-after"); value != "" {
		if secs, err := strconv.ParseInt(value, 10, 64); err == nil && secs >= 0 {
			return secs, true
		}
	}
	if status != http.StatusTooManyRequests && status != http.StatusForbidden {
		return 0, false
	}
	if value := header.Get("x-ratelimit-reset"); value != "" {
		if epoch, err := strconv.ParseInt(value, 10, 64); err == nil && epoch > now.Unix() {
			return epoch - now.Unix(), true
		}
	}
	return 0, false
}

// sleepContext waits for d, giving up early if the context ends. Only the
// calling operation suspends; sibling operations keep running.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package gh

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/huangsam/devpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noSleep replaces the retry sleeper so tests record delays instead of waiting.
func noSleep(delays *[]time.Duration) func(context.Context, time.Duration) error {
	var mu sync.Mutex
	return func(_ context.Context, d time.Duration) error {
		mu.Lock()
		defer mu.Unlock()
		*delays = append(*delays, d)
		return nil
	}
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *[]time.Duration) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	var delays []time.Duration
	client := NewClient("test-token").WithBaseURL(server.URL)
	client.sleep = noSleep(&delays)
	return client, &delays
}

func TestShouldRetry(t *testing.T) {
	tests := []struct {
		name   string
		status int
		header http.Header
		want   bool
	}{
		{name: "too many requests", status: 429, header: http.Header{}, want: true},
		{name: "server error", status: 500, header: http.Header{}, want: true},
		{name: "bad gateway", status: 502, header: http.Header{}, want: true},
		{name: "plain forbidden", status: 403, header: http.Header{}, want: false},
		{name: "forbidden rate limited", status: 403, header: http.Header{"X-Ratelimit-Remaining": {"0"}}, want: true},
		{name: "forbidden with retry-after", status: 403, header: http.Header{"Retry-After": {"5"}}, want: true},
		{name: "not found", status: 404, header: http.Header{}, want: false},
		{name: "unauthorized", status: 401, header: http.Header{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldRetry(tt.status, tt.header))
		})
	}
}

func TestRetryDelay(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name    string
		attempt int
		status  int
		header  http.Header
		want    time.Duration
	}{
		{name: "backoff first attempt", attempt: 0, status: 500, header: http.Header{}, want: 500 * time.Millisecond},
		{name: "backoff second attempt", attempt: 1, status: 500, header: http.Header{}, want: 1000 * time.Millisecond},
		{name: "backoff third attempt", attempt: 2, status: 500, header: http.Header{}, want: 2000 * time.Millisecond},
		{name: "backoff caps out", attempt: 10, status: 500, header: http.Header{}, want: 5000 * time.Millisecond},
		{name: "retry-after wins on any status", attempt: 0, status: 500,
			header: http.Header{"Retry-After": {"3"}}, want: 3 * time.Second},
		{name: "rate limit reset in the future", attempt: 0, status: 429,
			header: http.Header{"X-Ratelimit-Reset": {fmt.Sprint(now.Unix() + 42)}}, want: 42 * time.Second},
		{name: "rate limit reset ignored for 500", attempt: 0, status: 500,
			header: http.Header{"X-Ratelimit-Reset": {fmt.Sprint(now.Unix() + 42)}}, want: 500 * time.Millisecond},
		{name: "rate limit reset in the past falls back", attempt: 1, status: 429,
			header: http.Header{"X-Ratelimit-Reset": {fmt.Sprint(now.Unix() - 10)}}, want: 1000 * time.Millisecond},
		{name: "unparsable retry-after falls back", attempt: 0, status: 429,
			header: http.Header{"Retry-After": {"soon"}}, want: 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, retryDelay(tt.attempt, tt.status, tt.header, now))
		})
	}
}

func TestSendRetriesTransientFailures(t *testing.T) {
	var calls int
	client, delays := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"ok":true}`)
	}))

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, client.getJSON(context.Background(), "/thing", nil, "fetch thing", &out))
	assert.True(t, out.OK)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{500 * time.Millisecond, 1000 * time.Millisecond}, *delays)
}

func TestSendHonorsRetryAfter(t *testing.T) {
	var calls int
	client, delays := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			w.Header().Set("Retry-After", "3")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{}`)
	}))

	var out map[string]any
	require.NoError(t, client.getJSON(context.Background(), "/thing", nil, "fetch thing", &out))
	assert.Equal(t, 2, calls)
	assert.Equal(t, []time.Duration{3 * time.Second}, *delays)
}

func TestSendTerminalFailure(t *testing.T) {
	var calls int
	client, delays := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		http.Error(w, "no such user", http.StatusNotFound)
	}))

	var out map[string]any
	err := client.getJSON(context.Background(), "/users/ghost", nil, "fetch user profile", &out)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, statusErr.Error(), "fetch user profile failed with status 404")

	// Terminal statuses never retry
	assert.Equal(t, 1, calls)
	assert.Empty(t, *delays)
}

func TestSendExhaustsRetries(t *testing.T) {
	var calls int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	var out map[string]any
	err := client.getJSON(context.Background(), "/thing", nil, "fetch thing", &out)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	// One initial attempt plus retryMaxAttempts retries
	assert.Equal(t, 1+retryMaxAttempts, calls)
}

// memoryStore is an in-memory CacheStore for transport tests.
type memoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value   []byte
	version int
	ts      int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: make(map[string]memoryEntry)}
}

func (s *memoryStore) Get(key string) ([]byte, int, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if !ok {
		return nil, 0, 0, errors.New("not found")
	}
	return entry.value, entry.version, entry.ts, nil
}

func (s *memoryStore) Set(key string, value []byte, version int, ts int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{value: value, version: version, ts: ts}
	return nil
}

func (s *memoryStore) GetStatus() (schema.CacheStatus, error) {
	return schema.CacheStatus{Backend: "memory", Connected: true}, nil
}

func (s *memoryStore) Close() error { return nil }

func TestGetJSONUsesFreshCache(t *testing.T) {
	var calls int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		fmt.Fprint(w, `{"value":1}`)
	}))
	client.WithCache(newMemoryStore())

	var out struct {
		Value int `json:"value"`
	}
	require.NoError(t, client.getJSON(context.Background(), "/thing", nil, "fetch thing", &out))
	require.NoError(t, client.getJSON(context.Background(), "/thing", nil, "fetch thing", &out))

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, out.Value)
}

func TestGetJSONRefetchesExpiredCache(t *testing.T) {
	var calls int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		fmt.Fprint(w, `{"value":1}`)
	}))
	store := newMemoryStore()
	client.WithCache(store)

	var out struct {
		Value int `json:"value"`
	}
	require.NoError(t, client.getJSON(context.Background(), "/thing", nil, "fetch thing", &out))

	// Age the cached entry past the TTL; the next call goes to the network.
	client.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	require.NoError(t, client.getJSON(context.Background(), "/thing", nil, "fetch thing", &out))

	assert.Equal(t, 2, calls)
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, "test-key", Options{
		Timeout:     5 * time.Second,
		MinInterval: time.Nanosecond,
		MaxRetries:  3,
		RetryDelay:  time.Millisecond,
		PerPage:     100,
	})
}

func TestPaginateWalksCursor(t *testing.T) {
	var mu sync.Mutex
	var requests []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests = append(requests, r.URL.RawQuery)
		mu.Unlock()
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))

		if r.URL.Query().Get("cursor") == "" {
			fmt.Fprint(w, `{"data":[{"id":1},{"id":2}],"meta":{"next_cursor":7}}`)
			return
		}
		assert.Equal(t, "7", r.URL.Query().Get("cursor"))
		fmt.Fprint(w, `{"data":[{"id":3}],"meta":{}}`)
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	var ids []int
	for rec, err := range c.Paginate(context.Background(), "/players", nil) {
		require.NoError(t, err)
		var row struct {
			ID int `json:"id"`
		}
		require.NoError(t, json.Unmarshal(rec, &row))
		ids = append(ids, row.ID)
	}

	assert.Equal(t, []int{1, 2, 3}, ids)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, requests, 2)
	assert.Contains(t, requests[0], "per_page=100")
}

func TestPaginateStringCursor(t *testing.T) {
	var pages int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&pages, 1) == 1 {
			fmt.Fprint(w, `{"data":[{"id":1}],"meta":{"next_cursor":"abc"}}`)
			return
		}
		assert.Equal(t, "abc", r.URL.Query().Get("cursor"))
		fmt.Fprint(w, `{"data":[],"meta":{"next_cursor":null}}`)
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	count := 0
	for _, err := range c.Paginate(context.Background(), "/players", nil) {
		require.NoError(t, err)
		count++
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, int32(2), atomic.LoadInt32(&pages))
}

func TestPaginateAbandonedEarly(t *testing.T) {
	var pages int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&pages, 1)
		fmt.Fprint(w, `{"data":[{"id":1},{"id":2}],"meta":{"next_cursor":5}}`)
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	for _, err := range c.Paginate(context.Background(), "/players", nil) {
		require.NoError(t, err)
		break
	}

	// Breaking out of the loop must not fetch further pages.
	assert.Equal(t, int32(1), atomic.LoadInt32(&pages))
}

func TestGetHonorsRetryAfter(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{"data":[{"id":9}],"meta":{}}`)
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	data, err := c.getData(context.Background(), "/teams", nil)
	require.NoError(t, err)
	assert.Len(t, data, 1)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGetFailsImmediatelyOnNotFound(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "no such route", http.StatusNotFound)
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	_, err := c.getData(context.Background(), "/nope", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.False(t, apiErr.Retryable())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetRetriesTransportErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			// Drop the connection to simulate a transport failure.
			panic(http.ErrAbortHandler)
		}
		fmt.Fprint(w, `{"data":[],"meta":{}}`)
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	_, err := c.getData(context.Background(), "/teams", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGetExhaustsRetries(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	_, err := c.getData(context.Background(), "/teams", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.Retryable())
	assert.Equal(t, int32(4), atomic.LoadInt32(&calls))
}

func TestPaginateSurfacesPaginationError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			fmt.Fprint(w, `{"data":[{"id":1}],"meta":{"next_cursor":2}}`)
			return
		}
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	var seen int
	var lastErr error
	for _, err := range c.Paginate(context.Background(), "/games", nil) {
		if err != nil {
			lastErr = err
			break
		}
		seen++
	}

	assert.Equal(t, 1, seen)
	require.Error(t, lastErr)
	var apiErr *APIError
	assert.ErrorAs(t, lastErr, &apiErr)
}

func TestTeamRosterOneShot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/teams/14/roster", r.URL.Path)
		assert.Equal(t, "2025", r.URL.Query().Get("season"))
		fmt.Fprint(w, `{"data":[{"position":"WR"},{"position":"PR"}]}`)
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	data, err := c.TeamRoster(context.Background(), 14, 2025)
	require.NoError(t, err)
	assert.Len(t, data, 2)
}

package agents

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const redditListingFixture = `{
  "data": {
    "children": [
      {"data": {
        "name": "t3_abc123",
        "title": "Structured concurrency in Go",
        "selftext": "errgroup patterns",
        "author": "gopher",
        "subreddit": "golang",
        "permalink": "/r/golang/comments/abc123/structured_concurrency/",
        "score": 421,
        "num_comments": 37,
        "created_utc": 1755993600
      }},
      {"data": {
        "name": "t3_def456",
        "title": "Link post without body",
        "selftext": "",
        "author": "lurker",
        "subreddit": "golang",
        "permalink": "/r/golang/comments/def456/link_post/",
        "score": 3,
        "num_comments": 0,
        "created_utc": 1755990000
      }}
    ]
  }
}`

func TestRedditFetcher_FetchPosts(t *testing.T) {
	var gotPath, gotQuery, gotUserAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(redditListingFixture))
	}))
	defer srv.Close()

	fetcher := NewRedditFetcherWithBaseURL(srv.URL, "redscout-test/1.0")
	posts, err := fetcher.FetchPosts(context.Background(), "concurrency", "golang", 10)
	require.NoError(t, err)

	assert.Equal(t, "/r/golang/search.json", gotPath)
	assert.Contains(t, gotQuery, "q=concurrency")
	assert.Contains(t, gotQuery, "restrict_sr=1")
	assert.Contains(t, gotQuery, "limit=10")
	assert.Equal(t, "redscout-test/1.0", gotUserAgent)

	require.Len(t, posts, 2)
	first := posts[0]
	assert.Equal(t, "t3_abc123", first.ID)
	assert.Equal(t, "Structured concurrency in Go", first.Title)
	assert.Equal(t, "errgroup patterns", first.Body)
	assert.Equal(t, "gopher", first.Author)
	assert.Equal(t, "golang", first.Subreddit)
	assert.Equal(t, "https://www.reddit.com/r/golang/comments/abc123/structured_concurrency/", first.URL)
	assert.Equal(t, 421, first.Score)
	assert.Equal(t, 37, first.NumComments)
	assert.Equal(t, time.Unix(1755993600, 0).UTC(), first.CreatedAt)
}

func TestRedditFetcher_NonOKStatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	fetcher := NewRedditFetcherWithBaseURL(srv.URL, "")
	_, err := fetcher.FetchPosts(context.Background(), "golang", "golang", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 429")
}

func TestRedditFetcher_DefaultsLimit(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"data":{"children":[]}}`))
	}))
	defer srv.Close()

	fetcher := NewRedditFetcherWithBaseURL(srv.URL, "")
	posts, err := fetcher.FetchPosts(context.Background(), "golang", "golang", 0)
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Contains(t, gotQuery, "limit=25")
}

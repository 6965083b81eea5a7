package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultRedditBaseURL = "https://www.reddit.com"

// RedditFetcher fetches posts from Reddit's public JSON listing API.
// No OAuth is involved; Reddit serves search listings to any client
// that sends a descriptive User-Agent.
type RedditFetcher struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewRedditFetcher creates a fetcher against the public Reddit API.
func NewRedditFetcher(userAgent string) *RedditFetcher {
	if userAgent == "" {
		userAgent = "redscout/1.0"
	}
	return &RedditFetcher{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultRedditBaseURL,
		userAgent:  userAgent,
	}
}

// NewRedditFetcherWithBaseURL overrides the API endpoint (useful for
// testing).
func NewRedditFetcherWithBaseURL(baseURL, userAgent string) *RedditFetcher {
	f := NewRedditFetcher(userAgent)
	f.baseURL = baseURL
	return f
}

// redditListing mirrors the subset of Reddit's listing envelope we read.
type redditListing struct {
	Data struct {
		Children []struct {
			Data redditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type redditPost struct {
	Name        string  `json:"name"` // fullname, e.g. "t3_abc123"
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	Author      string  `json:"author"`
	Subreddit   string  `json:"subreddit"`
	Permalink   string  `json:"permalink"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
}

// FetchPosts searches a subreddit for posts matching the topic, newest
// first.
func (f *RedditFetcher) FetchPosts(ctx context.Context, topic, subreddit string, limit int) ([]Post, error) {
	if limit <= 0 {
		limit = defaultPostLimit
	}

	query := url.Values{}
	query.Set("q", topic)
	query.Set("restrict_sr", "1")
	query.Set("sort", "new")
	query.Set("limit", strconv.Itoa(limit))
	searchURL := fmt.Sprintf("%s/r/%s/search.json?%s", f.baseURL, url.PathEscape(subreddit), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search r/%s for %q: %w", subreddit, topic, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reddit returned HTTP %d for r/%s", resp.StatusCode, subreddit)
	}

	var listing redditListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("decode listing for r/%s: %w", subreddit, err)
	}

	posts := make([]Post, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		posts = append(posts, child.Data.toPost())
	}
	return posts, nil
}

func (p redditPost) toPost() Post {
	return Post{
		ID:          p.Name,
		Title:       p.Title,
		Body:        p.Selftext,
		Author:      p.Author,
		Subreddit:   p.Subreddit,
		URL:         defaultRedditBaseURL + p.Permalink,
		Score:       p.Score,
		NumComments: p.NumComments,
		CreatedAt:   time.Unix(int64(p.CreatedUTC), 0).UTC(),
	}
}

package posts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// TotalCountHeader carries the full collection size on list responses.
const TotalCountHeader = "X-Total-Count"

// maxErrorBody caps how much of an error response is kept in StatusError.
const maxErrorBody = 512

// ClientConfig holds configuration for a posts API connection.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
	// FallbackTotal is reported when the list response carries no usable
	// total-count header. Zero means the total stays unknown.
	FallbackTotal int
	// Transport overrides the HTTP transport. It is always wrapped for tracing.
	Transport http.RoundTripper
}

// Client provides access to the posts REST API.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
}

// NewClient creates a new posts API client.
func NewClient(config ClientConfig) *Client {
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	base := config.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: otelhttp.NewTransport(base),
		},
	}
}

// FetchPage fetches one page of posts. limit and page are sent as given.
func (c *Client) FetchPage(ctx context.Context, limit, page int) (result *Page, err error) {
	defer func(start time.Time) { observe("fetch_page", start, err) }(time.Now())

	q := url.Values{}
	q.Set("_limit", strconv.Itoa(limit))
	q.Set("_page", strconv.Itoa(page))
	endpoint := c.config.BaseURL + "/posts?" + q.Encode()

	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var items []Post
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decoding posts page: %w", err)
	}
	if items == nil {
		items = []Post{}
	}

	return &Page{Posts: items, Total: c.total(resp.Header)}, nil
}

// FetchOne fetches a single post by id. A 404 or an empty object yields
// ErrNotFound.
func (c *Client) FetchOne(ctx context.Context, id int) (result *Post, err error) {
	defer func(start time.Time) { observe("fetch_one", start, err) }(time.Now())

	endpoint := fmt.Sprintf("%s/posts/%d", c.config.BaseURL, id)

	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var post Post
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		if err == io.EOF {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("decoding post %d: %w", id, err)
	}
	if post.ID == 0 {
		return nil, ErrNotFound
	}
	return &post, nil
}

func (c *Client) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", endpoint, err)
	}
	return resp, nil
}

// total reads the total-count header, falling back to the configured
// constant or an unknown total.
func (c *Client) total(h http.Header) Total {
	if v := strings.TrimSpace(h.Get(TotalCountHeader)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return KnownTotal(n)
		}
	}
	if c.config.FallbackTotal > 0 {
		return KnownTotal(c.config.FallbackTotal)
	}
	return Total{}
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return nil
}

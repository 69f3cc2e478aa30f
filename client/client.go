// Package client is the HTTP transport of the SDK: it performs GET requests
// against the JSON API, checks the status and hands the body to the parser.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Alp4ka/s2pager"
	"github.com/Alp4ka/s2pager/apierr"
	"github.com/Alp4ka/s2pager/parser"
)

const (
	DefaultBaseURL       = "https://api.scratch.mit.edu/"
	DefaultUserAgent     = "s2pager"
	DefaultTimeout       = 30 * time.Second
	DefaultBodyReadLimit = 16 << 20
)

var ErrInvalidBaseURL = errors.New("invalid base url")

// Client performs requests against one API root. It is safe for concurrent
// use.
type Client struct {
	rawBaseURL    string
	baseURL       *url.URL
	httpClient    *http.Client
	timeout       time.Duration
	pageLimit     int
	userAgent     string
	header        http.Header
	bodyReadLimit int64
	logger        zerolog.Logger
}

// New returns a client configured with opts.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		rawBaseURL:    DefaultBaseURL,
		timeout:       DefaultTimeout,
		pageLimit:     s2pager.DefaultPageLimit,
		userAgent:     DefaultUserAgent,
		header:        make(http.Header),
		bodyReadLimit: DefaultBodyReadLimit,
		logger:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	baseURL, err := url.Parse(c.rawBaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("%w: %q is not absolute", ErrInvalidBaseURL, c.rawBaseURL)
	}
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}
	c.baseURL = baseURL

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	if c.pageLimit == 0 {
		c.pageLimit = s2pager.DefaultPageLimit
	}

	return c, nil
}

// PageLimit returns the page ceiling applied to list requests.
func (c *Client) PageLimit() int {
	return c.pageLimit
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Get requests path and parses the body.
func (c *Client) Get(ctx context.Context, path string) (parser.Parser, error) {
	u, err := c.resolve(path)
	if err != nil {
		return parser.Parser{}, err
	}

	return c.do(ctx, u)
}

// List requests one window of the listing at path and returns its elements.
// The window is sent as the limit and offset query parameters, the limit
// capped at PageLimit.
func (c *Client) List(ctx context.Context, path string, window s2pager.Cursor) ([]parser.Parser, error) {
	u, err := c.resolve(path)
	if err != nil {
		return nil, err
	}

	values, err := window.Query(c.pageLimit).Encode(u.Query())
	if err != nil {
		return nil, err
	}
	u.RawQuery = values.Encode()

	doc, err := c.do(ctx, u)
	if err != nil {
		return nil, err
	}

	return doc.Array()
}

func (c *Client) resolve(path string) (*url.URL, error) {
	ref, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return nil, fmt.Errorf("cannot parse request path %q: %w", path, err)
	}

	return c.baseURL.ResolveReference(ref), nil
}

func (c *Client) do(ctx context.Context, u *url.URL) (parser.Parser, error) {
	target := u.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return parser.Parser{}, fmt.Errorf("cannot create request: %w", err)
	}

	req.Header = c.header.Clone()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("url", target).Msg("request failed")
		return parser.Parser{}, &apierr.TransportError{Method: req.Method, URL: target, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("url", target).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(started)).
		Msg("request completed")

	if resp.StatusCode/100 != 2 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return parser.Parser{}, &apierr.StatusError{Method: req.Method, URL: target, Code: resp.StatusCode}
	}

	var body io.Reader = resp.Body
	if c.bodyReadLimit >= 0 {
		body = io.LimitReader(resp.Body, c.bodyReadLimit)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return parser.Parser{}, &apierr.TransportError{Method: req.Method, URL: target, Err: err}
	}

	return parser.Parse(data)
}

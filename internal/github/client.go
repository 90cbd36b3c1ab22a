// Package github walks a user's starred repositories through the GitHub REST API.
package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"barky/internal/config"
)

// starMediaType asks GitHub to include starred_at; entries then wrap the repository under "repo".
const starMediaType = "application/vnd.github.v3.star+json"

// Repo is the subset of a starred repository that becomes a bookmark.
type Repo struct {
	Name        string
	HTMLURL     string
	Description string
}

// Client fetches starred repositories page by page. It never retries.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the instrumented default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New builds a Client from cfg. A zero TimeoutSec means no client-side timeout.
func New(cfg config.GitHubConfig, opts ...Option) *Client {
	c := &Client{
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   time.Duration(cfg.TimeoutSec) * time.Second,
		},
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		token:   cfg.Token,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StarredURL is the first page of username's stars.
func (c *Client) StarredURL(username string) string {
	return c.baseURL + "/users/" + url.PathEscape(username) + "/starred"
}

// ForEachStarred calls fn for every starred repository of username, following
// rel="next" links until the last page. An error from fn stops the walk.
func (c *Client) ForEachStarred(ctx context.Context, username string, fn func(Repo) error) error {
	next := c.StarredURL(username)
	for next != "" {
		repos, nextURL, err := c.fetchPage(ctx, next)
		if err != nil {
			return err
		}
		for _, r := range repos {
			if err := fn(r); err != nil {
				return err
			}
		}
		next = nextURL
	}
	return nil
}

func (c *Client) fetchPage(ctx context.Context, pageURL string) ([]Repo, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("github: build request: %w", err)
	}
	req.Header.Set("Accept", starMediaType)
	req.Header.Set("User-Agent", "barky")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("github: GET %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("github: read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("github: GET %s: unexpected status %d", pageURL, resp.StatusCode)
	}

	repos, err := parseStarred(body)
	if err != nil {
		return nil, "", err
	}
	return repos, nextLink(resp.Header.Get("Link")), nil
}

func parseStarred(body []byte) ([]Repo, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("github: invalid JSON response")
	}
	res := gjson.ParseBytes(body)
	if !res.IsArray() {
		return nil, fmt.Errorf("github: expected a JSON array")
	}

	items := res.Array()
	repos := make([]Repo, 0, len(items))
	for _, item := range items {
		if wrapped := item.Get("repo"); wrapped.IsObject() {
			item = wrapped
		}
		repos = append(repos, Repo{
			Name:        item.Get("name").String(),
			HTMLURL:     item.Get("html_url").String(),
			Description: item.Get("description").String(),
		})
	}
	return repos, nil
}

// nextLink extracts the rel="next" target from an RFC 8288 Link header.
func nextLink(header string) string {
	for _, part := range strings.Split(header, ",") {
		segs := strings.Split(part, ";")
		target := strings.TrimSpace(segs[0])
		if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
			continue
		}
		for _, p := range segs[1:] {
			key, val, ok := strings.Cut(strings.TrimSpace(p), "=")
			if !ok || !strings.EqualFold(strings.TrimSpace(key), "rel") {
				continue
			}
			for _, rel := range strings.Fields(strings.Trim(val, `"`)) {
				if rel == "next" {
					return target[1 : len(target)-1]
				}
			}
		}
	}
	return ""
}

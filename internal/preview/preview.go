// Package preview resolves a free-text song query to a short audio preview
// through a public music catalog search.
package preview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

// ErrNoResults is returned when the catalog has nothing for the query.
var ErrNoResults = errors.New("no preview found")

// StatusError is a non-200 response from the catalog.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("catalog search returned status %d", e.Code)
	}
	return fmt.Sprintf("catalog search returned status %d: %s", e.Code, e.Body)
}

// Track is the first catalog match for a query.
type Track struct {
	Name       string `json:"name"`
	Artist     string `json:"artist"`
	PreviewURL string `json:"preview_url"`
	ViewURL    string `json:"view_url"`
}

// Searcher looks up a preview for a query.
type Searcher interface {
	Search(ctx context.Context, term string) (Track, error)
}

type searchResponse struct {
	ResultCount int `json:"resultCount"`
	Results     []struct {
		TrackName    string `json:"trackName"`
		ArtistName   string `json:"artistName"`
		PreviewURL   string `json:"previewUrl"`
		TrackViewURL string `json:"trackViewUrl"`
	} `json:"results"`
}

// Client queries the catalog. Concurrent searches for the same term share
// one request.
type Client struct {
	baseURL    string
	media      string
	entity     string
	httpClient *http.Client
	group      singleflight.Group
}

var _ Searcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithFilter sets the media and entity query parameters.
func WithFilter(media, entity string) Option {
	return func(c *Client) {
		if media != "" {
			c.media = media
		}
		if entity != "" {
			c.entity = entity
		}
	}
}

// New creates a catalog client for baseURL.
func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("preview base url required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse preview url: %w", err)
	}
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	c := &Client{
		baseURL:    baseURL,
		media:      "music",
		entity:     "song",
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Search returns the first match for term. It returns ErrNoResults for an
// empty result set and *StatusError for a non-200 response; anything else is
// a transport or decoding failure.
func (c *Client) Search(ctx context.Context, term string) (Track, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return Track{}, errors.New("query must not be empty")
	}
	// The shared request must outlive any single caller; each caller still
	// stops waiting when its own context ends.
	ch := c.group.DoChan(term, func() (any, error) {
		return c.search(context.WithoutCancel(ctx), term)
	})
	select {
	case <-ctx.Done():
		return Track{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Track{}, res.Err
		}
		return res.Val.(Track), nil
	}
}

func (c *Client) search(ctx context.Context, term string) (Track, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return Track{}, fmt.Errorf("parse preview url: %w", err)
	}
	params := endpoint.Query()
	params.Set("term", term)
	params.Set("media", c.media)
	params.Set("entity", c.entity)
	params.Set("limit", "1")
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return Track{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Track{}, fmt.Errorf("catalog search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Track{}, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Track{}, fmt.Errorf("decode catalog response: %w", err)
	}
	if payload.ResultCount == 0 || len(payload.Results) == 0 || payload.Results[0].PreviewURL == "" {
		return Track{}, ErrNoResults
	}
	first := payload.Results[0]
	return Track{
		Name:       first.TrackName,
		Artist:     first.ArtistName,
		PreviewURL: first.PreviewURL,
		ViewURL:    first.TrackViewURL,
	}, nil
}

// Package musicbrainz implements the sources.Scraper contract against the
// MusicBrainz ws/2 API. It is the one scraper that ships with this module;
// the other site parsers are external and only honor the same interface.
package musicbrainz

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"golang.org/x/time/rate"

	"github.com/llehouerou/coho/internal/meta"
	"github.com/llehouerou/coho/internal/sources"
)

const (
	defaultBaseURL = "https://musicbrainz.org/ws/2"
	userAgent      = "coho/0.1 (https://github.com/llehouerou/coho)"

	// MusicBrainz requires at most 1 request per second.
	maxRetries   = 3
	initialDelay = 2 * time.Second
	maxDelay     = 30 * time.Second
)

var releaseURLRe = regexp.MustCompile(`^https?://(?:www\.)?musicbrainz\.org/release/([a-z0-9\-]+)$`)

// Client scrapes MusicBrainz releases.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a MusicBrainz scraper with the public API endpoint.
func NewClient() *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// NewClientWithBaseURL creates a scraper against a custom endpoint.
// Used by tests to point at a local server.
func NewClientWithBaseURL(base string) *Client {
	c := NewClient()
	c.baseURL = base
	return c
}

// Name implements sources.Scraper.
func (c *Client) Name() string { return sources.MusicBrainz }

// Match implements sources.Scraper.
func (c *Client) Match(u string) bool {
	return releaseURLRe.MatchString(u)
}

// Scrape fetches a release with recordings, artist credits, labels and
// release-group data and converts it to the common record shape.
func (c *Client) Scrape(ctx context.Context, u string) (*meta.Release, error) {
	m := releaseURLRe.FindStringSubmatch(u)
	if m == nil {
		return nil, fmt.Errorf("not a musicbrainz release url: %s", u)
	}
	mbid := m[1]

	params := url.Values{}
	params.Set("fmt", "json")
	params.Set("inc", "recordings+artist-credits+labels+release-groups+genres")
	reqURL := fmt.Sprintf("%s/release/%s?%s", c.baseURL, mbid, params.Encode())

	var raw releaseResponse
	if err := c.getJSON(ctx, reqURL, &raw); err != nil {
		return nil, fmt.Errorf("fetch release %s: %w", mbid, err)
	}
	return convertRelease(&raw), nil
}

// getJSON executes a GET with rate limiting and exponential backoff retry.
// Retries on 5xx and network errors only.
func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	var lastErr error
	delay := initialDelay

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
			delay = min(delay*2, maxDelay)
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("server returned status %d", resp.StatusCode)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return fmt.Errorf("API status %d: %s", resp.StatusCode, string(body))
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}
	return fmt.Errorf("request failed after %d retries: %w", maxRetries+1, lastErr)
}

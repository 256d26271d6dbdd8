// Package coverart resolves ISBNs to cover image URLs through the Google
// Books volumes API. The lookup is best-effort and total: any failure yields
// the placeholder URL, never an error.
package coverart

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	cache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// PlaceholderURL is served whenever the external lookup cannot produce a
// cover. Cover art is non-critical to correctness.
const PlaceholderURL = "/static/placeholder_cover.jpg"

const (
	defaultTimeout  = 10 * time.Second
	cacheTTL        = 24 * time.Hour
	cacheSweepEvery = time.Hour
)

type Client struct {
	httpClient  *http.Client
	baseURL     string
	placeholder string
	limiter     *rate.Limiter
	cache       *cache.Cache
	logger      *zap.Logger
}

func NewClient(logger *zap.Logger, rps int) *Client {
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL:     "https://www.googleapis.com",
		placeholder: PlaceholderURL,
		limiter:     rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		cache:       cache.New(cacheTTL, cacheSweepEvery),
		logger:      logger,
	}
}

// volumesResponse matches books/v1/volumes?q=isbn:...
type volumesResponse struct {
	TotalItems int `json:"totalItems"`
	Items      []struct {
		VolumeInfo struct {
			ImageLinks struct {
				Thumbnail string `json:"thumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

// Lookup returns the cover URL for the ISBN, or the placeholder on any
// failure. Successful lookups are cached; covers do not change.
func (c *Client) Lookup(ctx context.Context, isbn string) string {
	if v, ok := c.cache.Get(isbn); ok {
		return v.(string)
	}

	cover := c.fetch(ctx, isbn)
	if cover != c.placeholder {
		c.cache.Set(isbn, cover, cache.DefaultExpiration)
	}
	return cover
}

func (c *Client) fetch(ctx context.Context, isbn string) string {
	if err := c.limiter.Wait(ctx); err != nil {
		return c.placeholder
	}

	u := fmt.Sprintf("%s/books/v1/volumes?q=%s", c.baseURL, url.QueryEscape("isbn:"+isbn))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return c.placeholder
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("cover lookup failed", zap.String("isbn", isbn), zap.Error(err))
		return c.placeholder
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("cover lookup failed",
			zap.String("isbn", isbn), zap.Int("status", resp.StatusCode))
		return c.placeholder
	}

	var res volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		c.logger.Warn("cover lookup returned malformed response",
			zap.String("isbn", isbn), zap.Error(err))
		return c.placeholder
	}

	if res.TotalItems <= 0 || len(res.Items) == 0 {
		return c.placeholder
	}
	thumbnail := res.Items[0].VolumeInfo.ImageLinks.Thumbnail
	if thumbnail == "" {
		return c.placeholder
	}
	return thumbnail
}

// Package ufcstats scrapes fighter rosters and profile pages from
// ufcstats.com. It depends on the site's HTML structure and may break if
// that structure changes.
package ufcstats

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/parthpatel/ufcpredict/internal/pkg/config"
	"github.com/parthpatel/ufcpredict/internal/pkg/models"
)

const defaultBaseURL = "http://ufcstats.com"

// Client fetches and parses ufcstats.com pages.
type Client struct {
	baseURL string
	fetcher PageFetcher
}

// NewClient creates a ufcstats client from config.
func NewClient(cfg *config.UFCStatsConfig) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	var fetcher PageFetcher
	if cfg.UseBrowser {
		fetcher = NewBrowserFetcher(cfg.UserAgent, cfg.Timeout.Std())
	} else {
		fetcher = NewHTTPFetcher(cfg.UserAgent, cfg.Timeout.Std())
	}

	return &Client{baseURL: baseURL, fetcher: fetcher}
}

// FetchRoster fetches the A-Z fighter listing for one surname initial.
// page=all puts the whole alphabetic bucket on a single page.
func (c *Client) FetchRoster(ctx context.Context, initial string) ([]models.CandidateRecord, error) {
	listURL := fmt.Sprintf("%s/statistics/fighters?char=%s&page=all", c.baseURL, url.QueryEscape(initial))

	body, err := c.fetcher.Get(ctx, listURL)
	if err != nil {
		return nil, fmt.Errorf("fetch fighter list: %w", err)
	}

	return ParseRoster(body)
}

// FetchProfile fetches a fighter profile page and extracts its text blocks.
// The locator is the href from a roster row; ufcstats uses absolute URLs but
// relative ones are resolved against the base URL just in case.
func (c *Client) FetchProfile(ctx context.Context, locator string) (*models.DetailText, error) {
	profileURL := locator
	if strings.HasPrefix(locator, "/") {
		profileURL = c.baseURL + locator
	}

	body, err := c.fetcher.Get(ctx, profileURL)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	return ParseProfile(body)
}

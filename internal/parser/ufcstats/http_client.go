package ufcstats

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// PageFetcher fetches one HTML page. Two implementations: plain HTTP and a
// headless browser for when the site sits behind a JS challenge.
type PageFetcher interface {
	Get(ctx context.Context, pageURL string) ([]byte, error)
}

// Global rate limiting across all ufcstats requests, shared by both fetchers.
var (
	ufcReqMu   sync.Mutex
	ufcLastReq time.Time
)

// ufcMinDelay enforces a minimum delay between requests so back-to-back
// roster+profile fetches for two fighters don't trip rate limiting.
const ufcMinDelay = 500 * time.Millisecond

func waitRateLimit(ctx context.Context) error {
	ufcReqMu.Lock()
	sinceLastReq := time.Since(ufcLastReq)
	if sinceLastReq < ufcMinDelay {
		wait := ufcMinDelay - sinceLastReq
		ufcReqMu.Unlock()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		ufcReqMu.Lock()
	}
	ufcLastReq = time.Now()
	ufcReqMu.Unlock()
	return nil
}

// HTTPFetcher fetches pages with plain net/http.
type HTTPFetcher struct {
	userAgent string
	client    *http.Client
}

// NewHTTPFetcher creates an HTTP page fetcher.
func NewHTTPFetcher(userAgent string, timeout time.Duration) *HTTPFetcher {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPFetcher{
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// Get fetches a page and returns the response body.
func (f *HTTPFetcher) Get(ctx context.Context, pageURL string) ([]byte, error) {
	if err := waitRateLimit(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: unexpected status %d", pageURL, resp.StatusCode)
	}

	return body, nil
}

package ufcstats

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
)

// Chrome sessions are expensive; serialize them.
var chromeMu sync.Mutex

// BrowserFetcher fetches pages through headless Chrome. Used instead of
// HTTPFetcher when ufcstats.com serves a JS challenge to plain clients
// (ufcstats.use_browser in the config).
type BrowserFetcher struct {
	userAgent string
	timeout   time.Duration
}

// NewBrowserFetcher creates a headless-browser page fetcher.
func NewBrowserFetcher(userAgent string, timeout time.Duration) *BrowserFetcher {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &BrowserFetcher{userAgent: userAgent, timeout: timeout}
}

// Get navigates to the page in a fresh headless Chrome session and returns
// the rendered document.
func (f *BrowserFetcher) Get(ctx context.Context, pageURL string) ([]byte, error) {
	if err := waitRateLimit(ctx); err != nil {
		return nil, err
	}

	chromeMu.Lock()
	defer chromeMu.Unlock()

	chromeDir, err := os.MkdirTemp("", "ufcstats_chrome_")
	if err != nil {
		return nil, fmt.Errorf("create chrome temp dir: %w", err)
	}
	defer os.RemoveAll(chromeDir)

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.UserDataDir(chromeDir),
		chromedp.UserAgent(f.userAgent),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	ctx, cancel = chromedp.NewContext(allocCtx)
	defer cancel()

	var html string
	err = chromedp.Run(ctx,
		chromedp.Navigate(pageURL),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp navigation: %w", err)
	}

	return []byte(html), nil
}

package bref

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/chromedp"
)

// BrowserClient fetches pages through a headless browser. basketball-reference
// intermittently blocks plain HTTP clients; the browser fetcher satisfies the
// same Fetch contract and is selected by configuration.
type BrowserClient struct {
	allocCtx    context.Context
	cancel      context.CancelFunc
	lastRequest time.Time
	interval    time.Duration
}

// NewBrowserClient creates a headless browser fetcher
func NewBrowserClient() (*BrowserClient, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(UserAgent),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &BrowserClient{
		allocCtx: allocCtx,
		cancel:   cancel,
		interval: MinRequestInterval,
	}, nil
}

// Close releases the browser allocator
func (c *BrowserClient) Close() {
	if c.cancel != nil {
		c.cancel()
	}
}

// Fetch navigates to the URL and returns the rendered markup
func (c *BrowserClient) Fetch(ctx context.Context, url string) (string, error) {
	if !c.lastRequest.IsZero() {
		elapsed := time.Since(c.lastRequest)
		if elapsed < c.interval {
			waitTime := c.interval - elapsed
			log.Printf("Rate limiting: waiting %v before next request", waitTime)
			time.Sleep(waitTime)
		}
	}
	c.lastRequest = time.Now()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(c.allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, 30*time.Second)
	defer cancel()

	var htmlContent string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(`body`, chromedp.ByQuery),
		chromedp.OuterHTML(`html`, &htmlContent, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("chromedp error: %w", err)
	}

	if htmlContent == "" {
		return "", fmt.Errorf("empty HTML content returned for %s", url)
	}

	return htmlContent, nil
}
